package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacos/spac-os-api/internal/services"
)

// DashboardHandler serves the aggregated portfolio view
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler with service injection
func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary returns the portfolio dashboard
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":   summary,
		"timestamp": time.Now(),
	})
}
