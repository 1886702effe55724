package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/services"
)

// FilingHandler handles SEC filing workflow operations
type FilingHandler struct {
	filingService services.FilingService
}

// NewFilingHandler creates a new filing handler with service injection
func NewFilingHandler(filingService services.FilingService) *FilingHandler {
	return &FilingHandler{
		filingService: filingService,
	}
}

// GetFilings returns filings matching the query filters
func (h *FilingHandler) GetFilings(c *gin.Context) {
	filters := repository.FilingFilters{
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if spacID := c.Query("spac_id"); spacID != "" {
		id, err := uuid.Parse(spacID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid spac_id format"})
			return
		}
		filters.SPACID = &id
	}
	if status := c.Query("status"); status != "" {
		filters.Status = strings.Split(status, ",")
	}
	if filingType := c.Query("type"); filingType != "" {
		filters.FilingType = strings.Split(filingType, ",")
	}

	filings, err := h.filingService.GetAll(filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filings":   filings,
		"count":     len(filings),
		"timestamp": time.Now(),
	})
}

// GetFiling returns a single filing by ID
func (h *FilingHandler) GetFiling(c *gin.Context) {
	filing, err := h.filingService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filing":    filing,
		"timestamp": time.Now(),
	})
}

// CreateFiling starts tracking a filing
func (h *FilingHandler) CreateFiling(c *gin.Context) {
	var filing models.Filing
	if err := c.ShouldBindJSON(&filing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filing format: " + err.Error()})
		return
	}

	if err := h.filingService.Create(&filing); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Filing created successfully",
		"filing":    filing,
		"timestamp": time.Now(),
	})
}

// UpdateFiling updates a filing's descriptive fields
func (h *FilingHandler) UpdateFiling(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filing ID format"})
		return
	}

	var filing models.Filing
	if err := c.ShouldBindJSON(&filing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filing format: " + err.Error()})
		return
	}
	filing.ID = id

	if err := h.filingService.Update(&filing); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Filing updated successfully",
		"filing":    filing,
		"timestamp": time.Now(),
	})
}

// DeleteFiling removes a filing (Admin only)
func (h *FilingHandler) DeleteFiling(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	if err := h.filingService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Filing deleted successfully",
		"timestamp": time.Now(),
	})
}

// UpdateFilingStatus moves a filing through its workflow
func (h *FilingHandler) UpdateFilingStatus(c *gin.Context) {
	type statusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	filing, err := h.filingService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Status updated successfully",
		"filing":    filing,
		"timestamp": time.Now(),
	})
}

// SyncFilings pulls the SPAC's EDGAR index and records new filings
func (h *FilingHandler) SyncFilings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	created, err := h.filingService.SyncFromEDGAR(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "EDGAR sync completed",
		"new_filings": created,
		"timestamp":   time.Now(),
	})
}
