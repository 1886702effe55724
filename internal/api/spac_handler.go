package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/services"
)

// SPACHandler handles SPAC lifecycle operations
type SPACHandler struct {
	spacService services.SPACService
}

// NewSPACHandler creates a new SPAC handler with service injection
func NewSPACHandler(spacService services.SPACService) *SPACHandler {
	return &SPACHandler{
		spacService: spacService,
	}
}

// GetSPACs returns SPACs matching the query filters
func (h *SPACHandler) GetSPACs(c *gin.Context) {
	filters := repository.SPACFilters{
		Search: c.Query("search"),
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if status := c.Query("status"); status != "" {
		filters.Status = strings.Split(status, ",")
	}
	if sponsor := c.Query("sponsor_id"); sponsor != "" {
		id, err := uuid.Parse(sponsor)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sponsor_id format"})
			return
		}
		filters.SponsorID = &id
	}
	if deadline := c.Query("deadline_before"); deadline != "" {
		t, err := time.Parse("2006-01-02", deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deadline_before must be YYYY-MM-DD"})
			return
		}
		filters.DeadlineBefore = &t
	}

	spacs, err := h.spacService.GetAll(filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spacs":     spacs,
		"count":     len(spacs),
		"timestamp": time.Now(),
	})
}

// GetSPAC returns a single SPAC by ID
func (h *SPACHandler) GetSPAC(c *gin.Context) {
	spac, err := h.spacService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spac":      spac,
		"timestamp": time.Now(),
	})
}

// GetSPACByTicker returns a single SPAC by its ticker symbol
func (h *SPACHandler) GetSPACByTicker(c *gin.Context) {
	spac, err := h.spacService.GetByTicker(c.Param("ticker"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spac":      spac,
		"timestamp": time.Now(),
	})
}

// CreateSPAC registers a new SPAC
func (h *SPACHandler) CreateSPAC(c *gin.Context) {
	var spac models.SPAC
	if err := c.ShouldBindJSON(&spac); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid SPAC format: " + err.Error()})
		return
	}

	if err := h.spacService.Create(&spac); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "SPAC created successfully",
		"spac":      spac,
		"timestamp": time.Now(),
	})
}

// UpdateSPAC updates a SPAC's descriptive fields. Status is ignored here;
// lifecycle changes go through UpdateSPACStatus.
func (h *SPACHandler) UpdateSPAC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid SPAC ID format"})
		return
	}

	var spac models.SPAC
	if err := c.ShouldBindJSON(&spac); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid SPAC format: " + err.Error()})
		return
	}
	spac.ID = id

	if err := h.spacService.Update(&spac); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "SPAC updated successfully",
		"spac":      spac,
		"timestamp": time.Now(),
	})
}

// DeleteSPAC removes a SPAC (Admin only)
func (h *SPACHandler) DeleteSPAC(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	if err := h.spacService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "SPAC deleted successfully",
		"timestamp": time.Now(),
	})
}

// UpdateSPACStatus moves a SPAC to a new lifecycle status
func (h *SPACHandler) UpdateSPACStatus(c *gin.Context) {
	type statusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	spac, err := h.spacService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Status updated successfully",
		"spac":      spac,
		"timestamp": time.Now(),
	})
}

// GetCapTable returns a SPAC's capitalization table
func (h *SPACHandler) GetCapTable(c *gin.Context) {
	entries, err := h.spacService.GetCapTable(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":   entries,
		"count":     len(entries),
		"timestamp": time.Now(),
	})
}

// UpsertCapTableEntry adds or replaces one cap table line
func (h *SPACHandler) UpsertCapTableEntry(c *gin.Context) {
	var entry models.CapTableEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry format: " + err.Error()})
		return
	}

	if err := h.spacService.UpsertCapTableEntry(c.Param("id"), &entry); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cap table entry saved",
		"entry":     entry,
		"timestamp": time.Now(),
	})
}

// DeleteCapTableEntry removes one cap table line
func (h *SPACHandler) DeleteCapTableEntry(c *gin.Context) {
	if err := h.spacService.DeleteCapTableEntry(c.Param("entry_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cap table entry deleted",
		"timestamp": time.Now(),
	})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
