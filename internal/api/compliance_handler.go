package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/services"
)

// ComplianceHandler handles compliance checklist operations
type ComplianceHandler struct {
	complianceService services.ComplianceService
}

// NewComplianceHandler creates a new compliance handler with service injection
func NewComplianceHandler(complianceService services.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
	}
}

// GetComplianceItems returns a SPAC's compliance checklist
func (h *ComplianceHandler) GetComplianceItems(c *gin.Context) {
	items, err := h.complianceService.GetBySPAC(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"count":     len(items),
		"timestamp": time.Now(),
	})
}

// CreateComplianceItem adds an item to a SPAC's checklist
func (h *ComplianceHandler) CreateComplianceItem(c *gin.Context) {
	spacID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid SPAC ID format"})
		return
	}

	var item models.ComplianceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item format: " + err.Error()})
		return
	}
	item.SPACID = spacID

	if err := h.complianceService.Create(&item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Compliance item created successfully",
		"item":      item,
		"timestamp": time.Now(),
	})
}

// UpdateComplianceItem updates a checklist item
func (h *ComplianceHandler) UpdateComplianceItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID format"})
		return
	}

	var item models.ComplianceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item format: " + err.Error()})
		return
	}
	item.ID = id

	if err := h.complianceService.Update(&item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Compliance item updated successfully",
		"item":      item,
		"timestamp": time.Now(),
	})
}

// DeleteComplianceItem removes a checklist item
func (h *ComplianceHandler) DeleteComplianceItem(c *gin.Context) {
	if err := h.complianceService.Delete(c.Param("item_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Compliance item deleted successfully",
		"timestamp": time.Now(),
	})
}

// CompleteComplianceItem marks an item compliant
func (h *ComplianceHandler) CompleteComplianceItem(c *gin.Context) {
	item, err := h.complianceService.Complete(c.Param("item_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Compliance item completed",
		"item":      item,
		"timestamp": time.Now(),
	})
}

// GetUpcomingCompliance returns open items due across all SPACs
func (h *ComplianceHandler) GetUpcomingCompliance(c *gin.Context) {
	days := parseIntQuery(c, "days", 30)

	items, err := h.complianceService.GetUpcoming(days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"count":     len(items),
		"days":      days,
		"timestamp": time.Now(),
	})
}
