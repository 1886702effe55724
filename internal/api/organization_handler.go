package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/services"
)

// OrganizationHandler handles deal-party organization operations
type OrganizationHandler struct {
	orgService services.OrganizationService
}

// NewOrganizationHandler creates a new organization handler with service injection
func NewOrganizationHandler(orgService services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
	}
}

// GetOrganizations returns organizations matching the query filters
func (h *OrganizationHandler) GetOrganizations(c *gin.Context) {
	filters := repository.OrganizationFilters{
		Search: c.Query("search"),
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if orgType := c.Query("type"); orgType != "" {
		filters.OrgType = strings.Split(orgType, ",")
	}

	orgs, err := h.orgService.GetAll(filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organizations": orgs,
		"count":         len(orgs),
		"timestamp":     time.Now(),
	})
}

// GetOrganization returns a single organization by ID
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.orgService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organization": org,
		"timestamp":    time.Now(),
	})
}

// CreateOrganization registers a new organization
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var org models.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization format: " + err.Error()})
		return
	}

	if err := h.orgService.Create(&org); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Organization created successfully",
		"organization": org,
		"timestamp":    time.Now(),
	})
}

// UpdateOrganization updates an organization
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID format"})
		return
	}

	var org models.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization format: " + err.Error()})
		return
	}
	org.ID = id

	if err := h.orgService.Update(&org); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Organization updated successfully",
		"organization": org,
		"timestamp":    time.Now(),
	})
}

// DeleteOrganization removes an organization (Admin only)
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	if err := h.orgService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Organization deleted successfully",
		"timestamp": time.Now(),
	})
}
