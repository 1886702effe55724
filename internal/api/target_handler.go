package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/services"
)

// TargetHandler handles acquisition target operations
type TargetHandler struct {
	targetService services.TargetService
}

// NewTargetHandler creates a new target handler with service injection
func NewTargetHandler(targetService services.TargetService) *TargetHandler {
	return &TargetHandler{
		targetService: targetService,
	}
}

// GetTargets returns targets matching the query filters
func (h *TargetHandler) GetTargets(c *gin.Context) {
	filters := repository.TargetFilters{
		Sector:    c.Query("sector"),
		Geography: c.Query("geography"),
		Search:    c.Query("search"),
		Limit:     parseIntQuery(c, "limit", 50),
		Offset:    parseIntQuery(c, "offset", 0),
	}
	if raw := c.Query("min_revenue"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_revenue must be a number"})
			return
		}
		filters.MinRevenue = &value
	}

	targets, err := h.targetService.GetAll(filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"targets":   targets,
		"count":     len(targets),
		"timestamp": time.Now(),
	})
}

// GetTarget returns a single target by ID
func (h *TargetHandler) GetTarget(c *gin.Context) {
	target, err := h.targetService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"target":    target,
		"timestamp": time.Now(),
	})
}

// CreateTarget registers a new acquisition target
func (h *TargetHandler) CreateTarget(c *gin.Context) {
	var target models.Target
	if err := c.ShouldBindJSON(&target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target format: " + err.Error()})
		return
	}

	if err := h.targetService.Create(&target); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Target created successfully",
		"target":    target,
		"timestamp": time.Now(),
	})
}

// UpdateTarget updates a target's profile
func (h *TargetHandler) UpdateTarget(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target ID format"})
		return
	}

	var target models.Target
	if err := c.ShouldBindJSON(&target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target format: " + err.Error()})
		return
	}
	target.ID = id

	if err := h.targetService.Update(&target); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Target updated successfully",
		"target":    target,
		"timestamp": time.Now(),
	})
}

// DeleteTarget removes a target (Admin only)
func (h *TargetHandler) DeleteTarget(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	if err := h.targetService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Target deleted successfully",
		"timestamp": time.Now(),
	})
}

// CalculateFit scores the target against a SPAC and persists the result
func (h *TargetHandler) CalculateFit(c *gin.Context) {
	type fitRequest struct {
		SPACID string `json:"spac_id" binding:"required"`
	}

	var req fitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	score, err := h.targetService.CalculateFit(c.Param("id"), req.SPACID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fit_score": score,
		"timestamp": time.Now(),
	})
}

// GetFitScores returns all persisted scores for the target
func (h *TargetHandler) GetFitScores(c *gin.Context) {
	scores, err := h.targetService.GetFitScores(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fit_scores": scores,
		"count":      len(scores),
		"timestamp":  time.Now(),
	})
}
