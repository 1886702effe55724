package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/services"
)

// TrustHandler handles trust account operations
type TrustHandler struct {
	trustService services.TrustService
}

// NewTrustHandler creates a new trust handler with service injection
func NewTrustHandler(trustService services.TrustService) *TrustHandler {
	return &TrustHandler{
		trustService: trustService,
	}
}

// GetTrustAccount returns a SPAC's trust account
func (h *TrustHandler) GetTrustAccount(c *gin.Context) {
	account, err := h.trustService.GetAccount(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account":   account,
		"timestamp": time.Now(),
	})
}

// CreateTrustAccount opens a trust account for a SPAC (Admin only)
func (h *TrustHandler) CreateTrustAccount(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	spacID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid SPAC ID format"})
		return
	}

	var account models.TrustAccount
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account format: " + err.Error()})
		return
	}
	account.SPACID = spacID

	if err := h.trustService.CreateAccount(&account); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Trust account created successfully",
		"account":   account,
		"timestamp": time.Now(),
	})
}

// GetTrustTransactions returns the movement history for a SPAC's trust account
func (h *TrustHandler) GetTrustTransactions(c *gin.Context) {
	txs, err := h.trustService.GetTransactions(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": txs,
		"count":        len(txs),
		"timestamp":    time.Now(),
	})
}

// RecordTrustTransaction records a trust movement and returns the new balance
func (h *TrustHandler) RecordTrustTransaction(c *gin.Context) {
	var tx models.TrustTransaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction format: " + err.Error()})
		return
	}

	account, err := h.trustService.RecordTransaction(c.Param("id"), &tx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transaction recorded",
		"transaction": tx,
		"balance":     account.Balance,
		"timestamp":   time.Now(),
	})
}
