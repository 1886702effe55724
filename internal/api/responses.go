package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
)

// respondError translates a service error into an HTTP response. Application
// error codes map to statuses; anything else is a 500 with a generic message
// so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeValidationError:
		status = http.StatusBadRequest
	case apperrors.ErrCodeInvalidTransition:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		status = http.StatusForbidden
	case apperrors.ErrCodeConflict:
		status = http.StatusConflict
	}

	body := gin.H{"error": appErr.Message, "code": appErr.Code}
	if status == http.StatusInternalServerError {
		body = gin.H{"error": "Internal server error", "code": appErr.Code}
	}
	c.JSON(status, body)
}

// requireAdmin aborts with 403 unless the authenticated user is an admin.
func requireAdmin(c *gin.Context) bool {
	role, exists := c.Get("user_role")
	if !exists || role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return false
	}
	return true
}
