package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/nurture-api/internal/middleware"
	apperrors "github.com/yourusername/nurture-api/internal/pkg/errors"
)

// requireUserID pulls the verified account id from the request context.
// Writes a 401 and returns false when it is missing, which only happens
// if a route was wired without the auth middleware.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "error_type": "token_missing"})
		return "", false
	}
	return userID, true
}

// handleResourceError maps repository and validation errors for the thin
// CRUD handlers.
func handleResourceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation_error"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found.", "error_type": "not_found"})
	default:
		log.Printf("[Handler] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error.", "error_type": "internal_server_error"})
	}
}
