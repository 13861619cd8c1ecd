package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/models"
)

// respondError maps the shared error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is logged and reported as a generic failure.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrAuthFailure):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrAuthFailure.Error()})
	case errors.Is(err, models.ErrDuplicateIdentity):
		ctx.JSON(http.StatusConflict, gin.H{"error": models.ErrDuplicateIdentity.Error()})
	case errors.Is(err, models.ErrTeamExists):
		ctx.JSON(http.StatusConflict, gin.H{"error": models.ErrTeamExists.Error()})
	case errors.Is(err, models.ErrTeamNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrTeamNotFound.Error()})
	case errors.Is(err, models.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrUserNotFound.Error()})
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
	case errors.Is(err, models.ErrTransient):
		log.Printf("Transient storage failure: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporarily unavailable, please retry"})
	case errors.Is(err, models.ErrInconsistent):
		log.Printf("Directory inconsistency detected: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		log.Printf("Unhandled error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
