package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"referral-api/internal/common"
	"referral-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP responses: NotFound to 404,
// Conflict and validation failures to 400, everything else to a generic 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var notFound common.NotFoundError
	var conflict common.ConflictError
	var invalid common.ValidationError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("%s not found", notFound.Resource)})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("%s already exists", conflict.Resource)})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"detail": invalid.Error()})
	default:
		log.Error("Request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
