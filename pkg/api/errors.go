package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cortexhq/cortex/pkg/runtime"
	"github.com/cortexhq/cortex/pkg/store"
)

// respondError maps domain errors onto HTTP statuses. Unmapped errors are a
// 500 with the message passed through.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, store.ErrInvalidInput), store.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, runtime.ErrNoEventPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
