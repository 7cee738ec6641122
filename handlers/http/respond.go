package httpHandler

import (
	"workout-server/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError is the single error-to-HTTP translation point for handlers.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
}
