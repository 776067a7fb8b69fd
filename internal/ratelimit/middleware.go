package ratelimit

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/gitgauge/gitgauge/internal/errors"
)

// Middleware rejects requests from clients exceeding their per-IP budget.
func Middleware(limiter *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			appErr := apperrors.NewRateLimitError("60s")
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}
		c.Next()
	}
}
