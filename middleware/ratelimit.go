package middleware

import (
	"net/http"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit applies a shared token bucket. A non-positive rps disables it.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				models.ErrorResponse(http.StatusTooManyRequests, "too many prediction requests, slow down", nil))
			return
		}
		c.Next()
	}
}
