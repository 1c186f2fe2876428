package middleware

import (
	"net/http"
	"strings"

	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/utils"
	"github.com/gin-gonic/gin"
)

const ClaimsKey = "userClaims"

// AuthMiddleware requires a valid HS256 bearer token signed with secret.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				models.ErrorResponse(http.StatusServiceUnavailable, "authentication is not configured", nil))
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.ErrorResponse(http.StatusUnauthorized, "missing Authorization header", nil))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.ErrorResponse(http.StatusUnauthorized, "invalid Authorization header format", nil))
			return
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.ErrorResponse(http.StatusUnauthorized, "invalid token", nil))
			return
		}

		// Attach claims to context
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
