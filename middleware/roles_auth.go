package middleware

import (
	"net/http"

	"github.com/Purkaitrohit/House-Price-Prediction/constants"
	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/utils"
	"github.com/gin-gonic/gin"
)

func RoleAuthorization(allowedRoles ...constants.RoleEnum) gin.HandlerFunc {
	roleSet := make(map[string]struct{})
	for _, r := range allowedRoles {
		roleSet[string(r)] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsVal, exists := c.Get(ClaimsKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.ErrorResponse(http.StatusUnauthorized, "missing user claims", nil))
			return
		}

		claims, ok := claimsVal.(*utils.JWTClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.ErrorResponse(http.StatusUnauthorized, "invalid user claims", nil))
			return
		}

		if _, allowed := roleSet[claims.Role]; !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden,
				models.ErrorResponse(http.StatusForbidden, "unauthorized: insufficient role", nil))
			return
		}

		c.Next()
	}
}
