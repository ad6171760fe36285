package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lsfhq/resource-booking-backend/internal/auth"
)

// RequireAdmin ensures the authenticated user holds the ADMIN role.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
			})
			return
		}

		if !auth.IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "admin access required",
			})
			return
		}

		c.Next()
	}
}
