package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovatehub-portal/models"
)

// AdminMiddleware creates a middleware that ensures the user has admin role
// This middleware should be used after AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// RequireRole creates a middleware that ensures the authenticated user has
// the given role
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		value, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		if roleStr, ok := value.(string); !ok || models.Role(roleStr) != role {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": string(role) + " privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
