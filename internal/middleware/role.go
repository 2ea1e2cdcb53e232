package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to a single role. Runs after
// AuthMiddleware, which puts the role into the context.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Get(ContextUserRole)
		if current != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient_role"})
			return
		}
		c.Next()
	}
}
