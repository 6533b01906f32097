package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles aborts with 403 unless the authenticated user's role is one
// of the allowed ones. It must run after JWTAuthMiddleware.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
