package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole expresses role-based authorization as a capability check on
// the single authenticated identity, applied per operation.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "this operation is not permitted for your role",
		})
	}
}
