package middleware

import (
	"net/http"
	"strings"

	"tutorhive/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// AuthMiddleware resolves the bearer token into an authenticated
// identity {id, role} and stores it in the request context. Every
// protected operation downstream trusts this identity for its ownership
// and role checks.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, role, err := utils.IdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, id)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// Identity returns the authenticated {id, role} pair set by AuthMiddleware.
func Identity(c *gin.Context) (id, role string) {
	return c.GetString(CtxUserID), c.GetString(CtxRole)
}
