// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts the caller's identity from the Authorization
// header. Token validation itself is the auth provider's job; this service
// only needs the bearer token present and the user identity it carries.
type AuthMiddleware struct{}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// Authenticate returns a gin middleware that requires a Bearer token and a
// user identity header, storing both in the context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "invalid authorization header format",
			})
			return
		}

		userID := c.GetHeader("X-User-Id")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "missing user identity",
			})
			return
		}

		c.Set("auth_token", parts[1])
		c.Set("user_id", userID)

		c.Next()
	}
}

// GetUserID retrieves the authenticated user ID from the gin context.
func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
