package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cinescope-service/internal/auth"
)

// Context keys set by RequireUser
const (
	ContextUserID      = "user_id"
	ContextDisplayName = "display_name"
)

// RequireUser returns a middleware that validates the bearer token and
// stores the caller's identity on the context
func RequireUser(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			// Websocket clients cannot set headers; accept a query token
			token = c.Query("token")
			if token == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"code":  401,
					"error": "missing bearer token",
				})
				return
			}
		} else {
			token = strings.TrimPrefix(token, "Bearer ")
		}

		claims, err := manager.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  401,
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextDisplayName, claims.DisplayName)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireUser
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// DisplayName returns the authenticated display name set by RequireUser
func DisplayName(c *gin.Context) string {
	return c.GetString(ContextDisplayName)
}
