package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type JWTConfig struct {
	Secret string
}

const (
	contextUserID   = "user_id"
	contextUsername = "username"
)

// NewJWTAuth rejects requests without a valid bearer access token and
// stashes the authenticated identity on the request context.
func NewJWTAuth(cfg *JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := ParseToken(cfg.Secret, TokenTypeAccess, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(contextUserID, claims.UserID)
		c.Set(contextUsername, claims.Username)
		c.Next()
	}
}

// GetUserID returns the authenticated user ID, or "" on an
// unauthenticated request.
func GetUserID(c *gin.Context) string {
	return c.GetString(contextUserID)
}

func GetUsername(c *gin.Context) string {
	return c.GetString(contextUsername)
}
