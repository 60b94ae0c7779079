package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"social-network-service/pkg/logger"
)

// UserIDKey is the gin context key holding the authenticated user ID
const UserIDKey = "userID"

// TokenVerifier validates an identity token and extracts the acting user ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth returns a middleware that authenticates requests via a bearer token.
// The verified identity it stores is the sole source of truth for ownership
// checks downstream.
func Auth(tokens TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "missing or invalid authorization header",
			})
			return
		}

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			log.Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(UserIDKey, userID)
		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ActingUser returns the authenticated user ID from the gin context
func ActingUser(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
