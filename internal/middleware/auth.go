package middleware

import (
	"context"
	"net/http"
	"strings"

	"canteen/internal/redis"

	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated identity
const (
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

// SessionResolver resolves a bearer token to the identity the external
// provider stored for it.
type SessionResolver interface {
	GetSession(ctx context.Context, token string) (*redis.SessionData, error)
}

// Authentication validates the bearer session token and stores the
// resolved user on the request context. Authorization (role checks) is
// intentionally not performed here.
func Authentication(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No Authorization header provided",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		// Token format should be "Bearer <token>"
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid Authorization format",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		session, err := sessions.GetSession(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		c.Set(UserIDKey, session.UserID)
		c.Set(UserRoleKey, session.Role)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id stored by Authentication.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
