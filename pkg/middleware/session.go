package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/forumhub/forumhub/backend/forum-service/pkg/logger"
)

// IdentityKey is the gin context key the resolved username is stored under.
const IdentityKey = "identity"

// IdentityResolver is the minimal session-binding surface the middleware
// depends on.
type IdentityResolver interface {
	Identity(ctx context.Context, handle string) (string, error)
}

// SessionIdentity returns a middleware that resolves the session cookie to a
// bound username and stores it in the request context. Absence of a cookie or
// of a binding is not an error; the request simply proceeds unauthenticated.
// Handlers that require auth check Identity(c) themselves.
func SessionIdentity(resolver IdentityResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle, err := c.Cookie(cookieName)
		if err != nil || handle == "" {
			c.Next()
			return
		}
		username, err := resolver.Identity(c.Request.Context(), handle)
		if err != nil {
			// resolution failure is treated as unauthenticated rather than
			// failing the whole request; read paths do not need identity
			logger.Warnf("session identity lookup failed: %v", err)
			c.Next()
			return
		}
		if username != "" {
			c.Set(IdentityKey, username)
		}
		c.Next()
	}
}

// Identity returns the authenticated username for the request, or "" when the
// request is unauthenticated.
func Identity(c *gin.Context) string {
	if v, ok := c.Get(IdentityKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
