package middleware

import (
	"github.com/gin-gonic/gin"

	"gopherblog/internal/pkg/jwtutil"
	"gopherblog/internal/transport/http/response"
	"gopherblog/internal/transport/http/sessioncookie"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// resolveIdentity is the single synchronous identity pass: cookie absent,
// unparseable, tampered or expired all resolve to anonymous.
func resolveIdentity(c *gin.Context, secret string) (*jwtutil.Claims, bool) {
	token, ok := sessioncookie.Get(c)
	if !ok {
		return nil, false
	}
	claims, err := jwtutil.ParseToken(secret, token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// RequireAuth aborts with 401 unless the request carries a valid session.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := resolveIdentity(c, secret)
		if !ok {
			response.Error(c, 401, response.CodeUnauthorized, "authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when present but lets
// anonymous requests through; handlers treat a missing identity as "request
// is anonymous", not as an error.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := resolveIdentity(c, secret); ok {
			c.Set(ContextUserIDKey, claims.UserID)
			c.Set(ContextUsernameKey, claims.Username)
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id, or (0, false) when the
// request is anonymous.
func UserID(c *gin.Context) (uint, bool) {
	userIDAny, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := userIDAny.(uint)
	return userID, ok
}
