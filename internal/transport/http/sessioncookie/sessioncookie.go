// Package sessioncookie moves the opaque session token in and out of the
// auth cookie. It never inspects the token; validation lives in the
// middleware and the codec.
package sessioncookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const Name = "auth-token"

// Set writes the cookie for the current response: HttpOnly, SameSite=Lax,
// path /, Secure when the app runs in a production-like environment.
func Set(c *gin.Context, token string, maxAge time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(Name, token, int(maxAge.Seconds()), "/", "", secure, true)
}

// Get reads the token from the current request; ok is false when absent.
func Get(c *gin.Context) (token string, ok bool) {
	token, err := c.Cookie(Name)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Clear expires the cookie on logout.
func Clear(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(Name, "", -1, "/", "", secure, true)
}
