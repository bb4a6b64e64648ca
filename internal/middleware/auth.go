package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/constants"
	apierrors "github.com/ikedoebber/organizer-api/internal/errors"
)

// RequireAuth checks if the user is authenticated via session. XHR
// callers get a 401 payload; page navigations are redirected to the
// login surface with the original destination in `next`.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			if IsXHR(c) {
				apierrors.Unauthorized(c, "")
			} else {
				next := url.QueryEscape(c.Request.URL.RequestURI())
				c.Redirect(http.StatusFound, constants.LoginPath+"?next="+next)
			}
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// IsXHR reports whether the request carries the AJAX marker header.
func IsXHR(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader(constants.XHRHeader), constants.XHRHeaderValue)
}

// SafeNextPath reports whether a post-login destination is a
// same-origin relative path. Absolute URLs and protocol-relative
// ("//host") or backslash variants are rejected to block open
// redirects.
func SafeNextPath(next string) bool {
	if next == "" || next[0] != '/' {
		return false
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return false
	}
	u, err := url.Parse(next)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
