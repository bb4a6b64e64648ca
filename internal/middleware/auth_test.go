package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/ikedoebber/organizer-api/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestSafeNextPath(t *testing.T) {
	assert.True(t, SafeNextPath("/tasks/"))
	assert.True(t, SafeNextPath("/appointments/calendar/?year=2024&month=2"))

	assert.False(t, SafeNextPath(""))
	assert.False(t, SafeNextPath("https://evil.example/phish"))
	assert.False(t, SafeNextPath("//evil.example/phish"))
	assert.False(t, SafeNextPath("/\\evil.example"))
	assert.False(t, SafeNextPath("javascript:alert(1)"))
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	r.GET("/api/dashboard", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAuthRedirectsPageCalls(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fapi%2Fdashboard", w.Header().Get("Location"))
}

func TestRequireAuthRejectsXHRWith401(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set(constants.XHRHeader, constants.XHRHeaderValue)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}
