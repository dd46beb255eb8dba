package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahanakarya/cms_api/internal/auth"
	"github.com/wahanakarya/cms_api/internal/models"
)

func newGatedRouter(t *testing.T, tokens *auth.TokenService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mw := NewSessionMiddleware(tokens, false)

	r := gin.New()
	api := r.Group("/v1/admin")
	api.Use(mw.RequireAPI())
	api.GET("/whoami", func(c *gin.Context) {
		user := Principal(c)
		require.NotNil(t, user)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})

	pages := r.Group("/admin")
	pages.Use(mw.RequirePage())
	pages.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return r
}

func issueTestToken(t *testing.T, tokens *auth.TokenService) string {
	t.Helper()
	token, err := tokens.Issue(&models.AdminUser{
		ID:    1,
		Email: "admin@wahanakarya.co.id",
		Name:  "Administrator",
		Role:  "admin",
	})
	require.NoError(t, err)
	return token
}

func TestRequireAPI_NoCookie(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestRequireAPI_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not.a.token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestRequireAPI_ValidCookie(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueTestToken(t, tokens)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"admin@wahanakarya.co.id"}`, w.Body.String())
}

func TestRequireAPI_MisconfiguredSecret(t *testing.T) {
	tokens := auth.NewTokenService("", time.Hour)
	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "whatever"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to verify session"}`, w.Body.String())
}

func TestRequirePage_NoCookie(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRequirePage_StaleCookieCleared(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	tokens := auth.NewTokenService("secret", time.Hour).
		WithTimeFunc(func() time.Time { return now })
	r := newGatedRouter(t, tokens)
	token := issueTestToken(t, tokens)

	now = issuedAt.Add(2 * time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))

	setCookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, SessionCookieName+"="), "stale cookie must be cleared")
	assert.Contains(t, setCookie, "Max-Age=0")
}

func TestRequirePage_ValidCookie(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGatedRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueTestToken(t, tokens)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard", w.Body.String())
}

func TestPrincipal_OutsideGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, Principal(c))
}
