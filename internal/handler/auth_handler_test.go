package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahanakarya/cms_api/internal/auth"
	"github.com/wahanakarya/cms_api/internal/config"
	"github.com/wahanakarya/cms_api/internal/middleware"
	"github.com/wahanakarya/cms_api/internal/models"
	"github.com/wahanakarya/cms_api/internal/repository"
	"github.com/wahanakarya/cms_api/internal/service"
)

var authTestSeed = config.SeedConfig{
	AdminEmail:    "admin@wahanakarya.co.id",
	AdminPassword: "admin123",
	AdminName:     "Administrator",
}

type memoryAdminStore struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*models.AdminUser
}

func newMemoryAdminStore() *memoryAdminStore {
	return &memoryAdminStore{users: make(map[string]*models.AdminUser)}
}

func (m *memoryAdminStore) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryAdminStore) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users), nil
}

func (m *memoryAdminStore) List(ctx context.Context) ([]models.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.AdminUser, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memoryAdminStore) Create(ctx context.Context, user *models.AdminUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Email]; exists {
		return fmt.Errorf("%w: admin_users_email_key", repository.ErrDuplicate)
	}
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.users[user.Email] = &cp
	return nil
}

func newAuthRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authSvc := service.NewAdminAuthService(newMemoryAdminStore(), authTestSeed)
	h := NewAuthHandler(authSvc, tokens, false)

	r := gin.New()
	r.POST("/v1/admin/auth/login", h.Login)
	r.GET("/v1/admin/auth/session", h.Session)
	r.POST("/v1/admin/auth/logout", h.Logout)
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", middleware.SessionCookieName)
	return nil
}

func TestLogin_SessionLifecycle(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	tokens := auth.NewTokenService("secret", 24*time.Hour).
		WithTimeFunc(func() time.Time { return now })
	r := newAuthRouter(tokens)

	// Login with the seeded credentials.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/auth/login",
		strings.NewReader(`{"email":"admin@wahanakarya.co.id","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"user":{"email":"admin@wahanakarya.co.id","fullName":"Administrator","role":"admin"}}`,
		w.Body.String())

	cookie := sessionCookie(t, w)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	// The session endpoint recognizes the cookie.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/admin/auth/session", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"authenticated":true,"user":{"email":"admin@wahanakarya.co.id","fullName":"Administrator","role":"admin"}}`,
		w.Body.String())

	// A day later the same cookie is expired.
	now = issuedAt.Add(24*time.Hour + time.Second)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/admin/auth/session", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestLogin_WrongPassword(t *testing.T) {
	tokens := auth.NewTokenService("secret", 24*time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/auth/login",
		strings.NewReader(`{"email":"admin@wahanakarya.co.id","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, w.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	tokens := auth.NewTokenService("secret", 24*time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/auth/login",
		strings.NewReader(`{"email":"admin@wahanakarya.co.id"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"email and password are required"}`, w.Body.String())
}

func TestLogin_MissingSecret(t *testing.T) {
	// Credentials are fine but the token cannot be issued; no unsigned
	// session may be handed out.
	tokens := auth.NewTokenService("", 24*time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/auth/login",
		strings.NewReader(`{"email":"admin@wahanakarya.co.id","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to log in"}`, w.Body.String())

	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, middleware.SessionCookieName, c.Name)
	}
}

func TestSession_NoCookie(t *testing.T) {
	tokens := auth.NewTokenService("secret", 24*time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/auth/session", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestLogout_ClearsCookie(t *testing.T) {
	tokens := auth.NewTokenService("secret", 24*time.Hour)
	r := newAuthRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/auth/logout", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	cookie := sessionCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
