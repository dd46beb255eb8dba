package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/wahanakarya/cms_api/internal/auth"
	"github.com/wahanakarya/cms_api/internal/middleware"
	"github.com/wahanakarya/cms_api/internal/service"
)

// AuthHandler handles admin login, logout, session introspection, and
// admin account management.
type AuthHandler struct {
	authService *service.AdminAuthService
	tokens      *auth.TokenService
	secure      bool
}

// NewAuthHandler constructs an AuthHandler. secure controls the Secure
// cookie attribute (true in production).
func NewAuthHandler(authService *service.AdminAuthService, tokens *auth.TokenService, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens, secure: secure}
}

// Login handles POST /v1/admin/auth/login. Unknown email and wrong password
// produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("login failed")
		respondError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		// Covers the missing-secret case; never fall back to an
		// unsigned session.
		log.Error().Err(err).Msg("failed to issue session token")
		respondError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	middleware.SetSessionCookie(c, token, int(h.tokens.TTL().Seconds()), h.secure)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"email":    user.Email,
			"fullName": user.Name,
			"role":     user.Role,
		},
	})
}

// Session handles GET /v1/admin/auth/session. It verifies the cookie itself
// rather than relying on gate placement, so it can answer "not
// authenticated" instead of redirecting.
func (h *AuthHandler) Session(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	user, err := h.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrNoSecret) {
			log.Error().Err(err).Msg("session introspection misconfigured")
			respondError(c, http.StatusInternalServerError, "Failed to verify session")
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"email":    user.Email,
			"fullName": user.Name,
			"role":     user.Role,
		},
	})
}

// Logout handles POST /v1/admin/auth/logout. Always succeeds; the session is
// stateless, so clearing the cookie is all there is.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.secure)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListAdmins handles GET /v1/admin/admins.
func (h *AuthHandler) ListAdmins(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}

	users, err := h.authService.ListAdmins(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list admins")
		respondError(c, http.StatusInternalServerError, "Failed to list admins")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": users, "total": len(users)})
}

// CreateAdmin handles POST /v1/admin/admins.
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	if _, ok := requirePrincipal(c); !ok {
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		respondError(c, http.StatusBadRequest, "email is required")
		return
	}
	if req.Password == "" {
		respondError(c, http.StatusBadRequest, "password is required")
		return
	}

	user, err := h.authService.CreateAdmin(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeRepoError(c, err, "Admin", "create admin")
		return
	}
	c.JSON(http.StatusCreated, user)
}
