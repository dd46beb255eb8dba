package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/wahanakarya/cms_api/internal/auth"
)

// SessionCookieName is the cookie carrying the signed admin session token.
const SessionCookieName = "admin_session"

// LoginPath is where unauthenticated page navigations are redirected.
const LoginPath = "/admin/login"

const principalKey = "admin_principal"

// SessionMiddleware gates every protected route on a valid session cookie.
// API routes get a structured 401 body on failure; page routes get a
// redirect to the login page (and the stale cookie cleared). Verification
// happens on every request; nothing is cached between requests.
type SessionMiddleware struct {
	tokens *auth.TokenService
	secure bool
}

// NewSessionMiddleware constructs a SessionMiddleware. secure controls the
// Secure attribute on cleared/issued cookies (true in production).
func NewSessionMiddleware(tokens *auth.TokenService, secure bool) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, secure: secure}
}

// RequireAPI returns a middleware for programmatic routes. Missing, invalid,
// expired, or wrong-type tokens all yield the same opaque 401 body; the
// precise reason is logged server-side only.
func (m *SessionMiddleware) RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.verifyRequest(c)
		if err != nil {
			if errors.Is(err, auth.ErrNoSecret) {
				log.Error().Err(err).Msg("session verification misconfigured")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify session"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// RequirePage returns a middleware for navigational routes. On failure the
// session cookie is cleared and the browser is redirected to the login page.
func (m *SessionMiddleware) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.verifyRequest(c)
		if err != nil {
			ClearSessionCookie(c, m.secure)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// verifyRequest extracts the session cookie and verifies it. All auth
// failures are logged at debug level; they are routine, not incidents.
func (m *SessionMiddleware) verifyRequest(c *gin.Context) (*auth.SessionUser, error) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return nil, auth.ErrMissingToken
	}

	user, err := m.tokens.Verify(token)
	if err != nil {
		log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("session rejected")
		return nil, err
	}
	return user, nil
}

// Principal returns the verified session user attached by the gate, or nil
// when the request did not pass through it. Handlers re-check this rather
// than assuming the gate ran.
func Principal(c *gin.Context) *auth.SessionUser {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	user, _ := v.(*auth.SessionUser)
	return user
}

// SetSessionCookie writes the session cookie with the attributes required
// for an admin session: HTTP-only, SameSite Lax, path "/".
func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
