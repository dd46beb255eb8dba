package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wahanakarya/cms_api/internal/models"
)

// TokenTypeAdminSession is the discriminator claim embedded in every session
// token. A token signed with the same secret for any other purpose must not
// be accepted as an admin session.
const TokenTypeAdminSession = "admin-session"

// Token errors. Every verification failure maps to one of these so that the
// middleware and the handlers agree on the same taxonomy.
var (
	ErrNoSecret         = errors.New("session secret not configured")
	ErrMissingToken     = errors.New("missing session token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
	ErrWrongType        = errors.New("wrong token type")
)

// SessionUser is the principal view recovered from a verified session token.
// It is a snapshot of the admin user at login time; changes to the stored
// user are not reflected until re-login.
type SessionUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"fullName"`
	Role  string `json:"role"`
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed admin session tokens (HS256).
// Both operations are pure functions of the token, the secret, and the
// current time; no state is kept between calls.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. An empty secret is allowed here so
// that construction never fails, but every Issue/Verify call will return
// ErrNoSecret until a secret is configured.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithTimeFunc overrides the clock used for issuance and expiry checks.
// Intended for tests.
func (s *TokenService) WithTimeFunc(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// TTL returns the configured session lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue builds a signed session token for the given admin user. The token
// carries a snapshot of the user's identity and expires after the configured
// TTL. Fails with ErrNoSecret when no signing secret is configured; an
// unsigned token is never produced.
func (s *TokenService) Issue(user *models.AdminUser) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := s.now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		Type:  TokenTypeAdminSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a presented session token and recovers the principal it
// was issued for. The signature is checked in constant time by the HMAC
// verifier; expiry is second-resolution and the expires-at instant itself is
// already invalid.
func (s *TokenService) Verify(tokenString string) (*SessionUser, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSecret
	}
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !token.Valid {
		return nil, ErrInvalidSignature
	}

	if claims.Type != TokenTypeAdminSession {
		return nil, ErrWrongType
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidSignature)
	}

	return &SessionUser{
		ID:    id,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}
