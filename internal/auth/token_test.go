package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahanakarya/cms_api/internal/models"
)

const testSecret = "test-secret-0123456789"

func testAdmin() *models.AdminUser {
	return &models.AdminUser{
		ID:    7,
		Email: "admin@wahanakarya.co.id",
		Name:  "Administrator",
		Role:  "admin",
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, 24*time.Hour)

	token, err := svc.Issue(testAdmin())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "admin@wahanakarya.co.id", user.Email)
	assert.Equal(t, "Administrator", user.Name)
	assert.Equal(t, "admin", user.Role)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(testAdmin())
	require.NoError(t, err)

	// Flip the last byte of the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("a-different-secret", time.Hour)

	token, err := issuer.Issue(testAdmin())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_Expiry(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	svc := NewTokenService(testSecret, 24*time.Hour).
		WithTimeFunc(func() time.Time { return now })

	token, err := svc.Issue(testAdmin())
	require.NoError(t, err)

	// Just inside the window.
	now = issuedAt.Add(24*time.Hour - time.Second)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	// The expiry instant itself is already invalid.
	now = issuedAt.Add(24 * time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpired)

	now = issuedAt.Add(25 * time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestTokenService_WrongType(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	// A token signed with the correct secret but carrying a different type
	// claim must be rejected.
	claims := sessionClaims{
		Email: "admin@wahanakarya.co.id",
		Type:  "password-reset",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(7),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestTokenService_NoSecret(t *testing.T) {
	svc := NewTokenService("", time.Hour)

	_, err := svc.Issue(testAdmin())
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = svc.Verify("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestTokenService_MissingToken(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}
