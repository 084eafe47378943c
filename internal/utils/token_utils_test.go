package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminSession = domain.Session{
	ID:       "3f0c9e8e-6f1e-4a51-9d8f-2b7c1d1c0a11",
	Identity: domain.Identity{ID: "Admin", Name: "Admin User", Role: domain.RoleAdmin},
}

func TestIssueAndParseAccessToken(t *testing.T) {
	token, err := IssueAccessToken(adminSession, "secret", time.Now(), time.Hour, "site-claims")
	require.NoError(t, err)

	claims, err := ParseAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "Admin", claims.Subject)
	assert.Equal(t, adminSession.ID, claims.ID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "site-claims", claims.Issuer)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := IssueAccessToken(adminSession, "secret", time.Now(), time.Hour, "site-claims")
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAccessToken_Expired(t *testing.T) {
	token, err := IssueAccessToken(adminSession, "secret", time.Now().Add(-2*time.Hour), time.Hour, "site-claims")
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAccessToken_RequiresSessionID(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "Admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
}

func TestPasswordMatches(t *testing.T) {
	hash, err := HashPassword("Password")
	require.NoError(t, err)
	assert.NotEqual(t, "Password", hash)

	user := &domain.User{ID: "Admin", PasswordHash: hash}
	assert.True(t, PasswordMatches(user, "Password"))
	assert.False(t, PasswordMatches(user, "password"))
}

func TestPasswordMatches_UnknownUserCostsABcryptCompare(t *testing.T) {
	hash, err := HashPassword("Password")
	require.NoError(t, err)
	user := &domain.User{ID: "Admin", PasswordHash: hash}
	PasswordMatches(nil, "warm-up")

	start := time.Now()
	assert.False(t, PasswordMatches(user, "wrong"))
	wrongPassword := time.Since(start)

	start = time.Now()
	assert.False(t, PasswordMatches(nil, "Password"))
	unknownUser := time.Since(start)

	assert.Greater(t, unknownUser, wrongPassword/4)
}

func TestNewSigningSecret(t *testing.T) {
	a, err := NewSigningSecret()
	require.NoError(t, err)
	assert.Len(t, a, 2*signingSecretBytes)

	b, err := NewSigningSecret()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
