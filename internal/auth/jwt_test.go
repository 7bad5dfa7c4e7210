package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("s3cret", "safespot", "safespot", time.Hour)
	user := uuid.New()

	tok, err := a.GenerateToken(user)
	require.NoError(t, err)

	parsed, err := a.ValidateAccessToken(tok)
	require.NoError(t, err)

	got, err := a.UserID(parsed)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTAuthenticator("one", "safespot", "safespot", time.Hour)
	checker := NewJWTAuthenticator("two", "safespot", "safespot", time.Hour)

	tok, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = checker.ValidateAccessToken(tok)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	a := NewJWTAuthenticator("s3cret", "safespot", "safespot", -time.Minute)

	tok, err := a.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(tok)
	assert.Error(t, err)
}

func TestValidateRejectsOtherIssuer(t *testing.T) {
	issuer := NewJWTAuthenticator("s3cret", "safespot", "someone-else", time.Hour)
	checker := NewJWTAuthenticator("s3cret", "safespot", "safespot", time.Hour)

	tok, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = checker.ValidateAccessToken(tok)
	assert.Error(t, err)
}
