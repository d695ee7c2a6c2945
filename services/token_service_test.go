package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenServiceWith("test-secret", time.Hour)

	token, err := svc.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, name, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", userID)
	assert.Equal(t, "Alice", name)
}

func TestExpiredTokenIsExpiredNotInvalid(t *testing.T) {
	svc := NewTokenServiceWith("test-secret", -time.Minute)

	token, err := svc.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenWrongSecretIsInvalid(t *testing.T) {
	issuer := NewTokenServiceWith("secret-a", time.Hour)
	verifier := NewTokenServiceWith("secret-b", time.Hour)

	token, err := issuer.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestMalformedTokenIsInvalid(t *testing.T) {
	svc := NewTokenServiceWith("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, _, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestTamperedTokenIsInvalid(t *testing.T) {
	svc := NewTokenServiceWith("test-secret", time.Hour)

	token, err := svc.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, _, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewTokenServiceUsesConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")
	t.Setenv("JWT_TTL_HOURS", "1")

	svc := NewTokenService()
	token, err := svc.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)

	userID, _, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", userID)

	// a verifier with a different key must reject it
	_, _, err = NewTokenServiceWith("other-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokensFromSeparateLoginsResolveSameUser(t *testing.T) {
	svc := NewTokenServiceWith("test-secret", time.Hour)

	t1, err := svc.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)
	t2, err := svc.Issue("64f1a2b3c4d5e6f7a8b9c0d1", "Alice")
	require.NoError(t, err)

	u1, _, err := svc.Verify(t1)
	require.NoError(t, err)
	u2, _, err := svc.Verify(t2)
	require.NoError(t, err)
	assert.Equal(t, u1, u2)
}
