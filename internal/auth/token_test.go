package auth

import (
	"testing"

	"devconnector_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string, ttlMinutes int) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, "test-secret", 60)

	token, err := GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t, "test-secret", -1)

	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, "test-secret", 60)

	_, err := ParseToken("not-a-jwt-at-all")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, "secret-one", 60)
	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	setTestConfig(t, "secret-two", 60)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_EmptyUserID(t *testing.T) {
	setTestConfig(t, "test-secret", 60)

	token, err := GenerateToken("")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
