package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken("user-123", "alice")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "access", claims.Type)
	assert.NotEmpty(t, claims.ID) // jti cho blacklist
}

func TestTokenTypeMismatch(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 24*time.Hour)

	access, err := m.GenerateAccessToken("user-123", "alice")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-123", "alice")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 24*time.Hour)
	other := NewManager("other-secret", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken("user-123", "alice")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken("user-123", "alice")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestEachTokenHasUniqueJTI(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 24*time.Hour)

	first, err := m.GenerateRefreshToken("user-123", "alice")
	require.NoError(t, err)
	second, err := m.GenerateRefreshToken("user-123", "alice")
	require.NoError(t, err)

	firstClaims, err := m.ValidateRefreshToken(first)
	require.NoError(t, err)
	secondClaims, err := m.ValidateRefreshToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
