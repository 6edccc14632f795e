package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret-1234"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, 60)

	token, err := m.GenerateAccessToken(7, "ana", "Ana Marin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "Ana Marin", claims.FullName)
	assert.Equal(t, "autonom-backend", claims.Issuer)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, 60)
	other := NewTokenManager("another-secret-another-secret-another-00", 60)

	token, err := m.GenerateAccessToken(7, "ana", "")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager(testSecret, -1)

	token, err := m.GenerateAccessToken(7, "ana", "")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager(testSecret, 60)
	_, err := m.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
