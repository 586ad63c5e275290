package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestJWTManager_GeneratePair(t *testing.T) {
	manager := newTestManager()

	t.Run("issues both tokens", func(t *testing.T) {
		pair, err := manager.GeneratePair("507f1f77bcf86cd799439011")

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	})

	t.Run("tokens minted in the same second are unique", func(t *testing.T) {
		userID := "507f1f77bcf86cd799439011"

		first, err := manager.GenerateRefreshToken(userID)
		require.NoError(t, err)
		second, err := manager.GenerateRefreshToken(userID)
		require.NoError(t, err)

		// Rotation relies on every minted token being distinct; identical
		// strings would make a superseded token indistinguishable from the
		// current one.
		assert.NotEqual(t, first, second)

		firstClaims, err := manager.ValidateRefreshToken(first)
		require.NoError(t, err)
		secondClaims, err := manager.ValidateRefreshToken(second)
		require.NoError(t, err)
		assert.NotEmpty(t, firstClaims.ID)
		assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
	})

	t.Run("tokens carry the user ID", func(t *testing.T) {
		userID := "507f1f77bcf86cd799439011"
		pair, err := manager.GeneratePair(userID)
		require.NoError(t, err)

		accessClaims, err := manager.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, accessClaims.UserID)

		refreshClaims, err := manager.ValidateRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, userID, refreshClaims.UserID)
	})
}

func TestJWTManager_SecretSeparation(t *testing.T) {
	manager := newTestManager()
	pair, err := manager.GeneratePair("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	t.Run("refresh token is rejected by access validation", func(t *testing.T) {
		_, err := manager.ValidateAccessToken(pair.RefreshToken)

		assert.Error(t, err)
	})

	t.Run("access token is rejected by refresh validation", func(t *testing.T) {
		_, err := manager.ValidateRefreshToken(pair.AccessToken)

		assert.Error(t, err)
	})
}

func TestJWTManager_Validate(t *testing.T) {
	manager := newTestManager()

	t.Run("expired token returns ErrTokenExpired", func(t *testing.T) {
		expired := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)
		token, err := expired.GenerateAccessToken("507f1f77bcf86cd799439011")
		require.NoError(t, err)

		_, err = manager.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage returns ErrTokenMalformed", func(t *testing.T) {
		_, err := manager.ValidateAccessToken("not.a.jwt")

		assert.ErrorIs(t, err, ErrTokenMalformed)
	})

	t.Run("wrong signature returns ErrTokenInvalid", func(t *testing.T) {
		other := NewJWTManager("different-secret", "refresh-secret", 15*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken("507f1f77bcf86cd799439011")
		require.NoError(t, err)

		_, err = manager.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("valid token carries issue time", func(t *testing.T) {
		token, err := manager.GenerateAccessToken("507f1f77bcf86cd799439011")
		require.NoError(t, err)

		claims, err := manager.ValidateAccessToken(token)

		require.NoError(t, err)
		require.NotNil(t, claims.IssuedAt)
		assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)
	})
}

func TestJWTManager_AccessTokenTTL(t *testing.T) {
	manager := newTestManager()

	assert.Equal(t, 15*time.Minute, manager.AccessTokenTTL())
}
