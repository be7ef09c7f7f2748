package security_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Rrens/fitcoach/internal/security"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-with-32-chars!!"

func newManager() *security.JWTManager {
	return security.NewJWTManager(testSecret, 15*time.Minute, 7*24*time.Hour)
}

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := newManager()
	userID := uuid.New()

	accessToken, err := manager.GenerateAccessToken(userID, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	claims, err := manager.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTManager_GenerateTokenPair(t *testing.T) {
	manager := newManager()
	userID := uuid.New()

	accessToken, refreshToken, expiresIn, err := manager.GenerateTokenPair(userID, "ana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), expiresIn)

	extracted, err := manager.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, extracted)
}

func TestJWTManager_TokenTypesAreNotInterchangeable(t *testing.T) {
	manager := newManager()
	accessToken, refreshToken, _, err := manager.GenerateTokenPair(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(refreshToken)
	assert.True(t, errors.Is(err, security.ErrWrongTokenType))

	_, err = manager.ValidateRefreshToken(accessToken)
	assert.True(t, errors.Is(err, security.ErrWrongTokenType))
}

func TestJWTManager_InvalidToken(t *testing.T) {
	manager := newManager()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "invalid-token"},
		{name: "empty", token: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.ValidateAccessToken(tt.token)
			assert.Error(t, err)
		})
	}

	other := security.NewJWTManager("different-secret-key-32-chars!!", 15*time.Minute, time.Hour)
	token, err := other.GenerateAccessToken(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_Expired(t *testing.T) {
	manager := security.NewJWTManager(testSecret, -time.Minute, time.Hour)
	token, err := manager.GenerateAccessToken(uuid.New(), "ana@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_AccessTokenTTL(t *testing.T) {
	manager := security.NewJWTManager(testSecret, 30*time.Minute, time.Hour)
	assert.Equal(t, 30*time.Minute, manager.AccessTokenTTL())
}
