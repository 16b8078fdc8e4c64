// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/inventory-api/internal/config"
	"github.com/carterperez-dev/inventory-api/internal/core"
	"github.com/carterperez-dev/inventory-api/internal/middleware"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            testSecret,
		AccessTokenExpire: time.Hour,
		Issuer:            "inventory-api-test",
		Audience:          "inventory-api",
	}
}

func testClaim() middleware.IdentityClaim {
	return middleware.IdentityClaim{
		UserID:    7,
		Email:     "jo@example.com",
		Username:  "jo",
		FirstName: "Jo",
		LastName:  "Smith",
		Role:      "manager",
	}
}

func TestTokenManager_MissingSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""

	_, err := NewTokenManager(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConfig)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := manager.Issue(testClaim())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claim, err := manager.Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claim.UserID)
	assert.Equal(t, "jo@example.com", claim.Email)
	assert.Equal(t, "jo", claim.Username)
	assert.Equal(t, "Jo", claim.FirstName)
	assert.Equal(t, "Smith", claim.LastName)
	assert.Equal(t, "manager", claim.Role)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpire = -time.Minute

	manager, err := NewTokenManager(cfg)
	require.NoError(t, err)

	token, err := manager.Issue(testClaim())
	require.NoError(t, err)

	_, err = manager.Verify(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTokenManager_TamperedToken(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := manager.Issue(testClaim())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a character in the signature.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = manager.Verify(context.Background(), tampered)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTokenManager_WrongKey(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "ffffffffffffffffffffffffffffffff"
	otherManager, err := NewTokenManager(other)
	require.NoError(t, err)

	token, err := manager.Issue(testClaim())
	require.NoError(t, err)

	_, err = otherManager.Verify(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTokenManager_FailuresAreIndistinguishable(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpire = -time.Minute

	expiredManager, err := NewTokenManager(cfg)
	require.NoError(t, err)

	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	expired, err := expiredManager.Issue(testClaim())
	require.NoError(t, err)

	_, expErr := manager.Verify(context.Background(), expired)
	_, garbageErr := manager.Verify(context.Background(), "not.a.token")

	require.Error(t, expErr)
	require.Error(t, garbageErr)
	assert.True(t, errors.Is(expErr, core.ErrTokenInvalid))
	assert.True(t, errors.Is(garbageErr, core.ErrTokenInvalid))
}
