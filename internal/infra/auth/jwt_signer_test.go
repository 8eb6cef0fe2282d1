package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSignerConfig() *config.Config {
	return &config.Config{
		SecretKey: struct {
			Access  string `json:"access" yaml:"access"`
			Refresh string `json:"refresh" yaml:"refresh"`
		}{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

func TestJWTSigner_SignAndVerifyAccessToken(t *testing.T) {
	signer, err := NewJWTSigner(newSignerConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := signer.SignAccessToken(entity.AccessClaims{
		UserID:     userID,
		Email:      "ada@example.com",
		Role:       entity.RoleCustomer,
		DeviceHash: "device-hash-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := signer.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
	assert.Equal(t, "device-hash-1", claims.DeviceHash)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTSigner_SignAndVerifyRefreshToken(t *testing.T) {
	signer, err := NewJWTSigner(newSignerConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := signer.SignRefreshToken(entity.RefreshClaims{
		UserID:     userID,
		DeviceHash: "device-hash-1",
	})
	require.NoError(t, err)

	claims, err := signer.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "device-hash-1", claims.DeviceHash)
}

func TestJWTSigner_TokenTypesAreNotInterchangeable(t *testing.T) {
	signer, err := NewJWTSigner(newSignerConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, err := signer.SignAccessToken(entity.AccessClaims{
		UserID:     userID,
		DeviceHash: "device-hash-1",
	})
	require.NoError(t, err)

	refreshToken, err := signer.SignRefreshToken(entity.RefreshClaims{
		UserID:     userID,
		DeviceHash: "device-hash-1",
	})
	require.NoError(t, err)

	// The secrets differ, so a token presented to the wrong verifier fails
	// signature validation before the type check even runs.
	_, err = signer.VerifyRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = signer.VerifyAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTSigner_ExpiredToken(t *testing.T) {
	cfg := newSignerConfig()
	signer, err := NewJWTSigner(cfg)
	require.NoError(t, err)

	token, err := signer.SignAccessToken(entity.AccessClaims{
		UserID:     uuid.New(),
		DeviceHash: "device-hash-1",
		ExpiresAt:  time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	claims, err := signer.VerifyAccessToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTSigner_MalformedToken(t *testing.T) {
	signer, err := NewJWTSigner(newSignerConfig())
	require.NoError(t, err)

	claims, err := signer.VerifyAccessToken("clearly-not-a-jwt-token")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTSigner_TamperedToken(t *testing.T) {
	signer, err := NewJWTSigner(newSignerConfig())
	require.NoError(t, err)

	token, err := signer.SignAccessToken(entity.AccessClaims{
		UserID:     uuid.New(),
		DeviceHash: "device-hash-1",
	})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := signer.VerifyAccessToken(tampered)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTSigner_EmptySecrets(t *testing.T) {
	cfg := newSignerConfig()
	cfg.SecretKey.Access = ""
	cfg.SecretKey.Refresh = ""

	signer, err := NewJWTSigner(cfg)
	assert.Error(t, err)
	assert.Nil(t, signer)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
