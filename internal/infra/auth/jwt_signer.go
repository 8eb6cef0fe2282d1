// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// accessTokenClaims is the JWT payload of an access token.
type accessTokenClaims struct {
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	DeviceHash string `json:"deviceHash"`
	TokenType  string `json:"type"`
	jwt.RegisteredClaims
}

// refreshTokenClaims is the JWT payload of a refresh token. It deliberately
// carries no role or email so a refresh token alone grants nothing.
type refreshTokenClaims struct {
	DeviceHash string `json:"deviceHash"`
	TokenType  string `json:"type"`
	jwt.RegisteredClaims
}

// jwtSigner is a concrete implementation of the TokenSigner interface using the JWT standard.
// Access and refresh tokens are signed with independent HS256 secrets.
type jwtSigner struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTSigner is the constructor for jwtSigner.
// It takes configuration values to create a new token signer instance.
func NewJWTSigner(cfg *config.Config) (service.TokenSigner, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtSigner{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
	}, nil
}

// SignAccessToken mints a short-lived access token carrying identity, role and device binding.
func (s *jwtSigner) SignAccessToken(claims entity.AccessClaims) (string, error) {
	now := time.Now()
	exp := claims.ExpiresAt
	if exp.IsZero() {
		exp = now.Add(s.accessTTL)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims{
		Email:      claims.Email,
		Role:       string(claims.Role),
		DeviceHash: claims.DeviceHash,
		TokenType:  tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// SignRefreshToken mints a long-lived refresh token carrying only identity and device binding.
func (s *jwtSigner) SignRefreshToken(claims entity.RefreshClaims) (string, error) {
	now := time.Now()
	exp := claims.ExpiresAt
	if exp.IsZero() {
		exp = now.Add(s.refreshTTL)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshTokenClaims{
		DeviceHash: claims.DeviceHash,
		TokenType:  tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := token.SignedString(s.refreshSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign refresh token")
	}

	return signed, nil
}

// VerifyAccessToken validates an access token and returns its claims.
func (s *jwtSigner) VerifyAccessToken(tokenString string) (*entity.AccessClaims, error) {
	var claims accessTokenClaims
	if err := s.parse(tokenString, &claims, s.accessSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, service.ErrTokenWrongType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	return &entity.AccessClaims{
		UserID:     userID,
		Email:      claims.Email,
		Role:       entity.Role(claims.Role),
		DeviceHash: claims.DeviceHash,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// VerifyRefreshToken validates a refresh token and returns its claims.
func (s *jwtSigner) VerifyRefreshToken(tokenString string) (*entity.RefreshClaims, error) {
	var claims refreshTokenClaims
	if err := s.parse(tokenString, &claims, s.refreshSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, service.ErrTokenWrongType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	return &entity.RefreshClaims{
		UserID:     userID,
		DeviceHash: claims.DeviceHash,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// parse validates a token string against a secret and fills the claims.
func (s *jwtSigner) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return service.ErrTokenExpired
		}

		return service.ErrTokenMalformed
	}
	if !token.Valid {
		return service.ErrTokenMalformed
	}

	return nil
}
