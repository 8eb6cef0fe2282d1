package service

import (
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Signing and verification errors.
var (
	// ErrTokenMalformed indicates the token could not be parsed or its
	// signature did not verify.
	ErrTokenMalformed = errors.New("token malformed or signature invalid")
	// ErrTokenExpired indicates the token's validity window has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenWrongType indicates an access token was presented where a
	// refresh token was expected, or vice versa.
	ErrTokenWrongType = errors.New("token type mismatch")
)

// TokenSigner mints and verifies the signed tokens used by the auth flows.
// Access and refresh tokens are signed with independent secrets so a leaked
// access secret cannot forge refresh tokens.
type TokenSigner interface {
	// SignAccessToken mints a short-lived access token carrying the user's
	// identity, role and device binding.
	SignAccessToken(claims entity.AccessClaims) (string, error)

	// SignRefreshToken mints a long-lived refresh token carrying only the
	// user's identity and device binding.
	SignRefreshToken(claims entity.RefreshClaims) (string, error)

	// VerifyAccessToken validates an access token and returns its claims.
	VerifyAccessToken(token string) (*entity.AccessClaims, error)

	// VerifyRefreshToken validates a refresh token and returns its claims.
	VerifyRefreshToken(token string) (*entity.RefreshClaims, error)
}
