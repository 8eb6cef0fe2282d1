// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenRecord is the persisted state that makes refresh tokens
// revocable. It is keyed by (user, device); storing a new record for the same
// device overwrites the previous one, so at most one refresh token per device
// is ever valid. Only a SHA-256 hash of the token is stored.
type RefreshTokenRecord struct {
	ID         uuid.UUID // The unique ID for this record.
	UserID     uuid.UUID // Links the record to the User it belongs to.
	DeviceHash string    // Fingerprint of the device the token was minted for.
	TokenHash  string    // SHA-256 hash of the raw refresh token.
	ExpiresAt  time.Time // Matches the refresh token's own expiry claim.
	CreatedAt  time.Time // Timestamp of when this token was minted.
}

// TokenPair is what a successful login hands back to the transport layer.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AccessClaims are the verified contents of an access token.
type AccessClaims struct {
	UserID     uuid.UUID
	Email      string
	Role       Role
	DeviceHash string
	ExpiresAt  time.Time
}

// RefreshClaims are the verified contents of a refresh token. Refresh tokens
// deliberately carry no role or email: they prove nothing but the right to
// mint a new access token for one device.
type RefreshClaims struct {
	UserID     uuid.UUID
	DeviceHash string
	ExpiresAt  time.Time
}
