package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshRecordNotFound indicates no stored refresh token matches the query.
var ErrRefreshRecordNotFound = errors.New("refresh token record not found")

// RefreshTokenRepository defines persistence operations for issued refresh tokens.
// Exactly one refresh token is stored per user and device pair.
type RefreshTokenRepository interface {
	// Upsert stores the refresh token record, replacing any existing record
	// for the same user and device.
	Upsert(ctx context.Context, record *entity.RefreshTokenRecord) error

	// Find returns the stored record for the user and device.
	// Returns ErrRefreshRecordNotFound when none exists.
	Find(ctx context.Context, userID uuid.UUID, deviceHash string) (*entity.RefreshTokenRecord, error)

	// Delete removes the stored record for the user and device.
	Delete(ctx context.Context, userID uuid.UUID, deviceHash string) error

	// DeleteAllForUser removes every stored record of the user and returns
	// how many were removed.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteExpiredBefore removes records that expired before the cutoff.
	// Returns the number of records removed.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
