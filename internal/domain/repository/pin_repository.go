package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for one-time PIN operations.
var (
	// ErrPinNotFound indicates no usable PIN matches the query.
	ErrPinNotFound = errors.New("pin not found")
	// ErrPinAlreadyUsed indicates the PIN was consumed by a concurrent request.
	ErrPinAlreadyUsed = errors.New("pin already used")
)

// PinRepository defines persistence operations for one-time PINs.
type PinRepository interface {
	// Create persists a newly issued PIN.
	Create(ctx context.Context, pin *entity.OneTimePin) error

	// FindNewestValid returns the most recently issued PIN for the user and
	// purpose that is unused and not expired at the given instant. When
	// deviceHash is non-empty the PIN must also be bound to that device.
	// Returns ErrPinNotFound when no such PIN exists.
	FindNewestValid(ctx context.Context, userID uuid.UUID, purpose entity.PinPurpose, deviceHash string, now time.Time) (*entity.OneTimePin, error)

	// MarkUsed consumes a PIN by stamping its used time. The update only
	// succeeds when the PIN is still unused; a concurrent redemption yields
	// ErrPinAlreadyUsed.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error

	// Invalidate soft deletes all outstanding unused PINs for the user and
	// purpose, so reissuing a PIN leaves exactly one redeemable. A non-empty
	// deviceHash narrows the sweep to PINs bound to that device, leaving
	// other devices' pending PINs untouched.
	Invalidate(ctx context.Context, userID uuid.UUID, purpose entity.PinPurpose, deviceHash string) error

	// CountIssuedSince returns how many PINs were issued for the user and
	// purpose after the given instant, including invalidated ones. Used for
	// issuance rate limiting.
	CountIssuedSince(ctx context.Context, userID uuid.UUID, purpose entity.PinPurpose, since time.Time) (int64, error)
}
