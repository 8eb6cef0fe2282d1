package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// IssuedPin describes a freshly issued PIN. The plaintext code exists only in
// memory long enough to be delivered to the user.
type IssuedPin struct {
	Pin string
	TTL time.Duration
}

// PinIssuer generates, stores and rate limits one-time PINs. Issuing a new
// PIN invalidates all earlier unredeemed PINs of the same purpose, so at most
// one PIN per user and purpose is redeemable at any time.
type PinIssuer interface {
	// Issue creates a PIN for the user and purpose. When the purpose is
	// device bound the PIN only redeems on the issuing device. Returns
	// the domain's rate limit error when the user has exhausted their
	// hourly issuance budget.
	Issue(ctx context.Context, user *entity.User, purpose entity.PinPurpose, device entity.Device) (*IssuedPin, error)
}
