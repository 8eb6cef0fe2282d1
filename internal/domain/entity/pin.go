// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PinPurpose distinguishes the flows a one-time PIN can prove.
type PinPurpose string

const (
	// PinPurposeActivation activates a freshly registered account.
	PinPurposeActivation PinPurpose = "activation"
	// PinPurposeLogin authenticates a login from a specific device.
	PinPurposeLogin PinPurpose = "login"
	// PinPurposePasswordReset is reserved; the system has no passwords today
	// but the enum matches the stored column.
	PinPurposePasswordReset PinPurpose = "password_reset"
)

// IsValid checks if the PinPurpose is a valid value.
func (p PinPurpose) IsValid() bool {
	switch p {
	case PinPurposeActivation, PinPurposeLogin, PinPurposePasswordReset:
		return true
	default:
		return false
	}
}

// OneTimePin is an ephemeral credential. Only the bcrypt hash of the code is
// ever stored; the clear value exists solely in the outbound email. A PIN is
// single-use: UsedAt is set atomically on redemption and the row is retained
// for audit rather than deleted.
type OneTimePin struct {
	ID         uuid.UUID  // The unique ID for this PIN record.
	UserID     uuid.UUID  // Links the PIN to the User it belongs to.
	PinHash    string     // bcrypt hash of the numeric code.
	Purpose    PinPurpose // What redeeming this PIN proves.
	DeviceHash string     // Set only for login PINs; binds the PIN to one device.
	ExpiresAt  time.Time  // The exact time when this PIN becomes invalid.
	UsedAt     *time.Time // Nil until the PIN is consumed.
	IPAddress  string     // The address that requested the PIN.
	CreatedAt  time.Time  // Timestamp of when this PIN was issued.
}

// IsExpired reports whether the PIN is past its expiry.
func (p *OneTimePin) IsExpired(now time.Time) bool {
	return !p.ExpiresAt.After(now)
}

// IsUsed reports whether the PIN has already been redeemed.
func (p *OneTimePin) IsUsed() bool {
	return p.UsedAt != nil
}
