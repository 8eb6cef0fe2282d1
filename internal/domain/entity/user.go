// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. Accounts are created inactive and become
// active exactly once, through PIN activation. There is no password: proof of
// account control is always a one-time PIN delivered by email.
type User struct {
	ID              uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	FirstName       string     // The user's given name, used in email greetings.
	LastName        string     // The user's family name.
	Email           string     // Unique, case-insensitive login identifier.
	Phone           string     // Optional contact number.
	Role            Role       // Closed role set: customer, admin, vendor.
	IsActive        bool       // False until the activation PIN is redeemed.
	LoginAttempts   int        // Consecutive failed PIN verifications.
	LockedUntil     *time.Time // Non-nil while the account is locked out.
	LastLogin       *time.Time // Timestamp of the most recent successful login.
	EmailVerifiedAt *time.Time // Set once, when the activation PIN is redeemed.
	CreatedAt       time.Time  // Timestamp of when this user account was created.
	UpdatedAt       time.Time  // Timestamp of the last modification to this user's data.
	DeletedAt       *time.Time // Soft-delete marker; rows are never hard-deleted while referenced.
}

// IsLocked reports whether the lockout window is still in effect.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

// LockedMinutesRemaining returns the whole minutes left on the lockout,
// rounded up. Returns 0 when the account is not locked.
func (u *User) LockedMinutesRemaining(now time.Time) int {
	if !u.IsLocked(now) {
		return 0
	}

	remaining := u.LockedUntil.Sub(now)
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}
