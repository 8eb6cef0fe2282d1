// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record of an authenticated (user, device) pair.
// Exactly one row exists per pair; logging out flips IsActive instead of
// deleting, so the row doubles as an audit trail.
type Session struct {
	ID           uuid.UUID  // The unique ID for this session record.
	UserID       uuid.UUID  // Links this session to the User it belongs to.
	DeviceHash   string     // Fingerprint of the device this session is bound to.
	DeviceName   string     // Human-readable label, e.g. "Chrome on macOS".
	IPAddress    string     // Address observed at the most recent login.
	UserAgent    string     // Raw user-agent observed at the most recent login.
	IsActive     bool       // False after logout; the row is kept.
	LastActivity time.Time  // Bumped on every authenticated request.
	ExpiresAt    *time.Time // Optional hard expiry.
	CreatedAt    time.Time  // Timestamp of the first login from this device.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}

// SessionInfo is the projection returned to the account owner when listing
// devices. It deliberately omits the fields used for auth decisions.
type SessionInfo struct {
	ID           uuid.UUID `json:"id"`
	DeviceName   string    `json:"device_name"`
	DeviceHash   string    `json:"device_hash"`
	IPAddress    string    `json:"ip_address"`
	LastActivity time.Time `json:"last_activity"`
	CreatedAt    time.Time `json:"created_at"`
}

// Info returns the owner-facing projection of the session.
func (s *Session) Info() *SessionInfo {
	return &SessionInfo{
		ID:           s.ID,
		DeviceName:   s.DeviceName,
		DeviceHash:   s.DeviceHash,
		IPAddress:    s.IPAddress,
		LastActivity: s.LastActivity,
		CreatedAt:    s.CreatedAt,
	}
}
