package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound indicates no session matches the query.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence operations for device sessions.
type SessionRepository interface {
	// Upsert creates the session or, when one already exists for the same
	// user and device, reactivates it in place and refreshes its metadata.
	// The session's ID is populated with the stored row's ID either way.
	Upsert(ctx context.Context, session *entity.Session) error

	// FindActive returns the active session for the user and device.
	// Returns ErrSessionNotFound when none exists.
	FindActive(ctx context.Context, userID uuid.UUID, deviceHash string) (*entity.Session, error)

	// ListActiveByUser returns the user's active sessions ordered by most
	// recent activity first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// Touch updates the last activity timestamp of the session.
	Touch(ctx context.Context, userID uuid.UUID, deviceHash string, at time.Time) error

	// Deactivate marks the session for the user and device as inactive.
	Deactivate(ctx context.Context, userID uuid.UUID, deviceHash string) error

	// DeactivateAll marks every session of the user as inactive and returns
	// how many sessions were affected.
	DeactivateAll(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteInactiveBefore removes inactive sessions whose last activity is
	// older than the cutoff. Returns the number of sessions removed.
	DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
