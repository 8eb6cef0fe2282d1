package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for device session operations.
type SessionUsecase interface {
	// Heartbeat verifies the device still holds an active session and
	// records activity on it. Returns the domain's session invalid error
	// when the session was ended.
	Heartbeat(ctx context.Context, userID uuid.UUID, deviceHash string) error

	// ListSessions returns the user's active sessions, most recent first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error)

	// Logout deactivates the session on the given device and revokes its
	// refresh token.
	Logout(ctx context.Context, userID uuid.UUID, deviceHash string) error

	// LogoutAll deactivates every session of the user and revokes all of
	// their refresh tokens. Returns how many refresh tokens were revoked.
	LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error)

	// CleanupStale removes inactive sessions and expired refresh tokens
	// older than the retention period. Run periodically.
	CleanupStale(ctx context.Context, retention time.Duration) (int64, error)
}
