package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Heartbeat verifies the device session is still active and records activity.
func (srv *sessionService) Heartbeat(ctx context.Context, userID uuid.UUID, deviceHash string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		// A logged-out or swept session fails here even when the access
		// token itself is still within its validity window.
		if _, err := sessionRepo.FindActive(ctx, userID, deviceHash); err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionInvalid, "heartbeat failed")
			}

			return errors.Wrap(err, "failed to find session")
		}

		return errors.WithStack(sessionRepo.Touch(ctx, userID, deviceHash, time.Now()))
	})
	if err != nil {
		srv.log(ctx).Debug("Session heartbeat failed", slog.Any("error", err), slog.Any("user_id", userID))

		return err
	}

	return nil
}

// ListSessions retrieves all active sessions for a user.
func (srv *sessionService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*entity.SessionInfo, error) {
	srv.log(ctx).Debug("Listing active sessions", slog.Any("user_id", userID))

	var infos []*entity.SessionInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		// 1. Verify user exists
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "list sessions failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Collect active sessions, most recent first
		sessions, err := sessionRepo.ListActiveByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}

		infos = make([]*entity.SessionInfo, 0, len(sessions))
		for _, s := range sessions {
			infos = append(infos, s.Info())
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, err
	}
	srv.log(ctx).Debug("Successfully listed sessions", slog.Any("user_id", userID), slog.Int("count", len(infos)))

	return infos, nil
}

// Logout ends the session on the given device and revokes its refresh token.
func (srv *sessionService) Logout(ctx context.Context, userID uuid.UUID, deviceHash string) error {
	srv.log(ctx).Info("Logging out device", slog.Any("user_id", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The session row survives as an inactive audit record; the
		// refresh token record is gone for good.
		if err := repoFactory.SessionRepo().Deactivate(ctx, userID, deviceHash); err != nil {
			return errors.WithStack(err)
		}

		return errors.WithStack(repoFactory.RefreshTokenRepo().Delete(ctx, userID, deviceHash))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to log out device", slog.Any("error", err), slog.Any("user_id", userID))

		return err
	}
	srv.log(ctx).Info("Successfully logged out device", slog.Any("user_id", userID))

	return nil
}

// LogoutAll ends every session of the user and revokes all refresh tokens.
// Returns how many refresh tokens were revoked.
func (srv *sessionService) LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	srv.log(ctx).Info("Logging out all devices", slog.Any("user_id", userID))

	var ended, revoked int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.SessionRepo().DeactivateAll(ctx, userID)
		if err != nil {
			return errors.WithStack(err)
		}
		ended = count

		revoked, err = repoFactory.RefreshTokenRepo().DeleteAllForUser(ctx, userID)

		return errors.WithStack(err)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to log out all devices", slog.Any("error", err), slog.Any("user_id", userID))

		return 0, err
	}
	srv.log(ctx).Info("Successfully logged out all devices",
		slog.Any("user_id", userID), slog.Int64("sessions", ended), slog.Int64("tokens", revoked))

	return revoked, nil
}

// CleanupStale removes old inactive sessions and expired refresh tokens.
func (srv *sessionService) CleanupStale(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	srv.log(ctx).Debug("Cleaning up stale sessions", slog.Time("cutoff", cutoff))

	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessions, err := repoFactory.SessionRepo().DeleteInactiveBefore(ctx, cutoff)
		if err != nil {
			return errors.WithStack(err)
		}

		tokens, err := repoFactory.RefreshTokenRepo().DeleteExpiredBefore(ctx, time.Now())
		if err != nil {
			return errors.WithStack(err)
		}
		removed = sessions + tokens

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to clean up stale sessions", slog.Any("error", err))

		return 0, err
	}
	if removed > 0 {
		srv.log(ctx).Info("Successfully cleaned up stale sessions", slog.Int64("removed", removed))
	}

	return removed, nil
}
