// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pinLimiterKey is the cache key for the per-user PIN issuance counter.
func pinLimiterKey(userID uuid.UUID, purpose entity.PinPurpose) string {
	return fmt.Sprintf("pin:%s:%s", userID, purpose)
}

// pinIssuer implements the PinIssuer interface.
type pinIssuer struct {
	txManager   repository.TransactionManager
	generator   service.PinGenerator
	hasher      service.PinHasher
	rateLimiter service.RateLimiter
	cfg         *config.PinConfig
	logger      *slog.Logger
}

// NewPinIssuer is the constructor for pinIssuer. It receives all dependencies as interfaces.
func NewPinIssuer(
	txManager repository.TransactionManager,
	generator service.PinGenerator,
	hasher service.PinHasher,
	rateLimiter service.RateLimiter,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PinIssuer {
	return &pinIssuer{
		txManager:   txManager,
		generator:   generator,
		hasher:      hasher,
		rateLimiter: rateLimiter,
		cfg:         cfg.Pin,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *pinIssuer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ttlFor returns the validity window for a PIN purpose. Login PINs live
// shorter than activation PINs.
func (srv *pinIssuer) ttlFor(purpose entity.PinPurpose) time.Duration {
	if purpose == entity.PinPurposeLogin {
		return srv.cfg.LoginTTL
	}

	return srv.cfg.ActivationTTL
}

// Issue creates a PIN for the user and purpose, invalidating earlier ones.
func (srv *pinIssuer) Issue(ctx context.Context, user *entity.User, purpose entity.PinPurpose, device entity.Device) (*usecase.IssuedPin, error) {
	srv.log(ctx).Debug("Issuing pin", slog.Any("user_id", user.ID), slog.String("purpose", string(purpose)))

	// 1. Cheap first gate on Redis before touching Postgres.
	allowed, err := srv.rateLimiter.Allow(ctx, pinLimiterKey(user.ID, purpose), srv.cfg.MaxIssuesPerHour, time.Hour)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check pin issuance rate limit")
	}
	if !allowed {
		return nil, errors.Wrap(domainerrors.ErrTooManyPinRequests, "pin issuance rate limited")
	}

	// 2. Generate and hash the code before opening the transaction.
	pin, err := srv.generator.Generate(srv.cfg.Length)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pin")
	}
	pinHash, err := srv.hasher.Hash(pin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash pin")
	}

	ttl := srv.ttlFor(purpose)
	now := time.Now()

	// Login PINs are bound to the requesting device; activation PINs are
	// user wide and may be redeemed from anywhere.
	deviceHash := ""
	if purpose == entity.PinPurposeLogin {
		deviceHash = device.Hash
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pinRepo := repoFactory.PinRepo()

		// 3. The issuance budget counts every PIN created in the last
		// hour, including ones already invalidated, so the authoritative
		// check lives in Postgres even when Redis failed open.
		issued, err := pinRepo.CountIssuedSince(ctx, user.ID, purpose, now.Add(-time.Hour))
		if err != nil {
			return errors.Wrap(err, "failed to count issued pins")
		}
		if issued >= int64(srv.cfg.MaxIssuesPerHour) {
			return errors.Wrap(domainerrors.ErrTooManyPinRequests, "pin issuance budget exhausted")
		}

		// 4. Invalidate earlier unredeemed PINs so exactly one stays
		// redeemable per key. For login PINs the sweep is scoped to the
		// requesting device; a PIN pending on another device survives.
		if err := pinRepo.Invalidate(ctx, user.ID, purpose, deviceHash); err != nil {
			return errors.WithStack(err)
		}

		// 5. Persist the new PIN.
		newPin := &entity.OneTimePin{
			UserID:     user.ID,
			PinHash:    pinHash,
			Purpose:    purpose,
			DeviceHash: deviceHash,
			IPAddress:  device.IP,
			ExpiresAt:  now.Add(ttl),
		}

		return errors.WithStack(pinRepo.Create(ctx, newPin))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to issue pin", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, err
	}
	srv.log(ctx).Info("Successfully issued pin", slog.Any("user_id", user.ID), slog.String("purpose", string(purpose)))

	return &usecase.IssuedPin{Pin: pin, TTL: ttl}, nil
}
