package impl

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	txManager repository.TransactionManager
	signer    service.TokenSigner
	logger    *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(
	txManager repository.TransactionManager,
	signer service.TokenSigner,
	logger *slog.Logger,
) usecase.TokenUsecase {
	return &tokenService{
		txManager: txManager,
		signer:    signer,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Refresh validates a refresh token and mints a new access token.
func (srv *tokenService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Refreshing access token")

	// 1. Verify the signature and expiry before touching the database.
	claims, err := srv.signer.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh failed")
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh failed")
	}

	// 2. The token only works on the device it was minted for.
	if claims.DeviceHash != input.Device.Hash {
		return nil, errors.Wrap(domainerrors.ErrDeviceMismatch, "refresh failed")
	}

	var output *usecase.RefreshOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		now := time.Now()

		// 3. The presented token must match the one on record for this
		// user and device. A logout or a newer login replaces the record
		// and retires every token minted before it.
		record, err := refreshRepo.Find(ctx, claims.UserID, claims.DeviceHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshRecordNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidRefreshToken, "no refresh token on record")
			}

			return errors.Wrap(err, "failed to find refresh token record")
		}

		sum := sha256.Sum256([]byte(input.RefreshToken))
		presented := hex.EncodeToString(sum[:])
		if subtle.ConstantTimeCompare([]byte(presented), []byte(record.TokenHash)) != 1 {
			return errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh token superseded")
		}
		if record.ExpiresAt.Before(now) {
			return errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh failed")
		}

		// 4. The account must still exist and be active. Both absence and
		// deactivation surface the same way.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "refresh failed")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrUserNotFound, "refresh failed")
		}

		// 5. Mint the new access token. The refresh token is not rotated,
		// and session activity is left to the authenticated requests the
		// new access token makes.
		accessToken, err := srv.signer.SignAccessToken(entity.AccessClaims{
			UserID:     user.ID,
			Email:      user.Email,
			Role:       user.Role,
			DeviceHash: claims.DeviceHash,
		})
		if err != nil {
			return errors.Wrap(err, "failed to sign access token")
		}

		output = &usecase.RefreshOutput{AccessToken: accessToken, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Successfully refreshed access token", slog.Any("user_id", output.User.ID))

	return output, nil
}
