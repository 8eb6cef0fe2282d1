package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
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

	"github.com/pkg/errors"
)

// loginAttemptsKey is the cache key for the per-email login attempt counter.
func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	pinIssuer   usecase.PinIssuer
	hasher      service.PinHasher
	signer      service.TokenSigner
	mailer      service.PinMailer
	rateLimiter service.RateLimiter
	authCfg     *config.AuthConfig
	pinCfg      *config.PinConfig
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	pinIssuer usecase.PinIssuer,
	hasher service.PinHasher,
	signer service.TokenSigner,
	mailer service.PinMailer,
	rateLimiter service.RateLimiter,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:   txManager,
		pinIssuer:   pinIssuer,
		hasher:      hasher,
		signer:      signer,
		mailer:      mailer,
		rateLimiter: rateLimiter,
		authCfg:     cfg.Auth,
		pinCfg:      cfg.Pin,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and sends an activation PIN.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. An email that belongs to an activated account is taken. The
		// lookup includes soft-deleted rows; a closed account, like a
		// stalled registration, is revived in place and requeued for
		// activation instead of colliding with the email uniqueness
		// constraint.
		existing, err := userRepo.FindByEmailAny(ctx, input.Email)
		if err == nil {
			if existing.IsActive {
				return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
			}

			existing.DeletedAt = nil
			existing.FirstName = input.FirstName
			existing.LastName = input.LastName
			existing.Phone = input.Phone
			if err := userRepo.Update(ctx, existing); err != nil {
				return errors.WithStack(err)
			}
			registeredUser = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		// 2. Create the account. It stays inactive until the activation
		// PIN is redeemed.
		newUser := &entity.User{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Phone:     input.Phone,
			Role:      entity.RoleCustomer,
			IsActive:  false,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserEmailExists) {
				return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
			}

			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}

	// 3. Issue and deliver the activation PIN. A delivery failure surfaces
	// to the caller so the user knows to request a new PIN.
	issued, err := srv.pinIssuer.Issue(ctx, registeredUser, entity.PinPurposeActivation, input.Device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue activation pin")
	}
	if err := srv.mailer.SendActivationPin(ctx, registeredUser, issued.Pin, int(issued.TTL.Minutes())); err != nil {
		srv.log(ctx).Error("Failed to deliver activation pin", slog.Any("error", err), slog.Any("user_id", registeredUser.ID))

		return nil, errors.Wrap(err, "failed to deliver activation pin")
	}
	srv.log(ctx).Info("Successfully registered user", slog.Any("user_id", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Activate redeems an activation PIN and activates the account. No tokens
// are minted here; the login PIN flow stays the only path to a session.
func (srv *authService) Activate(ctx context.Context, input *usecase.ActivateInput) (*usecase.ActivateOutput, error) {
	srv.log(ctx).Info("Starting account activation", slog.String("email", input.Email))

	var activated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		pinRepo := repoFactory.PinRepo()

		// 1. Find the account being activated.
		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "activation failed")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.IsActive {
			return errors.Wrap(domainerrors.ErrAccountAlreadyActive, "activation failed")
		}

		// 2. Look up the outstanding activation PIN. Activation PINs are
		// not device bound, the user may confirm on any device.
		now := time.Now()
		pin, err := pinRepo.FindNewestValid(ctx, user.ID, entity.PinPurposeActivation, "", now)
		if err != nil {
			if errors.Is(err, repository.ErrPinNotFound) {
				return errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "activation failed")
			}

			return errors.Wrap(err, "failed to find activation pin")
		}

		// 3. Check the code.
		if err := srv.hasher.Compare(pin.PinHash, input.Pin); err != nil {
			return errors.Wrap(domainerrors.ErrInvalidPin, "activation failed")
		}

		// 4. Consume the PIN. A concurrent redemption loses here.
		if err := pinRepo.MarkUsed(ctx, pin.ID, now); err != nil {
			if errors.Is(err, repository.ErrPinAlreadyUsed) {
				return errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "activation failed")
			}

			return errors.WithStack(err)
		}

		// 5. Activate the account.
		user.IsActive = true
		user.EmailVerifiedAt = &now
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.WithStack(err)
		}
		activated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Activation failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}

	// The redeemed PIN retires the issuance counter along with it.
	if err := srv.rateLimiter.Reset(ctx, pinLimiterKey(activated.ID, entity.PinPurposeActivation)); err != nil {
		srv.log(ctx).Warn("Failed to reset activation pin counter", slog.Any("error", err), slog.Any("user_id", activated.ID))
	}

	// Welcome mail is best effort, failures only get logged.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.mailer.SendWelcome(bgCtx, activated); err != nil {
			srv.logger.Warn("Failed to send welcome mail", slog.Any("error", err), slog.Any("user_id", activated.ID))
		}
	}()

	srv.log(ctx).Info("Successfully activated account", slog.Any("user_id", activated.ID))

	return &usecase.ActivateOutput{User: activated}, nil
}

// ResendActivationPin reissues the activation PIN for an inactive account.
// The activation path guides a known user through signup, so unlike the
// login path it reports unknown emails instead of hiding them.
func (srv *authService) ResendActivationPin(ctx context.Context, input *usecase.ResendActivationPinInput) error {
	srv.log(ctx).Debug("Resending activation pin", slog.String("email", input.Email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "resend activation pin failed")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return err
	}
	if user.IsActive {
		return errors.Wrap(domainerrors.ErrAccountAlreadyActive, "resend activation pin failed")
	}

	issued, err := srv.pinIssuer.Issue(ctx, user, entity.PinPurposeActivation, input.Device)
	if err != nil {
		return errors.Wrap(err, "failed to issue activation pin")
	}
	if err := srv.mailer.SendActivationPin(ctx, user, issued.Pin, int(issued.TTL.Minutes())); err != nil {
		return errors.Wrap(err, "failed to deliver activation pin")
	}
	srv.log(ctx).Info("Successfully reissued activation pin", slog.Any("user_id", user.ID))

	return nil
}

// RequestLoginPin issues a login PIN bound to the requesting device.
func (srv *authService) RequestLoginPin(ctx context.Context, input *usecase.RequestLoginPinInput) error {
	srv.log(ctx).Debug("Login pin requested", slog.String("email", input.Email))

	user, err := srv.findUserQuietly(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		// Unknown or inactive accounts get the same answer as known ones
		// so the endpoint cannot confirm which emails exist. The request
		// still burns a counted attempt against the email.
		if _, err := srv.rateLimiter.Allow(ctx, loginAttemptsKey(input.Email), srv.authCfg.MaxLoginFailures, srv.authCfg.LockoutDuration); err != nil {
			srv.log(ctx).Warn("Failed to count login pin request", slog.Any("error", err))
		}

		return nil
	}

	now := time.Now()
	if user.IsLocked(now) {
		return domainerrors.NewAccountLockedError(user.LockedMinutesRemaining(now))
	}

	issued, err := srv.pinIssuer.Issue(ctx, user, entity.PinPurposeLogin, input.Device)
	if err != nil {
		return errors.Wrap(err, "failed to issue login pin")
	}
	if err := srv.mailer.SendLoginPin(ctx, user, issued.Pin, int(issued.TTL.Minutes()), input.Device.Name); err != nil {
		return errors.Wrap(err, "failed to deliver login pin")
	}
	srv.log(ctx).Info("Successfully issued login pin", slog.Any("user_id", user.ID))

	return nil
}

// Login redeems a login PIN on the requesting device.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	var output *usecase.AuthOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		pinRepo := repoFactory.PinRepo()

		// 1. Find the account. Unknown and inactive accounts get the
		// same generic answer as a wrong PIN.
		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "login failed")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "login failed")
		}

		now := time.Now()

		// 2. A locked account rejects every PIN until the lock expires.
		if user.IsLocked(now) {
			return domainerrors.NewAccountLockedError(user.LockedMinutesRemaining(now))
		}

		// 3. Look up the outstanding login PIN for this device. A PIN
		// requested on another device never matches here, and trying
		// without one still burns an attempt.
		pin, err := pinRepo.FindNewestValid(ctx, user.ID, entity.PinPurposeLogin, input.Device.Hash, now)
		if err != nil {
			if errors.Is(err, repository.ErrPinNotFound) {
				if err := srv.recordFailedAttempt(ctx, userRepo, user, now); err != nil {
					return err
				}

				return errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "login failed")
			}

			return errors.Wrap(err, "failed to find login pin")
		}

		// 4. Check the code. Each mismatch burns an attempt and enough of
		// them lock the account.
		if err := srv.hasher.Compare(pin.PinHash, input.Pin); err != nil {
			if err := srv.recordFailedAttempt(ctx, userRepo, user, now); err != nil {
				return err
			}

			return errors.Wrap(domainerrors.ErrInvalidPin, "login failed")
		}

		// 5. Consume the PIN.
		if err := pinRepo.MarkUsed(ctx, pin.ID, now); err != nil {
			if errors.Is(err, repository.ErrPinAlreadyUsed) {
				return errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "login failed")
			}

			return errors.WithStack(err)
		}

		// 6. Reset the failure counter and stamp the login.
		user.LoginAttempts = 0
		user.LockedUntil = nil
		user.LastLogin = &now
		if err := userRepo.UpdateLoginState(ctx, user); err != nil {
			return errors.WithStack(err)
		}

		// 7. Open the session and mint tokens.
		out, err := srv.establishSession(ctx, repoFactory, user, input.Device, now)
		if err != nil {
			return err
		}
		output = out

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}

	// A successful verification also clears the cached attempt counter the
	// request-pin endpoint counts against.
	if err := srv.rateLimiter.Reset(ctx, loginAttemptsKey(input.Email)); err != nil {
		srv.log(ctx).Warn("Failed to reset login attempt counter", slog.Any("error", err), slog.Any("user_id", output.User.ID))
	}

	srv.log(ctx).Info("Successfully logged in", slog.Any("user_id", output.User.ID), slog.String("device", input.Device.Name))

	return output, nil
}

// recordFailedAttempt burns a login attempt and locks the account once the
// failure threshold is reached. Returns the lockout error when this failure
// tripped the lock, so the caller can surface it instead of the PIN error.
func (srv *authService) recordFailedAttempt(ctx context.Context, userRepo repository.UserRepository, user *entity.User, now time.Time) error {
	user.LoginAttempts++
	if user.LoginAttempts >= srv.authCfg.MaxLoginFailures {
		lockedUntil := now.Add(srv.authCfg.LockoutDuration)
		user.LockedUntil = &lockedUntil
		user.LoginAttempts = 0
	}
	if err := userRepo.UpdateLoginState(ctx, user); err != nil {
		return errors.WithStack(err)
	}
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return domainerrors.NewAccountLockedError(user.LockedMinutesRemaining(now))
	}

	return nil
}

// findUserQuietly looks a user up by email for the endpoints that must not
// reveal whether an email exists. Unknown emails return (nil, nil) after a
// fixed delay so the response time does not give the answer away either.
func (srv *authService) findUserQuietly(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if user == nil {
		select {
		case <-time.After(srv.pinCfg.NotFoundDelay):
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		}
	}

	return user, nil
}

// establishSession opens (or reactivates) the device session, mints the token
// pair and stores the refresh token hash. Runs inside the caller's transaction.
func (srv *authService) establishSession(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User, device entity.Device, now time.Time) (*usecase.AuthOutput, error) {
	// One session per user and device pair; a repeat login reactivates it.
	session := &entity.Session{
		UserID:       user.ID,
		DeviceHash:   device.Hash,
		DeviceName:   device.Name,
		IPAddress:    device.IP,
		UserAgent:    device.UserAgent,
		IsActive:     true,
		LastActivity: now,
	}
	if err := repoFactory.SessionRepo().Upsert(ctx, session); err != nil {
		return nil, errors.WithStack(err)
	}

	accessToken, err := srv.signer.SignAccessToken(entity.AccessClaims{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		DeviceHash: device.Hash,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refreshExpiry := now.Add(srv.authCfg.RefreshTokenTTL)
	refreshToken, err := srv.signer.SignRefreshToken(entity.RefreshClaims{
		UserID:     user.ID,
		DeviceHash: device.Hash,
		ExpiresAt:  refreshExpiry,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	// Only the hash of the refresh token touches the database.
	sum := sha256.Sum256([]byte(refreshToken))
	record := &entity.RefreshTokenRecord{
		UserID:     user.ID,
		DeviceHash: device.Hash,
		TokenHash:  hex.EncodeToString(sum[:]),
		ExpiresAt:  refreshExpiry,
	}
	if err := repoFactory.RefreshTokenRepo().Upsert(ctx, record); err != nil {
		return nil, errors.WithStack(err)
	}

	return &usecase.AuthOutput{
		User:         user,
		Session:      session,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
