package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	pinIssuer   *mockUsecase.MockPinIssuer
	hasher      *mockSvc.MockPinHasher
	signer      *mockSvc.MockTokenSigner
	mailer      *mockSvc.MockPinMailer
	rateLimiter *mockSvc.MockRateLimiter
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinIssuer := mockUsecase.NewMockPinIssuer(t)
	hasher := mockSvc.NewMockPinHasher(t)
	signer := mockSvc.NewMockTokenSigner(t)
	mailer := mockSvc.NewMockPinMailer(t)
	rateLimiter := mockSvc.NewMockRateLimiter(t)

	svc := NewAuthService(
		txManager,
		pinIssuer,
		hasher,
		signer,
		mailer,
		rateLimiter,
		newTestConfig(),
		newDiscardLogger(),
	)

	return authServiceFixtures{
		service:     svc,
		txManager:   txManager,
		pinIssuer:   pinIssuer,
		hasher:      hasher,
		signer:      signer,
		mailer:      mailer,
		rateLimiter: rateLimiter,
	}
}

// expectEstablishSession wires the session and refresh token expectations the
// login and activation flows share.
func expectEstablishSession(t *testing.T, fx authServiceFixtures, factory *mockRepo.MockRepositoryFactory, ctx context.Context) {
	t.Helper()

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().SessionRepo().Return(sessionRepo)
	factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)

	sessionRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			session.ID = uuid.New()
		}).
		Return(nil)

	fx.signer.EXPECT().
		SignAccessToken(mock.AnythingOfType("entity.AccessClaims")).
		Return("access-token", nil)
	fx.signer.EXPECT().
		SignRefreshToken(mock.AnythingOfType("entity.RefreshClaims")).
		Return("refresh-token", nil)

	refreshRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.RefreshTokenRecord")).
		Return(nil)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Device:    device,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmailAny(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.pinIssuer.EXPECT().
		Issue(ctx, mock.AnythingOfType("*entity.User"), entity.PinPurposeActivation, device).
		Return(&usecase.IssuedPin{Pin: "123456", TTL: 10 * time.Minute}, nil)

	fx.mailer.EXPECT().
		SendActivationPin(ctx, mock.AnythingOfType("*entity.User"), "123456", 10).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.False(t, output.User.IsActive)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "taken@example.com",
		Device:    newTestDevice(),
	}

	existing := &entity.User{ID: uuid.New(), Email: input.Email, IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmailAny(ctx, input.Email).
				Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_InactiveAccountIsRefreshed(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "King",
		Email:     "ada@example.com",
		Device:    device,
	}

	// A stalled registration that never redeemed its activation PIN.
	existing := &entity.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     input.Email,
		IsActive:  false,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmailAny(ctx, input.Email).
				Return(existing, nil)

			mockUserRepo.EXPECT().
				Update(ctx, existing).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "King", user.LastName)
					assert.False(t, user.IsActive)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.pinIssuer.EXPECT().
		Issue(ctx, existing, entity.PinPurposeActivation, device).
		Return(&usecase.IssuedPin{Pin: "123456", TTL: 10 * time.Minute}, nil)

	fx.mailer.EXPECT().
		SendActivationPin(ctx, existing, "123456", 10).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
}

func TestAuthService_Register_SoftDeletedAccountIsRestored(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "King",
		Email:     "ada@example.com",
		Device:    device,
	}

	deletedAt := time.Now().Add(-48 * time.Hour)
	existing := &entity.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     input.Email,
		IsActive:  false,
		DeletedAt: &deletedAt,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			// The unscoped lookup still sees the closed account.
			mockUserRepo.EXPECT().
				FindByEmailAny(ctx, input.Email).
				Return(existing, nil)

			mockUserRepo.EXPECT().
				Update(ctx, existing).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Nil(t, user.DeletedAt)
					assert.Equal(t, "King", user.LastName)
					assert.False(t, user.IsActive)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.pinIssuer.EXPECT().
		Issue(ctx, existing, entity.PinPurposeActivation, device).
		Return(&usecase.IssuedPin{Pin: "123456", TTL: 10 * time.Minute}, nil)

	fx.mailer.EXPECT().
		SendActivationPin(ctx, existing, "123456", 10).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
	assert.Nil(t, output.User.DeletedAt)
}

func TestAuthService_Register_PinDeliveryFailureSurfaces(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Device:    device,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmailAny(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.pinIssuer.EXPECT().
		Issue(ctx, mock.AnythingOfType("*entity.User"), entity.PinPurposeActivation, device).
		Return(&usecase.IssuedPin{Pin: "123456", TTL: 10 * time.Minute}, nil)

	fx.mailer.EXPECT().
		SendActivationPin(ctx, mock.AnythingOfType("*entity.User"), "123456", 10).
		Return(errors.New("smtp unreachable"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestAuthService_Activate_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		Role:     entity.RoleCustomer,
		IsActive: false,
	}
	pin := &entity.OneTimePin{
		ID:      uuid.New(),
		UserID:  user.ID,
		PinHash: "hashed",
		Purpose: entity.PinPurposeActivation,
	}
	input := &usecase.ActivateInput{Email: user.Email, Pin: "123456", Device: device}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			mockPinRepo.EXPECT().
				FindNewestValid(ctx, user.ID, entity.PinPurposeActivation, "", mock.AnythingOfType("time.Time")).
				Return(pin, nil)

			fx.hasher.EXPECT().Compare(pin.PinHash, input.Pin).Return(nil)

			mockPinRepo.EXPECT().
				MarkUsed(ctx, pin.ID, mock.AnythingOfType("time.Time")).
				Return(nil)

			mockUserRepo.EXPECT().
				Update(ctx, user).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.rateLimiter.EXPECT().
		Reset(ctx, "pin:"+user.ID.String()+":activation").
		Return(nil)

	fx.mailer.EXPECT().
		SendWelcome(mock.Anything, user).
		Return(nil).
		Maybe()

	output, err := fx.service.Activate(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.User.IsActive)
	assert.NotNil(t, output.User.EmailVerifiedAt)
}

func TestAuthService_Activate_AlreadyActive(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: true}
	input := &usecase.ActivateInput{Email: user.Email, Pin: "123456", Device: newTestDevice()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAccountAlreadyActive, "activation failed"))

	output, err := fx.service.Activate(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyActive))
}

func TestAuthService_Activate_WrongPin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: false}
	pin := &entity.OneTimePin{ID: uuid.New(), UserID: user.ID, PinHash: "hashed"}
	input := &usecase.ActivateInput{Email: user.Email, Pin: "000000", Device: newTestDevice()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			mockPinRepo.EXPECT().
				FindNewestValid(ctx, user.ID, entity.PinPurposeActivation, "", mock.AnythingOfType("time.Time")).
				Return(pin, nil)

			fx.hasher.EXPECT().Compare(pin.PinHash, input.Pin).Return(service.ErrPinMismatch)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidPin, "activation failed"))

	output, err := fx.service.Activate(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPin))
}

func TestAuthService_Activate_ConcurrentRedemptionLoses(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: false}
	pin := &entity.OneTimePin{
		ID:      uuid.New(),
		UserID:  user.ID,
		PinHash: "hashed",
		Purpose: entity.PinPurposeActivation,
	}
	input := &usecase.ActivateInput{Email: user.Email, Pin: "123456", Device: newTestDevice()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			mockPinRepo.EXPECT().
				FindNewestValid(ctx, user.ID, entity.PinPurposeActivation, "", mock.AnythingOfType("time.Time")).
				Return(pin, nil)

			fx.hasher.EXPECT().Compare(pin.PinHash, input.Pin).Return(nil)

			// Another request redeemed the PIN between the lookup and the
			// consume, so this one must not activate the account.
			mockPinRepo.EXPECT().
				MarkUsed(ctx, pin.ID, mock.AnythingOfType("time.Time")).
				Return(repository.ErrPinAlreadyUsed)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "activation failed"))

	output, err := fx.service.Activate(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPinExpiredOrInvalid))
}

func TestAuthService_RequestLoginPin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: true}
	input := &usecase.RequestLoginPinInput{Email: user.Email, Device: device}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.pinIssuer.EXPECT().
		Issue(ctx, user, entity.PinPurposeLogin, device).
		Return(&usecase.IssuedPin{Pin: "654321", TTL: 5 * time.Minute}, nil)

	fx.mailer.EXPECT().
		SendLoginPin(ctx, user, "654321", 5, device.Name).
		Return(nil)

	err := fx.service.RequestLoginPin(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_RequestLoginPin_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RequestLoginPinInput{Email: "nobody@example.com", Device: newTestDevice()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// The unknown email still burns a counted attempt.
	fx.rateLimiter.EXPECT().
		Allow(ctx, "login_attempts:nobody@example.com", 5, 15*time.Minute).
		Return(true, nil)

	// No PIN is issued and no mail is sent, yet the caller sees success.
	err := fx.service.RequestLoginPin(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_RequestLoginPin_LockedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	lockedUntil := time.Now().Add(10 * time.Minute)
	user := &entity.User{
		ID:          uuid.New(),
		Email:       "ada@example.com",
		IsActive:    true,
		LockedUntil: &lockedUntil,
	}
	input := &usecase.RequestLoginPinInput{Email: user.Email, Device: newTestDevice()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RequestLoginPin(ctx, input)

	assert.Error(t, err)
	var lockedErr *domainerrors.AccountLockedError
	require.True(t, errors.As(err, &lockedErr))
	assert.Positive(t, lockedErr.MinutesRemaining)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{
		ID:            uuid.New(),
		Email:         "ada@example.com",
		Role:          entity.RoleCustomer,
		IsActive:      true,
		LoginAttempts: 2,
	}
	pin := &entity.OneTimePin{
		ID:         uuid.New(),
		UserID:     user.ID,
		PinHash:    "hashed",
		Purpose:    entity.PinPurposeLogin,
		DeviceHash: device.Hash,
	}
	input := &usecase.LoginInput{Email: user.Email, Pin: "654321", Device: device}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			mockPinRepo.EXPECT().
				FindNewestValid(ctx, user.ID, entity.PinPurposeLogin, device.Hash, mock.AnythingOfType("time.Time")).
				Return(pin, nil)

			fx.hasher.EXPECT().Compare(pin.PinHash, input.Pin).Return(nil)

			mockPinRepo.EXPECT().
				MarkUsed(ctx, pin.ID, mock.AnythingOfType("time.Time")).
				Return(nil)

			mockUserRepo.EXPECT().
				UpdateLoginState(ctx, user).
				Return(nil)

			expectEstablishSession(t, fx, mockFactory, ctx)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// A verified PIN also clears the cached per-email attempt counter.
	fx.rateLimiter.EXPECT().
		Reset(ctx, "login_attempts:ada@example.com").
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Zero(t, output.User.LoginAttempts)
	assert.Nil(t, output.User.LockedUntil)
	assert.NotNil(t, output.User.LastLogin)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAuthService_Login_WrongPinBurnsAttempt(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{
		ID:            uuid.New(),
		Email:         "ada@example.com",
		IsActive:      true,
		LoginAttempts: 0,
	}
	pin := &entity.OneTimePin{ID: uuid.New(), UserID: user.ID, PinHash: "hashed", DeviceHash: device.Hash}
	input := &usecase.LoginInput{Email: user.Email, Pin: "000000", Device: device}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			mockPinRepo.EXPECT().
				FindNewestValid(ctx, user.ID, entity.PinPurposeLogin, device.Hash, mock.AnythingOfType("time.Time")).
				Return(pin, nil)

			fx.hasher.EXPECT().Compare(pin.PinHash, input.Pin).Return(service.ErrPinMismatch)

			mockUserRepo.EXPECT().
				UpdateLoginState(ctx, user).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, 1, updated.LoginAttempts)
					assert.Nil(t, updated.LockedUntil)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidPin, "login failed"))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPin))
}

func TestAuthService_Login_FinalWrongPinLocksAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{
		ID:            uuid.New(),
		Email:         "ada@example.com",
		IsActive:      true,
		LoginAttempts: 4,
	}
	pin := &entity.OneTimePin{ID: uuid.New(), UserID: user.ID, PinHash: "hashed", DeviceHash: device.Hash}
	input := &usecase.LoginInput{Email: user.Email, Pin: "000000", Device: device}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			mockPinRepo.EXPECT().
				FindNewestValid(ctx, user.ID, entity.PinPurposeLogin, device.Hash, mock.AnythingOfType("time.Time")).
				Return(pin, nil)

			fx.hasher.EXPECT().Compare(pin.PinHash, input.Pin).Return(service.ErrPinMismatch)

			mockUserRepo.EXPECT().
				UpdateLoginState(ctx, user).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Zero(t, updated.LoginAttempts)
					require.NotNil(t, updated.LockedUntil)
					assert.True(t, updated.LockedUntil.After(time.Now()))
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.NewAccountLockedError(15))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	var lockedErr *domainerrors.AccountLockedError
	assert.True(t, errors.As(err, &lockedErr))
}

func TestAuthService_Login_LockedAccountRejectsPins(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	lockedUntil := time.Now().Add(5 * time.Minute)
	user := &entity.User{
		ID:          uuid.New(),
		Email:       "ada@example.com",
		IsActive:    true,
		LockedUntil: &lockedUntil,
	}
	input := &usecase.LoginInput{Email: user.Email, Pin: "654321", Device: newTestDevice()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.NewAccountLockedError(5))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	var lockedErr *domainerrors.AccountLockedError
	assert.True(t, errors.As(err, &lockedErr))
}

func TestAuthService_Login_PinFromAnotherDeviceDoesNotMatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: true}
	input := &usecase.LoginInput{Email: user.Email, Pin: "654321", Device: device}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			// The PIN on record was issued to a different device, so the
			// lookup scoped to this device finds nothing. The miss still
			// burns an attempt.
			mockPinRepo.EXPECT().
				FindNewestValid(ctx, user.ID, entity.PinPurposeLogin, device.Hash, mock.AnythingOfType("time.Time")).
				Return(nil, repository.ErrPinNotFound)

			mockUserRepo.EXPECT().
				UpdateLoginState(ctx, user).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.Equal(t, 1, updated.LoginAttempts)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "login failed"))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPinExpiredOrInvalid))
}

func TestAuthService_ResendActivationPin_AlreadyActive(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: true}
	input := &usecase.ResendActivationPinInput{Email: user.Email, Device: newTestDevice()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResendActivationPin(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyActive))
}

func TestAuthService_ResendActivationPin_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.ResendActivationPinInput{Email: "nobody@example.com", Device: newTestDevice()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "resend activation pin failed"))

	// The activation path guides a known user through signup, so unlike the
	// login endpoints it reports the unknown email.
	err := fx.service.ResendActivationPin(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Login_ReusedPinIsRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: true}
	pin := &entity.OneTimePin{
		ID:         uuid.New(),
		UserID:     user.ID,
		PinHash:    "hashed",
		Purpose:    entity.PinPurposeLogin,
		DeviceHash: device.Hash,
	}
	input := &usecase.LoginInput{Email: user.Email, Pin: "654321", Device: device}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().PinRepo().Return(mockPinRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(user, nil)

			mockPinRepo.EXPECT().
				FindNewestValid(ctx, user.ID, entity.PinPurposeLogin, device.Hash, mock.AnythingOfType("time.Time")).
				Return(pin, nil)

			fx.hasher.EXPECT().Compare(pin.PinHash, input.Pin).Return(nil)

			// A parallel login consumed the PIN first. No session opens and
			// the generic PIN error comes back.
			mockPinRepo.EXPECT().
				MarkUsed(ctx, pin.ID, mock.AnythingOfType("time.Time")).
				Return(repository.ErrPinAlreadyUsed)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrPinExpiredOrInvalid, "login failed"))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPinExpiredOrInvalid))
}
