package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tokenServiceFixtures holds all test dependencies for token service tests.
type tokenServiceFixtures struct {
	service   usecase.TokenUsecase
	txManager *mockRepo.MockTransactionManager
	signer    *mockSvc.MockTokenSigner
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	signer := mockSvc.NewMockTokenSigner(t)

	svc := NewTokenService(txManager, signer, newDiscardLogger())

	return tokenServiceFixtures{
		service:   svc,
		txManager: txManager,
		signer:    signer,
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func TestTokenService_Refresh_Success(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		Role:     entity.RoleCustomer,
		IsActive: true,
	}
	refreshToken := "valid-refresh-token"
	claims := &entity.RefreshClaims{
		UserID:     user.ID,
		DeviceHash: device.Hash,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	record := &entity.RefreshTokenRecord{
		UserID:     user.ID,
		DeviceHash: device.Hash,
		TokenHash:  hashToken(refreshToken),
		ExpiresAt:  claims.ExpiresAt,
	}
	input := &usecase.RefreshInput{RefreshToken: refreshToken, Device: device}

	fx.signer.EXPECT().VerifyRefreshToken(refreshToken).Return(claims, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				Find(ctx, user.ID, device.Hash).
				Return(record, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, user.ID).
				Return(user, nil)

			fx.signer.EXPECT().
				SignAccessToken(entity.AccessClaims{
					UserID:     user.ID,
					Email:      user.Email,
					Role:       user.Role,
					DeviceHash: device.Hash,
				}).
				Return("new-access-token", nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestTokenService_Refresh_ExpiredToken(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "expired", Device: newTestDevice()}

	fx.signer.EXPECT().VerifyRefreshToken("expired").Return(nil, service.ErrTokenExpired)

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
}

func TestTokenService_Refresh_MalformedToken(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "garbage", Device: newTestDevice()}

	fx.signer.EXPECT().VerifyRefreshToken("garbage").Return(nil, service.ErrTokenMalformed)

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestTokenService_Refresh_DeviceMismatch(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	device := newTestDevice()
	claims := &entity.RefreshClaims{
		UserID:     uuid.New(),
		DeviceHash: "some-other-device",
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	input := &usecase.RefreshInput{RefreshToken: "stolen", Device: device}

	fx.signer.EXPECT().VerifyRefreshToken("stolen").Return(claims, nil)

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceMismatch))
}

func TestTokenService_Refresh_SupersededToken(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	device := newTestDevice()
	userID := uuid.New()
	claims := &entity.RefreshClaims{
		UserID:     userID,
		DeviceHash: device.Hash,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	// The record holds the hash of a newer token, so the presented one no
	// longer matches.
	record := &entity.RefreshTokenRecord{
		UserID:     userID,
		DeviceHash: device.Hash,
		TokenHash:  hashToken("a-newer-token"),
		ExpiresAt:  claims.ExpiresAt,
	}
	input := &usecase.RefreshInput{RefreshToken: "the-older-token", Device: device}

	fx.signer.EXPECT().VerifyRefreshToken("the-older-token").Return(claims, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				Find(ctx, userID, device.Hash).
				Return(record, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidRefreshToken, "refresh token superseded"))

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestTokenService_Refresh_RevokedByLogout(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	device := newTestDevice()
	userID := uuid.New()
	claims := &entity.RefreshClaims{
		UserID:     userID,
		DeviceHash: device.Hash,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	input := &usecase.RefreshInput{RefreshToken: "revoked", Device: device}

	fx.signer.EXPECT().VerifyRefreshToken("revoked").Return(claims, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				Find(ctx, userID, device.Hash).
				Return(nil, repository.ErrRefreshRecordNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidRefreshToken, "no refresh token on record"))

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefreshToken))
}

func TestTokenService_Refresh_InactiveAccount(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	device := newTestDevice()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: false}
	refreshToken := "valid-refresh-token"
	claims := &entity.RefreshClaims{
		UserID:     user.ID,
		DeviceHash: device.Hash,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	record := &entity.RefreshTokenRecord{
		UserID:     user.ID,
		DeviceHash: device.Hash,
		TokenHash:  hashToken(refreshToken),
		ExpiresAt:  claims.ExpiresAt,
	}
	input := &usecase.RefreshInput{RefreshToken: refreshToken, Device: device}

	fx.signer.EXPECT().VerifyRefreshToken(refreshToken).Return(claims, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				Find(ctx, user.ID, device.Hash).
				Return(record, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, user.ID).
				Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "refresh failed"))

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	// A deactivated account refreshes like a deleted one, without
	// confirming which of the two it is.
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestTokenService_Refresh_DeletedAccount(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	device := newTestDevice()
	userID := uuid.New()
	refreshToken := "valid-refresh-token"
	claims := &entity.RefreshClaims{
		UserID:     userID,
		DeviceHash: device.Hash,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	record := &entity.RefreshTokenRecord{
		UserID:     userID,
		DeviceHash: device.Hash,
		TokenHash:  hashToken(refreshToken),
		ExpiresAt:  claims.ExpiresAt,
	}
	input := &usecase.RefreshInput{RefreshToken: refreshToken, Device: device}

	fx.signer.EXPECT().VerifyRefreshToken(refreshToken).Return(claims, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				Find(ctx, userID, device.Hash).
				Return(record, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "refresh failed"))

	output, err := fx.service.Refresh(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
