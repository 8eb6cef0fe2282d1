package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewSessionService(txManager, newDiscardLogger())

	return sessionServiceFixtures{
		service:   svc,
		txManager: txManager,
	}
}

func TestSessionService_Heartbeat_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceHash := "device-hash-1"
	session := &entity.Session{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceHash: deviceHash,
		IsActive:   true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().
				FindActive(ctx, userID, deviceHash).
				Return(session, nil)

			mockSessionRepo.EXPECT().
				Touch(ctx, userID, deviceHash, mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Heartbeat(ctx, userID, deviceHash)

	require.NoError(t, err)
}

func TestSessionService_Heartbeat_EndedSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceHash := "device-hash-1"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().
				FindActive(ctx, userID, deviceHash).
				Return(nil, repository.ErrSessionNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSessionInvalid, "heartbeat failed"))

	err := fx.service.Heartbeat(ctx, userID, deviceHash)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestSessionService_ListSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "ada@example.com", IsActive: true}
	sessions := []*entity.Session{
		{
			ID:           uuid.New(),
			UserID:       userID,
			DeviceHash:   "device-1",
			DeviceName:   "Chrome on macOS",
			IsActive:     true,
			LastActivity: time.Now(),
		},
		{
			ID:           uuid.New(),
			UserID:       userID,
			DeviceHash:   "device-2",
			DeviceName:   "Safari on iOS",
			IsActive:     true,
			LastActivity: time.Now().Add(-time.Hour),
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(user, nil)

			mockSessionRepo.EXPECT().
				ListActiveByUser(ctx, userID).
				Return(sessions, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	infos, err := fx.service.ListSessions(ctx, userID)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "Chrome on macOS", infos[0].DeviceName)
	assert.Equal(t, "Safari on iOS", infos[1].DeviceName)
}

func TestSessionService_ListSessions_UserNotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "list sessions failed"))

	infos, err := fx.service.ListSessions(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, infos)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestSessionService_Logout_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceHash := "device-hash-1"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockSessionRepo.EXPECT().
				Deactivate(ctx, userID, deviceHash).
				Return(nil)

			mockRefreshRepo.EXPECT().
				Delete(ctx, userID, deviceHash).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, userID, deviceHash)

	require.NoError(t, err)
}

func TestSessionService_LogoutAll_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockSessionRepo.EXPECT().
				DeactivateAll(ctx, userID).
				Return(3, nil)

			// One session had already lost its refresh record, so fewer
			// tokens than sessions get revoked.
			mockRefreshRepo.EXPECT().
				DeleteAllForUser(ctx, userID).
				Return(2, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	revoked, err := fx.service.LogoutAll(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), revoked)
}

func TestSessionService_CleanupStale_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockSessionRepo.EXPECT().
				DeleteInactiveBefore(ctx, mock.AnythingOfType("time.Time")).
				Return(4, nil)

			mockRefreshRepo.EXPECT().
				DeleteExpiredBefore(ctx, mock.AnythingOfType("time.Time")).
				Return(2, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	removed, err := fx.service.CleanupStale(ctx, 30*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(6), removed)
}

func TestSessionService_LogoutAll_SessionFailureRollsBack(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().
				DeactivateAll(ctx, userID).
				Return(0, errors.New("connection reset"))

			_ = fn(mockFactory)
		}).
		Return(errors.New("connection reset"))

	ended, err := fx.service.LogoutAll(ctx, userID)

	assert.Error(t, err)
	assert.Zero(t, ended)
}
