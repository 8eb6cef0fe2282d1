package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Upsert creates the session or reactivates the existing row for the same
// user and device. The unique index on (user_id, device_hash) makes the
// conflict target deterministic.
func (repo *sessionRepository) Upsert(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_hash"}},
			DoUpdates: clause.Assignments(map[string]any{
				"device_name":   sessionM.DeviceName,
				"ip_address":    sessionM.IPAddress,
				"user_agent":    sessionM.UserAgent,
				"is_active":     true,
				"last_activity": sessionM.LastActivity,
				"expires_at":    sessionM.ExpiresAt,
				"updated_at":    time.Now(),
			}),
		}).
		Create(sessionM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert session")
	}

	// On conflict GORM does not return the stored row's ID, so read it back.
	var stored model.SessionModel
	err = repo.db.WithContext(ctx).
		Select("id", "created_at").
		Where("user_id = ? AND device_hash = ?", session.UserID, session.DeviceHash).
		First(&stored).Error
	if err != nil {
		return errors.Wrap(err, "failed to read back upserted session")
	}

	session.ID = stored.ID
	session.CreatedAt = stored.CreatedAt
	session.IsActive = true

	return nil
}

// FindActive returns the active session for the user and device.
func (repo *sessionRepository) FindActive(ctx context.Context, userID uuid.UUID, deviceHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_hash = ? AND is_active = true", userID, deviceHash).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active session")
	}

	return toSessionDomain(&sessionM), nil
}

// ListActiveByUser returns the user's active sessions, most recent first.
func (repo *sessionRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	var sessionMs []model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = true", userID).
		Order("last_activity DESC").
		Find(&sessionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active sessions")
	}

	sessions := make([]*entity.Session, 0, len(sessionMs))
	for i := range sessionMs {
		sessions = append(sessions, toSessionDomain(&sessionMs[i]))
	}

	return sessions, nil
}

// Touch updates the last activity timestamp of the session.
func (repo *sessionRepository) Touch(ctx context.Context, userID uuid.UUID, deviceHash string, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND device_hash = ? AND is_active = true", userID, deviceHash).
		Update("last_activity", at).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch session")
	}

	return nil
}

// Deactivate marks the session for the user and device as inactive.
func (repo *sessionRepository) Deactivate(ctx context.Context, userID uuid.UUID, deviceHash string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND device_hash = ?", userID, deviceHash).
		Update("is_active", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate session")
	}

	return nil
}

// DeactivateAll marks every session of the user as inactive.
func (repo *sessionRepository) DeactivateAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND is_active = true", userID).
		Update("is_active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate sessions")
	}

	return result.RowsAffected, nil
}

// DeleteInactiveBefore removes inactive sessions whose last activity predates the cutoff.
func (repo *sessionRepository) DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("is_active = false AND last_activity < ?", cutoff).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete stale sessions")
	}

	return result.RowsAffected, nil
}

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceHash:   data.DeviceHash,
		DeviceName:   data.DeviceName,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		IsActive:     data.IsActive,
		LastActivity: data.LastActivity,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceHash:   data.DeviceHash,
		DeviceName:   data.DeviceName,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		IsActive:     data.IsActive,
		LastActivity: data.LastActivity,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
