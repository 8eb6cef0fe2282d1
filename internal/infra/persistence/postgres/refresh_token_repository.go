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

// refreshTokenRepository implements the domain.RefreshTokenRepository interface using GORM.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Upsert stores the record, replacing any existing one for the same user and
// device. The unique index on (user_id, device_hash) makes the conflict
// target deterministic.
func (repo *refreshTokenRepository) Upsert(ctx context.Context, record *entity.RefreshTokenRecord) error {
	recordM := fromRefreshTokenDomain(record)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_hash"}},
			DoUpdates: clause.Assignments(map[string]any{
				"token_hash": recordM.TokenHash,
				"expires_at": recordM.ExpiresAt,
				"created_at": time.Now(),
			}),
		}).
		Create(recordM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert refresh token")
	}

	record.ID = recordM.ID

	return nil
}

// Find returns the stored record for the user and device.
func (repo *refreshTokenRepository) Find(ctx context.Context, userID uuid.UUID, deviceHash string) (*entity.RefreshTokenRecord, error) {
	var recordM model.RefreshTokenModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_hash = ?", userID, deviceHash).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return toRefreshTokenDomain(&recordM), nil
}

// Delete removes the stored record for the user and device.
func (repo *refreshTokenRepository) Delete(ctx context.Context, userID uuid.UUID, deviceHash string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_hash = ?", userID, deviceHash).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh token")
	}

	return nil
}

// DeleteAllForUser removes every stored record of the user.
func (repo *refreshTokenRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete refresh tokens")
	}

	return result.RowsAffected, nil
}

// DeleteExpiredBefore removes records that expired before the cutoff.
func (repo *refreshTokenRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired refresh tokens")
	}

	return result.RowsAffected, nil
}

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain RefreshTokenRecord.
func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshTokenRecord {
	if data == nil {
		return nil
	}

	return &entity.RefreshTokenRecord{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceHash: data.DeviceHash,
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromRefreshTokenDomain converts a domain RefreshTokenRecord to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshTokenRecord) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceHash: data.DeviceHash,
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}
