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
)

// pinRepository implements the domain.PinRepository interface using GORM.
type pinRepository struct {
	db *gorm.DB
}

// NewPinRepository is the constructor for pinRepository.
func NewPinRepository(db *gorm.DB) repository.PinRepository {
	return &pinRepository{db: db}
}

// Create persists a newly issued PIN.
func (repo *pinRepository) Create(ctx context.Context, pin *entity.OneTimePin) error {
	pinM := fromPinDomain(pin)

	if err := repo.db.WithContext(ctx).Create(pinM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create pin")
	}

	pin.ID = pinM.ID
	pin.CreatedAt = pinM.CreatedAt

	return nil
}

// FindNewestValid returns the latest unused, unexpired PIN for the user and purpose.
func (repo *pinRepository) FindNewestValid(ctx context.Context, userID uuid.UUID, purpose entity.PinPurpose, deviceHash string, now time.Time) (*entity.OneTimePin, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ?", userID, string(purpose)).
		Where("used_at IS NULL AND deleted_at IS NULL").
		Where("expires_at > ?", now)
	if deviceHash != "" {
		query = query.Where("device_hash = ?", deviceHash)
	}

	var pinM model.OneTimePinModel
	if err := query.Order("created_at DESC").First(&pinM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPinNotFound
		}

		return nil, errors.Wrap(err, "failed to find valid pin")
	}

	return toPinDomain(&pinM), nil
}

// MarkUsed consumes a PIN with a conditional update so two concurrent
// redemptions cannot both succeed.
func (repo *pinRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OneTimePinModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark pin used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPinAlreadyUsed
	}

	return nil
}

// Invalidate soft deletes all outstanding unused PINs for the user and
// purpose, scoped to one device when deviceHash is set.
func (repo *pinRepository) Invalidate(ctx context.Context, userID uuid.UUID, purpose entity.PinPurpose, deviceHash string) error {
	query := repo.db.WithContext(ctx).
		Model(&model.OneTimePinModel{}).
		Where("user_id = ? AND purpose = ?", userID, string(purpose)).
		Where("used_at IS NULL AND deleted_at IS NULL")
	if deviceHash != "" {
		query = query.Where("device_hash = ?", deviceHash)
	}

	if err := query.Update("deleted_at", time.Now()).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to invalidate pins")
	}

	return nil
}

// CountIssuedSince counts PINs issued after the given instant, including
// invalidated ones, so reissuing does not reset the issuance budget.
func (repo *pinRepository) CountIssuedSince(ctx context.Context, userID uuid.UUID, purpose entity.PinPurpose, since time.Time) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OneTimePinModel{}).
		Where("user_id = ? AND purpose = ?", userID, string(purpose)).
		Where("created_at > ?", since).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count issued pins")
	}

	return count, nil
}

// toPinDomain converts a GORM OneTimePinModel to a domain OneTimePin entity.
func toPinDomain(data *model.OneTimePinModel) *entity.OneTimePin {
	if data == nil {
		return nil
	}

	return &entity.OneTimePin{
		ID:         data.ID,
		UserID:     data.UserID,
		PinHash:    data.PinHash,
		Purpose:    entity.PinPurpose(data.Purpose),
		DeviceHash: data.DeviceHash,
		IPAddress:  data.IPAddress,
		ExpiresAt:  data.ExpiresAt,
		UsedAt:     data.UsedAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromPinDomain converts a domain OneTimePin entity to a GORM OneTimePinModel.
func fromPinDomain(data *entity.OneTimePin) *model.OneTimePinModel {
	if data == nil {
		return nil
	}

	return &model.OneTimePinModel{
		ID:         data.ID,
		UserID:     data.UserID,
		PinHash:    data.PinHash,
		Purpose:    string(data.Purpose),
		DeviceHash: data.DeviceHash,
		IPAddress:  data.IPAddress,
		ExpiresAt:  data.ExpiresAt,
		UsedAt:     data.UsedAt,
		CreatedAt:  data.CreatedAt,
	}
}
