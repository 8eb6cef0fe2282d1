package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. One row exists per
// user and device pair; reissuing a refresh token replaces the row. Only the
// SHA-256 hash of the signed token is stored.
type RefreshTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_refresh_user_device"`
	DeviceHash string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_refresh_user_device"`
	TokenHash  string    `gorm:"type:varchar(64);not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
