package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'user_sessions' table. One row exists per user and
// device pair; logging out flips IsActive instead of deleting the row.
type SessionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sessions_user_device"`
	DeviceHash   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_sessions_user_device"`
	DeviceName   string    `gorm:"type:varchar(100)"`
	IPAddress    string    `gorm:"type:varchar(45)"`
	UserAgent    string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	LastActivity time.Time `gorm:"not null"`
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "user_sessions"
}
