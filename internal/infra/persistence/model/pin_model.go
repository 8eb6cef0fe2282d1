package model

import (
	"time"

	"github.com/google/uuid"
)

// OneTimePinModel mirrors the 'login_pins' table. Only the bcrypt hash of a
// PIN is ever stored. Invalidated PINs are soft deleted so issuance history
// survives for rate limiting and audit.
type OneTimePinModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PinHash    string    `gorm:"type:varchar(255);not null"`
	Purpose    string    `gorm:"type:varchar(20);not null;index"`
	DeviceHash string    `gorm:"type:varchar(64)"`
	IPAddress  string    `gorm:"type:varchar(45)"`
	ExpiresAt  time.Time `gorm:"not null"`
	UsedAt     *time.Time
	CreatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OneTimePinModel) TableName() string {
	return "login_pins"
}
