package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName       string    `gorm:"type:varchar(100);not null"`
	LastName        string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Phone           string    `gorm:"type:varchar(32)"`
	Role            string    `gorm:"type:varchar(20);not null;default:'customer'"`
	IsActive        bool      `gorm:"not null;default:false"`
	LoginAttempts   int       `gorm:"not null;default:0"`
	LockedUntil     *time.Time
	LastLogin       *time.Time
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`

	Pins          []OneTimePinModel   `gorm:"foreignKey:UserID"`
	Sessions      []SessionModel      `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
