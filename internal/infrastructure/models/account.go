package models

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name            string    `gorm:"type:varchar(100);not null"`
	PhoneNumber     string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Role            string    `gorm:"type:varchar(50);not null"`
	IsPhoneVerified bool      `gorm:"not null;default:false"`
	HasShopDetail   bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
