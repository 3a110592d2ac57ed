package models

import (
	"time"

	"github.com/google/uuid"
)

type RetailerProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID   string    `gorm:"type:varchar(64)"`
	Name        string    `gorm:"type:varchar(100);not null"`
	PhoneNumber string    `gorm:"type:varchar(10);not null"`
	Address     string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
