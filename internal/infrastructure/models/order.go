package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	WholesalerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RetailerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Products           string    `gorm:"type:jsonb;not null;default:'[]'"`
	DeliveryAddress    string    `gorm:"type:text;not null"`
	DeliveryDate       *time.Time
	OrderTotal         float64         `gorm:"type:decimal(12,2);not null"`
	PaymentMethod      string          `gorm:"type:varchar(20);not null;default:'cod'"`
	Status             string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CancellationReason string          `gorm:"type:text"`
	Notes              string          `gorm:"type:text"`
	VehicleNumber      string          `gorm:"type:varchar(20)"`
	Retailer           RetailerProfile `gorm:"foreignKey:RetailerID"`
	CreatedAt          time.Time       `gorm:"index"`
	UpdatedAt          time.Time
}
