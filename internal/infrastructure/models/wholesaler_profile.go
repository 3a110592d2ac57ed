package models

import (
	"time"

	"github.com/google/uuid"
)

type WholesalerProfile struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	WholesalerID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ShopName               string    `gorm:"type:varchar(100)"`
	ShopNumber             string    `gorm:"type:varchar(50)"`
	ShopAddress            string    `gorm:"type:varchar(200)"`
	MandiRegion            string    `gorm:"type:varchar(100)"`
	Pincode                string    `gorm:"type:varchar(6)"`
	MonToSatOpen           string    `gorm:"type:varchar(8);default:'08:00 AM'"`
	MonToSatClose          string    `gorm:"type:varchar(8);default:'08:00 PM'"`
	SundayOpen             string    `gorm:"type:varchar(8);default:'09:00 AM'"`
	SundayClose            string    `gorm:"type:varchar(8);default:'06:00 PM'"`
	GSTNumber              *string   `gorm:"type:varchar(15);uniqueIndex"`
	BusinessCertificateURL string    `gorm:"type:text"`
	KYCStatus              string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	IsVerified             bool      `gorm:"not null;default:false"`
	IsShopOpen             bool      `gorm:"not null;default:true"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
