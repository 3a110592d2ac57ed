package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KYCStatus represents KYC verification status of a shop profile
type KYCStatus string

const (
	KYCPending   KYCStatus = "Pending"
	KYCCompleted KYCStatus = "Completed"
	KYCRejected  KYCStatus = "Rejected"
)

// DayHours holds opening hours for a day group in 12-hour "HH:MM AM|PM" format
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// BusinessHours holds shop opening hours
type BusinessHours struct {
	MonToSat DayHours `json:"monToSat"`
	Sunday   DayHours `json:"sunday"`
}

// WholesalerProfile represents the extended business profile of a wholesaler
// account. A row is created empty at signup and populated exactly once.
type WholesalerProfile struct {
	ID                     uuid.UUID     `json:"id"`
	WholesalerID           uuid.UUID     `json:"wholesalerId"`
	ShopName               string        `json:"shopName"`
	ShopNumber             string        `json:"shopNumber"`
	ShopAddress            string        `json:"shopAddress"`
	MandiRegion            string        `json:"mandiRegion"`
	Pincode                string        `json:"pincode"`
	BusinessHours          BusinessHours `json:"businessHours"`
	GSTNumber              string        `json:"gstNumber"`
	BusinessCertificateURL null.String   `json:"businessCertificateUrl,omitempty"`
	KYCStatus              KYCStatus     `json:"kycStatus"`
	IsVerified             bool          `json:"isVerified"`
	IsShopOpen             bool          `json:"isShopOpen"`
	CreatedAt              time.Time     `json:"createdAt"`
	UpdatedAt              time.Time     `json:"updatedAt"`
}

// CreateShopProfileInput represents the multipart form fields for shop
// profile creation. BusinessHours arrives as a JSON-encoded string.
type CreateShopProfileInput struct {
	ShopName      string `form:"shopName"`
	ShopNumber    string `form:"shopNumber"`
	ShopAddress   string `form:"shopAddress"`
	BusinessHours string `form:"businessHours"`
	GSTNumber     string `form:"gstNumber"`
	MandiRegion   string `form:"mandiRegion"`
	Pincode       string `form:"pincode"`
}
