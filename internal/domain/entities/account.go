package entities

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole represents account roles
type AccountRole string

const (
	RoleWholesaler AccountRole = "Wholesaler"
	RoleRetailer   AccountRole = "Retailer"
	RoleAdmin      AccountRole = "Admin"
)

// Account represents a phone-verified marketplace account
type Account struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	PhoneNumber     string      `json:"phoneNumber"`
	Email           string      `json:"email"`
	Role            AccountRole `json:"role"`
	IsPhoneVerified bool        `json:"isPhoneVerified"`
	HasShopDetail   bool        `json:"hasShopDetail"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// SignupInput represents input for wholesaler signup
type SignupInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	OTP         string `json:"otp"`
}

// RequestOTPInput represents input for OTP issuance
type RequestOTPInput struct {
	PhoneNumber string `json:"phoneNumber"`
}
