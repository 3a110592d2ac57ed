package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RetailerProfile represents the retailer side of an order
type RetailerProfile struct {
	ID          uuid.UUID   `json:"id"`
	AccountID   null.String `json:"accountId,omitempty"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phoneNumber"`
	Address     string      `json:"address"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// DummyRetailerInput represents input for the test-only retailer scaffolding
// endpoint. All fields are optional and defaulted.
type DummyRetailerInput struct {
	RetailerID  string `json:"retailerId,omitempty"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}
