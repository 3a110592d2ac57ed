package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the order lifecycle status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRejected   OrderStatus = "rejected"
)

// updatableStatuses are the statuses a wholesaler may write via the status
// update endpoint. Any valid status may overwrite any prior status; there is
// deliberately no transition graph.
var updatableStatuses = map[OrderStatus]bool{
	OrderStatusConfirmed:  true,
	OrderStatusDispatched: true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
	OrderStatusRejected:   true,
}

// IsValidStatusUpdate reports whether s is an accepted status update value.
func IsValidStatusUpdate(s OrderStatus) bool {
	return updatableStatuses[s]
}

// PaymentMethod represents how an order is paid
type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "cod"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCredit       PaymentMethod = "credit"
)

// OrderProduct is a single line item on an order
type OrderProduct struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
	Price    float64 `json:"price"`
}

// Order links a wholesaler and a retailer
type Order struct {
	ID                 uuid.UUID        `json:"id"`
	WholesalerID       uuid.UUID        `json:"wholesalerId"`
	RetailerID         uuid.UUID        `json:"retailerId"`
	Products           []OrderProduct   `json:"products"`
	DeliveryAddress    string           `json:"deliveryAddress"`
	DeliveryDate       null.Time        `json:"deliveryDate,omitempty"`
	OrderTotal         float64          `json:"orderTotal"`
	PaymentMethod      PaymentMethod    `json:"paymentMethod"`
	Status             OrderStatus      `json:"status"`
	CancellationReason null.String      `json:"cancellationReason,omitempty"`
	Notes              null.String      `json:"notes,omitempty"`
	VehicleNumber      null.String      `json:"vehicleNumber,omitempty"`
	Retailer           *RetailerProfile `json:"retailer,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// CreateOrderInput represents input for order creation
type CreateOrderInput struct {
	RetailerID      string         `json:"retailerId"`
	Products        []OrderProduct `json:"products"`
	DeliveryAddress string         `json:"deliveryAddress"`
	DeliveryDate    *time.Time     `json:"deliveryDate,omitempty"`
	OrderTotal      float64        `json:"orderTotal"`
	PaymentMethod   string         `json:"paymentMethod,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	VehicleNumber   string         `json:"vehicleNumber,omitempty"`
}

// UpdateOrderStatusInput represents input for a status update
type UpdateOrderStatusInput struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// OrderSearchQuery carries the raw optional query parameters of the search
// endpoint before parsing.
type OrderSearchQuery struct {
	Status        string
	RetailerID    string
	FromDate      string
	ToDate        string
	MinTotal      string
	MaxTotal      string
	PaymentMethod string
	VehicleNumber string
}

// OrderSearchFilter is a conjunctive filter over a wholesaler's orders.
// Nil/empty fields are skipped; total and date bounds are inclusive.
type OrderSearchFilter struct {
	Status        string
	RetailerID    *uuid.UUID
	FromDate      *time.Time
	ToDate        *time.Time
	MinTotal      *float64
	MaxTotal      *float64
	PaymentMethod string
	VehicleNumber string
}
