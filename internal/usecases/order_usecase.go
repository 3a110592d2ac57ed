package usecases

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/domain/repositories"
)

// searchDateLayouts are accepted in order for the fromDate/toDate query
// parameters.
var searchDateLayouts = []string{time.RFC3339, "2006-01-02"}

// OrderUsecase orchestrates the wholesaler-side order lifecycle
type OrderUsecase struct {
	orderRepo    repositories.OrderRepository
	retailerRepo repositories.RetailerRepository
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	retailerRepo repositories.RetailerRepository,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:    orderRepo,
		retailerRepo: retailerRepo,
	}
}

// CreateOrder records a new order for the wholesaler in pending status
func (u *OrderUsecase) CreateOrder(ctx context.Context, wholesalerID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	if input.RetailerID == "" || len(input.Products) == 0 || input.DeliveryAddress == "" || input.OrderTotal <= 0 {
		return nil, domainerrors.BadRequest("Missing required fields")
	}
	retailerID, err := uuid.Parse(input.RetailerID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid retailer ID")
	}
	for _, p := range input.Products {
		if p.Name == "" || p.Quantity <= 0 || p.Price < 0 {
			return nil, domainerrors.BadRequest("Missing required fields")
		}
	}

	if _, err := u.retailerRepo.GetByID(ctx, retailerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Retailer not found")
		}
		return nil, err
	}

	paymentMethod := entities.PaymentMethod(input.PaymentMethod)
	switch paymentMethod {
	case "":
		paymentMethod = entities.PaymentMethodCOD
	case entities.PaymentMethodCOD, entities.PaymentMethodUPI,
		entities.PaymentMethodBankTransfer, entities.PaymentMethodCredit:
	default:
		return nil, domainerrors.BadRequest("Invalid payment method")
	}

	order := &entities.Order{
		WholesalerID:    wholesalerID,
		RetailerID:      retailerID,
		Products:        input.Products,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryDate:    null.TimeFromPtr(input.DeliveryDate),
		OrderTotal:      input.OrderTotal,
		PaymentMethod:   paymentMethod,
		Status:          entities.OrderStatusPending,
		Notes:           null.NewString(input.Notes, input.Notes != ""),
		VehicleNumber:   null.NewString(input.VehicleNumber, input.VehicleNumber != ""),
	}
	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns every order belonging to the wholesaler, newest first.
// An empty result is reported as not found.
func (u *OrderUsecase) ListOrders(ctx context.Context, wholesalerID uuid.UUID) ([]*entities.Order, error) {
	orders, err := u.orderRepo.ListByWholesaler(ctx, wholesalerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domainerrors.NotFound("No orders found for this wholesaler")
	}
	return orders, nil
}

// GetOrder returns one order scoped to the wholesaler
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID string, wholesalerID uuid.UUID) (*entities.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid order ID")
	}
	order, err := u.orderRepo.GetByID(ctx, id, wholesalerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Order not found")
		}
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus overwrites the order status. Any accepted status value
// may replace any prior one.
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID string, wholesalerID uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid order ID")
	}
	status := entities.OrderStatus(input.Status)
	if !entities.IsValidStatusUpdate(status) {
		return nil, domainerrors.BadRequest("Invalid status update")
	}

	order, err := u.orderRepo.GetByID(ctx, id, wholesalerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Order not found")
		}
		return nil, err
	}

	order.Status = status
	if input.CancellationReason != "" {
		order.CancellationReason = null.StringFrom(input.CancellationReason)
	}
	if input.Notes != "" {
		order.Notes = null.StringFrom(input.Notes)
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order scoped to the wholesaler
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID string, wholesalerID uuid.UUID) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return domainerrors.BadRequest("Invalid order ID")
	}
	if err := u.orderRepo.Delete(ctx, id, wholesalerID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Order not found")
		}
		return err
	}
	return nil
}

// SearchOrders parses the raw query parameters and runs a conjunctive
// filtered search over the wholesaler's orders. An order matches only when
// it satisfies every supplied criterion; bounds are inclusive.
func (u *OrderUsecase) SearchOrders(ctx context.Context, wholesalerID uuid.UUID, query *entities.OrderSearchQuery) ([]*entities.Order, error) {
	filter := entities.OrderSearchFilter{
		Status:        query.Status,
		PaymentMethod: query.PaymentMethod,
		VehicleNumber: query.VehicleNumber,
	}

	if query.Status != "" {
		status := entities.OrderStatus(query.Status)
		if status != entities.OrderStatusPending && !entities.IsValidStatusUpdate(status) {
			return nil, domainerrors.BadRequest("Invalid status filter")
		}
	}
	if query.RetailerID != "" {
		id, err := uuid.Parse(query.RetailerID)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid retailer ID filter")
		}
		filter.RetailerID = &id
	}
	if query.FromDate != "" {
		t, err := parseSearchDate(query.FromDate)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid fromDate format")
		}
		filter.FromDate = &t
	}
	if query.ToDate != "" {
		t, err := parseSearchDate(query.ToDate)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid toDate format")
		}
		filter.ToDate = &t
	}
	if query.MinTotal != "" {
		v, err := strconv.ParseFloat(query.MinTotal, 64)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid minTotal value")
		}
		filter.MinTotal = &v
	}
	if query.MaxTotal != "" {
		v, err := strconv.ParseFloat(query.MaxTotal, 64)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid maxTotal value")
		}
		filter.MaxTotal = &v
	}

	return u.orderRepo.Search(ctx, wholesalerID, filter)
}

// CreateDummyRetailer creates a retailer row for order testing. Every field
// is optional and gets a fixed default.
func (u *OrderUsecase) CreateDummyRetailer(ctx context.Context, input *entities.DummyRetailerInput) (*entities.RetailerProfile, error) {
	retailer := &entities.RetailerProfile{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
	}
	if input.RetailerID != "" {
		id, err := uuid.Parse(input.RetailerID)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid retailer ID")
		}
		retailer.ID = id
	}
	if retailer.Name == "" {
		retailer.Name = "Dummy Retailer"
	}
	if retailer.PhoneNumber == "" {
		retailer.PhoneNumber = "9999999999"
	}
	if retailer.Address == "" {
		retailer.Address = "Test Address"
	}

	if err := u.retailerRepo.Create(ctx, retailer); err != nil {
		return nil, err
	}
	return retailer, nil
}

func parseSearchDate(s string) (time.Time, error) {
	var err error
	for _, layout := range searchDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
