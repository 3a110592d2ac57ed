package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/domain/repositories"
	"mandi-bazaar.backend/internal/infrastructure/models"
)

// orderRepo implements repositories.OrderRepository
type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &orderRepo{db: db}
}

// Create creates a new order
func (r *orderRepo) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	if order.Status == "" {
		order.Status = entities.OrderStatusPending
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = entities.PaymentMethodCOD
	}

	products, err := json.Marshal(order.Products)
	if err != nil {
		return err
	}

	m := &models.Order{
		ID:                 order.ID,
		WholesalerID:       order.WholesalerID,
		RetailerID:         order.RetailerID,
		Products:           string(products),
		DeliveryAddress:    order.DeliveryAddress,
		DeliveryDate:       order.DeliveryDate.Ptr(),
		OrderTotal:         order.OrderTotal,
		PaymentMethod:      string(order.PaymentMethod),
		Status:             string(order.Status),
		CancellationReason: order.CancellationReason.String,
		Notes:              order.Notes.String,
		VehicleNumber:      order.VehicleNumber.String,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit("Retailer").Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a single order scoped by (id, wholesalerID)
func (r *orderRepo) GetByID(ctx context.Context, id, wholesalerID uuid.UUID) (*entities.Order, error) {
	var m models.Order
	err := r.db.WithContext(ctx).Preload("Retailer").
		Where("id = ? AND wholesaler_id = ?", id, wholesalerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByWholesaler gets all orders for a wholesaler, newest first
func (r *orderRepo) ListByWholesaler(ctx context.Context, wholesalerID uuid.UUID) ([]*entities.Order, error) {
	var ms []models.Order
	err := r.db.WithContext(ctx).Preload("Retailer").
		Where("wholesaler_id = ?", wholesalerID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for _, m := range ms {
		model := m
		orders = append(orders, r.toEntity(&model))
	}
	return orders, nil
}

// Update persists the mutable order fields (status, reason, notes)
func (r *orderRepo) Update(ctx context.Context, order *entities.Order) error {
	order.UpdatedAt = time.Now()

	updates := map[string]interface{}{
		"status":              string(order.Status),
		"cancellation_reason": order.CancellationReason.String,
		"notes":               order.Notes.String,
		"updated_at":          order.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND wholesaler_id = ?", order.ID, order.WholesalerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an order scoped by (id, wholesalerID)
func (r *orderRepo) Delete(ctx context.Context, id, wholesalerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND wholesaler_id = ?", id, wholesalerID).
		Delete(&models.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Search builds a conjunctive filter over the wholesaler's orders. Range
// bounds are inclusive; results come back newest first.
func (r *orderRepo) Search(ctx context.Context, wholesalerID uuid.UUID, filter entities.OrderSearchFilter) ([]*entities.Order, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{}).Where("wholesaler_id = ?", wholesalerID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RetailerID != nil {
		query = query.Where("retailer_id = ?", *filter.RetailerID)
	}
	if filter.FromDate != nil {
		query = query.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("created_at <= ?", *filter.ToDate)
	}
	if filter.MinTotal != nil {
		query = query.Where("order_total >= ?", *filter.MinTotal)
	}
	if filter.MaxTotal != nil {
		query = query.Where("order_total <= ?", *filter.MaxTotal)
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.VehicleNumber != "" {
		query = query.Where("vehicle_number = ?", filter.VehicleNumber)
	}

	var ms []models.Order
	if err := query.Preload("Retailer").Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for _, m := range ms {
		model := m
		orders = append(orders, r.toEntity(&model))
	}
	return orders, nil
}

func (r *orderRepo) toEntity(m *models.Order) *entities.Order {
	var products []entities.OrderProduct
	// Products column defaults to a valid JSON array; a decode failure means
	// hand-edited data, surfaced as an empty list rather than an error.
	_ = json.Unmarshal([]byte(m.Products), &products)

	e := &entities.Order{
		ID:              m.ID,
		WholesalerID:    m.WholesalerID,
		RetailerID:      m.RetailerID,
		Products:        products,
		DeliveryAddress: m.DeliveryAddress,
		OrderTotal:      m.OrderTotal,
		PaymentMethod:   entities.PaymentMethod(m.PaymentMethod),
		Status:          entities.OrderStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.DeliveryDate != nil {
		e.DeliveryDate = null.TimeFromPtr(m.DeliveryDate)
	}
	if m.CancellationReason != "" {
		e.CancellationReason = null.StringFrom(m.CancellationReason)
	}
	if m.Notes != "" {
		e.Notes = null.StringFrom(m.Notes)
	}
	if m.VehicleNumber != "" {
		e.VehicleNumber = null.StringFrom(m.VehicleNumber)
	}
	if m.Retailer.ID != uuid.Nil {
		e.Retailer = retailerToEntity(&m.Retailer)
	}
	return e
}
