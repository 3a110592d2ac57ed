package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/interfaces/http/middleware"
	"mandi-bazaar.backend/internal/interfaces/http/response"
)

type OrderService interface {
	CreateOrder(ctx context.Context, wholesalerID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error)
	ListOrders(ctx context.Context, wholesalerID uuid.UUID) ([]*entities.Order, error)
	GetOrder(ctx context.Context, orderID string, wholesalerID uuid.UUID) (*entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, wholesalerID uuid.UUID, input *entities.UpdateOrderStatusInput) (*entities.Order, error)
	DeleteOrder(ctx context.Context, orderID string, wholesalerID uuid.UUID) error
	SearchOrders(ctx context.Context, wholesalerID uuid.UUID, query *entities.OrderSearchQuery) ([]*entities.Order, error)
	CreateDummyRetailer(ctx context.Context, input *entities.DummyRetailerInput) (*entities.RetailerProfile, error)
}

// OrderHandler handles wholesaler order endpoints
type OrderHandler struct {
	orderUsecase OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase OrderService) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// CreateOrder creates a new order for the authenticated wholesaler
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wholesalerID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), wholesalerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// ListOrders lists every order of the authenticated wholesaler, newest first
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	wholesalerID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	orders, err := h.orderUsecase.ListOrders(c.Request.Context(), wholesalerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", orders)
}

// GetOrder gets one order by ID, scoped to the authenticated wholesaler
// GET /api/v1/orders/:orderId
func (h *OrderHandler) GetOrder(c *gin.Context) {
	wholesalerID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	order, err := h.orderUsecase.GetOrder(c.Request.Context(), c.Param("orderId"), wholesalerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateOrderStatus updates the status of an order
// PATCH /api/v1/orders/:orderId/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var input entities.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	wholesalerID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	order, err := h.orderUsecase.UpdateOrderStatus(c.Request.Context(), c.Param("orderId"), wholesalerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// DeleteOrder deletes an order scoped to the authenticated wholesaler
// DELETE /api/v1/orders/:orderId
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	wholesalerID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	if err := h.orderUsecase.DeleteOrder(c.Request.Context(), c.Param("orderId"), wholesalerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}

// SearchOrders runs a filtered search over the wholesaler's orders. All
// query parameters are optional and combine conjunctively.
// GET /api/v1/orders/search/filter
func (h *OrderHandler) SearchOrders(c *gin.Context) {
	wholesalerID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	query := entities.OrderSearchQuery{
		Status:        c.Query("status"),
		RetailerID:    c.Query("retailerId"),
		FromDate:      c.Query("fromDate"),
		ToDate:        c.Query("toDate"),
		MinTotal:      c.Query("minTotal"),
		MaxTotal:      c.Query("maxTotal"),
		PaymentMethod: c.Query("paymentMethod"),
		VehicleNumber: c.Query("vehicleNumber"),
	}

	orders, err := h.orderUsecase.SearchOrders(c.Request.Context(), wholesalerID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", orders)
}

// CreateDummyRetailer creates a retailer row for exercising the order flow
// POST /api/v1/orders/dummy-retailer
func (h *OrderHandler) CreateDummyRetailer(c *gin.Context) {
	var input entities.DummyRetailerInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	retailer, err := h.orderUsecase.CreateDummyRetailer(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Dummy retailer created", retailer)
}
