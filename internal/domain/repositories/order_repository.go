package repositories

import (
	"context"

	"github.com/google/uuid"
	"mandi-bazaar.backend/internal/domain/entities"
)

// OrderRepository defines order data operations. All reads and writes are
// scoped to the owning wholesaler.
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id, wholesalerID uuid.UUID) (*entities.Order, error)
	ListByWholesaler(ctx context.Context, wholesalerID uuid.UUID) ([]*entities.Order, error)
	Update(ctx context.Context, order *entities.Order) error
	Delete(ctx context.Context, id, wholesalerID uuid.UUID) error
	Search(ctx context.Context, wholesalerID uuid.UUID, filter entities.OrderSearchFilter) ([]*entities.Order, error)
}

// RetailerRepository defines retailer profile data operations
type RetailerRepository interface {
	Create(ctx context.Context, retailer *entities.RetailerProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.RetailerProfile, error)
}

// CategoryRepository defines product category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	List(ctx context.Context) ([]*entities.Category, error)
}
