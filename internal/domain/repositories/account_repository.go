package repositories

import (
	"context"

	"github.com/google/uuid"
	"mandi-bazaar.backend/internal/domain/entities"
)

// AccountRepository defines account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entities.Account, error)
	SetHasShopDetail(ctx context.Context, id uuid.UUID, hasShopDetail bool) error
}

// ProfileRepository defines wholesaler profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.WholesalerProfile) error
	GetByWholesalerID(ctx context.Context, wholesalerID uuid.UUID) (*entities.WholesalerProfile, error)
	GetByGSTNumber(ctx context.Context, gstNumber string) (*entities.WholesalerProfile, error)
	Update(ctx context.Context, profile *entities.WholesalerProfile) error
}
