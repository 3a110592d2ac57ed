package repositories

import (
	"context"
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

// retailerRepo implements repositories.RetailerRepository
type retailerRepo struct {
	db *gorm.DB
}

// NewRetailerRepository creates a new retailer profile repository
func NewRetailerRepository(db *gorm.DB) repositories.RetailerRepository {
	return &retailerRepo{db: db}
}

// Create creates a retailer profile
func (r *retailerRepo) Create(ctx context.Context, retailer *entities.RetailerProfile) error {
	if retailer.ID == uuid.Nil {
		retailer.ID = uuid.New()
	}
	retailer.CreatedAt = time.Now()
	retailer.UpdatedAt = retailer.CreatedAt

	m := &models.RetailerProfile{
		ID:          retailer.ID,
		AccountID:   retailer.AccountID.String,
		Name:        retailer.Name,
		PhoneNumber: retailer.PhoneNumber,
		Address:     retailer.Address,
		CreatedAt:   retailer.CreatedAt,
		UpdatedAt:   retailer.UpdatedAt,
	}

	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a retailer profile by ID
func (r *retailerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.RetailerProfile, error) {
	var m models.RetailerProfile
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return retailerToEntity(&m), nil
}

func retailerToEntity(m *models.RetailerProfile) *entities.RetailerProfile {
	e := &entities.RetailerProfile{
		ID:          m.ID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		Address:     m.Address,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.AccountID != "" {
		e.AccountID = null.StringFrom(m.AccountID)
	}
	return e
}
