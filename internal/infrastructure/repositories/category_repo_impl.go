package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/domain/repositories"
	"mandi-bazaar.backend/internal/infrastructure/models"
)

// categoryRepo implements repositories.CategoryRepository
type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &categoryRepo{db: db}
}

// Create creates a category
func (r *categoryRepo) Create(ctx context.Context, category *entities.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt

	m := &models.Category{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description.String,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// List gets all categories ordered by name
func (r *categoryRepo) List(ctx context.Context) ([]*entities.Category, error) {
	var ms []models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&ms).Error; err != nil {
		return nil, err
	}

	categories := make([]*entities.Category, 0, len(ms))
	for _, m := range ms {
		c := &entities.Category{
			ID:        m.ID,
			Name:      m.Name,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
		if m.Description != "" {
			c.Description = null.StringFrom(m.Description)
		}
		categories = append(categories, c)
	}
	return categories, nil
}
