package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/domain/repositories"
	"mandi-bazaar.backend/internal/infrastructure/models"
)

// accountRepo implements repositories.AccountRepository
type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) repositories.AccountRepository {
	return &accountRepo{db: db}
}

// Create creates a new account. Duplicate phone numbers or emails surface
// as ErrAlreadyExists via the unique indexes.
func (r *accountRepo) Create(ctx context.Context, account *entities.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt

	m := &models.Account{
		ID:              account.ID,
		Name:            account.Name,
		PhoneNumber:     account.PhoneNumber,
		Email:           account.Email,
		Role:            string(account.Role),
		IsPhoneVerified: account.IsPhoneVerified,
		HasShopDetail:   account.HasShopDetail,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets an account by ID
func (r *accountRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByPhoneNumber gets an account by its unique phone number
func (r *accountRepo) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// SetHasShopDetail flips the shop-detail flag on an account
func (r *accountRepo) SetHasShopDetail(ctx context.Context, id uuid.UUID, hasShopDetail bool) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"has_shop_detail": hasShopDetail,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *accountRepo) toEntity(m *models.Account) *entities.Account {
	return &entities.Account{
		ID:              m.ID,
		Name:            m.Name,
		PhoneNumber:     m.PhoneNumber,
		Email:           m.Email,
		Role:            entities.AccountRole(m.Role),
		IsPhoneVerified: m.IsPhoneVerified,
		HasShopDetail:   m.HasShopDetail,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
