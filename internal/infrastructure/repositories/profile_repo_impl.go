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

// profileRepo implements repositories.ProfileRepository
type profileRepo struct {
	db *gorm.DB
}

// NewProfileRepository creates a new wholesaler profile repository
func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &profileRepo{db: db}
}

// Create creates a profile row. Rows start empty at signup; the GST unique
// index only applies once the profile is populated.
func (r *profileRepo) Create(ctx context.Context, profile *entities.WholesalerProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	if profile.KYCStatus == "" {
		profile.KYCStatus = entities.KYCPending
	}

	m := r.toModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByWholesalerID gets the profile linked to a wholesaler account
func (r *profileRepo) GetByWholesalerID(ctx context.Context, wholesalerID uuid.UUID) (*entities.WholesalerProfile, error) {
	var m models.WholesalerProfile
	if err := r.db.WithContext(ctx).Where("wholesaler_id = ?", wholesalerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByGSTNumber gets a profile by its unique GST number
func (r *profileRepo) GetByGSTNumber(ctx context.Context, gstNumber string) (*entities.WholesalerProfile, error) {
	var m models.WholesalerProfile
	if err := r.db.WithContext(ctx).Where("gst_number = ?", gstNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update writes the populated profile fields
func (r *profileRepo) Update(ctx context.Context, profile *entities.WholesalerProfile) error {
	profile.UpdatedAt = time.Now()

	var gst *string
	if profile.GSTNumber != "" {
		gst = &profile.GSTNumber
	}

	updates := map[string]interface{}{
		"shop_name":                profile.ShopName,
		"shop_number":              profile.ShopNumber,
		"shop_address":             profile.ShopAddress,
		"mandi_region":             profile.MandiRegion,
		"pincode":                  profile.Pincode,
		"mon_to_sat_open":          profile.BusinessHours.MonToSat.Open,
		"mon_to_sat_close":         profile.BusinessHours.MonToSat.Close,
		"sunday_open":              profile.BusinessHours.Sunday.Open,
		"sunday_close":             profile.BusinessHours.Sunday.Close,
		"gst_number":               gst,
		"business_certificate_url": profile.BusinessCertificateURL.String,
		"kyc_status":               string(profile.KYCStatus),
		"is_verified":              profile.IsVerified,
		"is_shop_open":             profile.IsShopOpen,
		"updated_at":               profile.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Model(&models.WholesalerProfile{}).Where("id = ?", profile.ID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *profileRepo) toModel(p *entities.WholesalerProfile) *models.WholesalerProfile {
	var gst *string
	if p.GSTNumber != "" {
		gst = &p.GSTNumber
	}
	return &models.WholesalerProfile{
		ID:                     p.ID,
		WholesalerID:           p.WholesalerID,
		ShopName:               p.ShopName,
		ShopNumber:             p.ShopNumber,
		ShopAddress:            p.ShopAddress,
		MandiRegion:            p.MandiRegion,
		Pincode:                p.Pincode,
		MonToSatOpen:           p.BusinessHours.MonToSat.Open,
		MonToSatClose:          p.BusinessHours.MonToSat.Close,
		SundayOpen:             p.BusinessHours.Sunday.Open,
		SundayClose:            p.BusinessHours.Sunday.Close,
		GSTNumber:              gst,
		BusinessCertificateURL: p.BusinessCertificateURL.String,
		KYCStatus:              string(p.KYCStatus),
		IsVerified:             p.IsVerified,
		IsShopOpen:             p.IsShopOpen,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func (r *profileRepo) toEntity(m *models.WholesalerProfile) *entities.WholesalerProfile {
	gst := ""
	if m.GSTNumber != nil {
		gst = *m.GSTNumber
	}
	e := &entities.WholesalerProfile{
		ID:           m.ID,
		WholesalerID: m.WholesalerID,
		ShopName:     m.ShopName,
		ShopNumber:   m.ShopNumber,
		ShopAddress:  m.ShopAddress,
		MandiRegion:  m.MandiRegion,
		Pincode:      m.Pincode,
		BusinessHours: entities.BusinessHours{
			MonToSat: entities.DayHours{Open: m.MonToSatOpen, Close: m.MonToSatClose},
			Sunday:   entities.DayHours{Open: m.SundayOpen, Close: m.SundayClose},
		},
		GSTNumber:  gst,
		KYCStatus:  entities.KYCStatus(m.KYCStatus),
		IsVerified: m.IsVerified,
		IsShopOpen: m.IsShopOpen,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.BusinessCertificateURL != "" {
		e.BusinessCertificateURL = null.StringFrom(m.BusinessCertificateURL)
	}
	return e
}
