package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/domain/repositories"
	"mandi-bazaar.backend/internal/infrastructure/storage"
)

const certificateCategory = "business-certificates"

var (
	shopNameRegex   = regexp.MustCompile(`^[a-zA-Z0-9\s]{2,100}$`)
	shopNumberRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-/]{1,50}$`)
	timeRegex       = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)
	gstRegex        = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	pincodeRegex    = regexp.MustCompile(`^\d{6}$`)
)

// ShopProfileUsecase orchestrates one-time shop profile creation with
// certificate upload
type ShopProfileUsecase struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	uploader    storage.Uploader
}

// NewShopProfileUsecase creates a new shop profile usecase
func NewShopProfileUsecase(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	uploader storage.Uploader,
) *ShopProfileUsecase {
	return &ShopProfileUsecase{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		uploader:    uploader,
	}
}

// CreateShopProfile validates the form fields, uploads the certificate and
// populates the wholesaler's empty profile row. Rejected with a conflict on
// any second invocation via the hasShopDetail check.
func (u *ShopProfileUsecase) CreateShopProfile(
	ctx context.Context,
	wholesalerID string,
	input *entities.CreateShopProfileInput,
	certificate io.Reader,
	certificateName string,
) (*entities.WholesalerProfile, error) {
	id, err := uuid.Parse(wholesalerID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid wholesaler ID")
	}

	if input.ShopName == "" || input.ShopNumber == "" || input.ShopAddress == "" ||
		input.BusinessHours == "" || input.GSTNumber == "" || input.MandiRegion == "" ||
		input.Pincode == "" || certificate == nil {
		return nil, domainerrors.BadRequest("All shop profile fields and business certificate file are required")
	}

	if !shopNameRegex.MatchString(input.ShopName) {
		return nil, domainerrors.BadRequest("Invalid shop name (2-100 characters, alphanumeric and spaces)")
	}
	if !shopNumberRegex.MatchString(input.ShopNumber) {
		return nil, domainerrors.BadRequest("Invalid shop number format")
	}
	if len(input.ShopAddress) < 5 || len(input.ShopAddress) > 200 {
		return nil, domainerrors.BadRequest("Shop address must be 5-200 characters")
	}

	var hours entities.BusinessHours
	if err := json.Unmarshal([]byte(input.BusinessHours), &hours); err != nil {
		return nil, domainerrors.BadRequest("Invalid business hours format: must be a valid JSON string")
	}
	if !timeRegex.MatchString(hours.MonToSat.Open) ||
		!timeRegex.MatchString(hours.MonToSat.Close) ||
		!timeRegex.MatchString(hours.Sunday.Open) ||
		!timeRegex.MatchString(hours.Sunday.Close) {
		return nil, domainerrors.BadRequest("Invalid business hours format (e.g., '08:00 AM')")
	}

	if !gstRegex.MatchString(input.GSTNumber) {
		return nil, domainerrors.BadRequest("Invalid GST number format")
	}
	if len(input.MandiRegion) < 2 || len(input.MandiRegion) > 100 {
		return nil, domainerrors.BadRequest("Mandi region must be 2-100 characters")
	}
	if !pincodeRegex.MatchString(input.Pincode) {
		return nil, domainerrors.BadRequest("Invalid pincode format (6 digits)")
	}

	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Wholesaler not found")
		}
		return nil, err
	}
	if account.Role != entities.RoleWholesaler {
		return nil, domainerrors.NotFound("Wholesaler not found")
	}
	if !account.IsPhoneVerified {
		return nil, domainerrors.Forbidden("Phone number not verified")
	}
	if account.HasShopDetail {
		return nil, domainerrors.Conflict("Shop profile already created")
	}

	profile, err := u.profileRepo.GetByWholesalerID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Shop profile not found for this wholesaler")
		}
		return nil, err
	}

	// Explicit pre-check; the unique index on gst_number still backstops a
	// race between two concurrent calls.
	if existing, err := u.profileRepo.GetByGSTNumber(ctx, input.GSTNumber); err == nil {
		if existing.WholesalerID != id {
			return nil, domainerrors.Conflict("GST number already exists")
		}
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	url, err := u.uploader.Upload(ctx, certificate, certificateName, certificateCategory)
	if err != nil {
		return nil, domainerrors.UploadError("Failed to upload business certificate: " + err.Error())
	}

	profile.ShopName = input.ShopName
	profile.ShopNumber = input.ShopNumber
	profile.ShopAddress = input.ShopAddress
	profile.BusinessHours = hours
	profile.GSTNumber = input.GSTNumber
	profile.MandiRegion = input.MandiRegion
	profile.Pincode = input.Pincode
	profile.BusinessCertificateURL = null.StringFrom(url)

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("GST number already exists")
		}
		return nil, err
	}

	if err := u.accountRepo.SetHasShopDetail(ctx, id, true); err != nil {
		return nil, err
	}

	return profile, nil
}
