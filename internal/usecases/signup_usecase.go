package usecases

import (
	"context"
	"errors"
	"regexp"
	"time"

	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/domain/repositories"
	"mandi-bazaar.backend/internal/infrastructure/sms"
	"mandi-bazaar.backend/pkg/crypto"
	"mandi-bazaar.backend/pkg/jwt"
)

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// SignupUsecase orchestrates OTP issuance and OTP-gated wholesaler signup
type SignupUsecase struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	otpStore    repositories.OTPStore
	smsSender   sms.Sender
	jwtService  *jwt.JWTService
}

// NewSignupUsecase creates a new signup usecase
func NewSignupUsecase(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	otpStore repositories.OTPStore,
	smsSender sms.Sender,
	jwtService *jwt.JWTService,
) *SignupUsecase {
	return &SignupUsecase{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		otpStore:    otpStore,
		smsSender:   smsSender,
		jwtService:  jwtService,
	}
}

// RequestOTP issues a one-time code for the phone number. Only the bcrypt
// hash is stored; the plaintext goes out through the SMS collaborator.
func (u *SignupUsecase) RequestOTP(ctx context.Context, input *entities.RequestOTPInput) error {
	if !phoneRegex.MatchString(input.PhoneNumber) {
		return domainerrors.BadRequest("Phone number must be 10 digits")
	}

	code, err := crypto.GenerateCode()
	if err != nil {
		return err
	}
	hash, err := crypto.HashCode(code)
	if err != nil {
		return err
	}

	record := &entities.OneTimeCode{
		PhoneNumber: input.PhoneNumber,
		CodeHash:    hash,
		CreatedAt:   time.Now(),
	}
	if err := u.otpStore.Save(ctx, record); err != nil {
		return err
	}

	return u.smsSender.Send(ctx, input.PhoneNumber, "Your Mandi Bazaar verification code is "+code)
}

// Signup verifies the OTP and creates a wholesaler account with an empty
// linked shop profile. Exactly one account and one profile row are created
// per successful call, and the consumed OTP is removed.
func (u *SignupUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.Account, *jwt.TokenPair, error) {
	if input.Name == "" || input.PhoneNumber == "" || input.Email == "" || input.OTP == "" {
		return nil, nil, domainerrors.BadRequest("Name, phone number, email, and OTP are required")
	}
	if !nameRegex.MatchString(input.Name) {
		return nil, nil, domainerrors.BadRequest("Invalid name format (2-50 characters, letters and spaces only)")
	}
	if !phoneRegex.MatchString(input.PhoneNumber) {
		return nil, nil, domainerrors.BadRequest("Phone number must be 10 digits")
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, nil, domainerrors.BadRequest("Invalid email format")
	}

	record, err := u.otpStore.Get(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.BadRequest("OTP not found for this phone number")
		}
		return nil, nil, err
	}

	// Expiry wins over code correctness.
	if record.IsExpired(time.Now()) {
		return nil, nil, domainerrors.Expired("OTP has expired")
	}
	if !crypto.CheckCode(input.OTP, record.CodeHash) {
		return nil, nil, domainerrors.Unauthorized("Invalid OTP")
	}

	existing, err := u.accountRepo.GetByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, nil, err
	}
	if existing != nil {
		if existing.Role != entities.RoleWholesaler {
			return nil, nil, domainerrors.Forbidden("Phone number registered with a different role")
		}
		if existing.HasShopDetail {
			return nil, nil, domainerrors.Conflict("Wholesaler already exists with profile")
		}
		return nil, nil, domainerrors.Conflict("Wholesaler profile not created, please create profile")
	}

	account := &entities.Account{
		Name:            input.Name,
		PhoneNumber:     input.PhoneNumber,
		Email:           input.Email,
		Role:            entities.RoleWholesaler,
		IsPhoneVerified: true,
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, nil, domainerrors.Conflict("Phone number or email already exists")
		}
		return nil, nil, err
	}

	profile := &entities.WholesalerProfile{
		WholesalerID: account.ID,
		KYCStatus:    entities.KYCPending,
		IsShopOpen:   true,
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, nil, err
	}

	if err := u.otpStore.Delete(ctx, input.PhoneNumber); err != nil {
		return nil, nil, err
	}

	tokens, err := u.jwtService.GenerateTokenPair(account.ID, account.PhoneNumber, string(account.Role))
	if err != nil {
		return nil, nil, err
	}

	return account, tokens, nil
}
