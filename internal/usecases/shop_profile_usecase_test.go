package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
)

const validBusinessHours = `{"monToSat":{"open":"06:00 AM","close":"09:00 PM"},"sunday":{"open":"07:00 AM","close":"01:00 PM"}}`

func validShopProfileInput() *entities.CreateShopProfileInput {
	return &entities.CreateShopProfileInput{
		ShopName:      "Fresh Veggies",
		ShopNumber:    "A-12",
		ShopAddress:   "Azadpur Mandi, Delhi",
		BusinessHours: validBusinessHours,
		GSTNumber:     "07ABCDE1234F1Z5",
		MandiRegion:   "Azadpur",
		Pincode:       "110033",
	}
}

func newShopProfileFixture(t *testing.T) (*ShopProfileUsecase, *fakeAccountRepo, *fakeProfileRepo, *fakeUploader, uuid.UUID) {
	t.Helper()
	accounts := newFakeAccountRepo()
	profiles := newFakeProfileRepo()
	uploader := &fakeUploader{}
	uc := NewShopProfileUsecase(accounts, profiles, uploader)

	account := &entities.Account{
		Name:            "Ramesh",
		PhoneNumber:     "9876543210",
		Email:           "r@example.com",
		Role:            entities.RoleWholesaler,
		IsPhoneVerified: true,
	}
	require.NoError(t, accounts.Create(context.Background(), account))
	require.NoError(t, profiles.Create(context.Background(), &entities.WholesalerProfile{
		WholesalerID: account.ID,
		KYCStatus:    entities.KYCPending,
		IsShopOpen:   true,
	}))
	return uc, accounts, profiles, uploader, account.ID
}

func TestCreateShopProfileSuccess(t *testing.T) {
	uc, accounts, profiles, uploader, wholesalerID := newShopProfileFixture(t)
	ctx := context.Background()

	profile, err := uc.CreateShopProfile(ctx, wholesalerID.String(), validShopProfileInput(),
		strings.NewReader("certificate"), "cert.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Fresh Veggies", profile.ShopName)
	assert.Equal(t, "06:00 AM", profile.BusinessHours.MonToSat.Open)
	assert.True(t, profile.BusinessCertificateURL.Valid)
	require.Len(t, uploader.uploads, 1)
	assert.Contains(t, uploader.uploads[0], "business-certificates")

	stored, err := profiles.GetByWholesalerID(ctx, wholesalerID)
	require.NoError(t, err)
	assert.Equal(t, "07ABCDE1234F1Z5", stored.GSTNumber)
	// KYC stays pending for admin review.
	assert.Equal(t, entities.KYCPending, stored.KYCStatus)

	account, err := accounts.GetByID(ctx, wholesalerID)
	require.NoError(t, err)
	assert.True(t, account.HasShopDetail)
}

func TestCreateShopProfileSecondAttemptConflicts(t *testing.T) {
	uc, _, _, _, wholesalerID := newShopProfileFixture(t)
	ctx := context.Background()

	_, err := uc.CreateShopProfile(ctx, wholesalerID.String(), validShopProfileInput(),
		strings.NewReader("certificate"), "cert.pdf")
	require.NoError(t, err)

	_, err = uc.CreateShopProfile(ctx, wholesalerID.String(), validShopProfileInput(),
		strings.NewReader("certificate"), "cert.pdf")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Shop profile already created", appErr.Message)
}

func TestCreateShopProfileValidation(t *testing.T) {
	uc, _, _, uploader, wholesalerID := newShopProfileFixture(t)
	ctx := context.Background()
	id := wholesalerID.String()

	t.Run("invalid wholesaler id", func(t *testing.T) {
		_, err := uc.CreateShopProfile(ctx, "not-a-uuid", validShopProfileInput(), strings.NewReader("x"), "c.pdf")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("missing certificate", func(t *testing.T) {
		_, err := uc.CreateShopProfile(ctx, id, validShopProfileInput(), nil, "")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("missing fields", func(t *testing.T) {
		input := validShopProfileInput()
		input.ShopName = ""
		_, err := uc.CreateShopProfile(ctx, id, input, strings.NewReader("x"), "c.pdf")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("shop name with symbols", func(t *testing.T) {
		input := validShopProfileInput()
		input.ShopName = "Veggies & Co!"
		_, err := uc.CreateShopProfile(ctx, id, input, strings.NewReader("x"), "c.pdf")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("business hours not json", func(t *testing.T) {
		input := validShopProfileInput()
		input.BusinessHours = "8am to 9pm"
		_, err := uc.CreateShopProfile(ctx, id, input, strings.NewReader("x"), "c.pdf")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("business hours bad time format", func(t *testing.T) {
		input := validShopProfileInput()
		input.BusinessHours = `{"monToSat":{"open":"6:00","close":"21:00"},"sunday":{"open":"07:00 AM","close":"01:00 PM"}}`
		_, err := uc.CreateShopProfile(ctx, id, input, strings.NewReader("x"), "c.pdf")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("invalid gst", func(t *testing.T) {
		input := validShopProfileInput()
		input.GSTNumber = "INVALIDGST123"
		_, err := uc.CreateShopProfile(ctx, id, input, strings.NewReader("x"), "c.pdf")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("invalid pincode", func(t *testing.T) {
		input := validShopProfileInput()
		input.Pincode = "1100"
		_, err := uc.CreateShopProfile(ctx, id, input, strings.NewReader("x"), "c.pdf")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	// No upload happens on any validation failure.
	assert.Empty(t, uploader.uploads)
}

func TestCreateShopProfileAccountChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("wholesaler not found", func(t *testing.T) {
		uc, _, _, _, _ := newShopProfileFixture(t)
		_, err := uc.CreateShopProfile(ctx, uuid.New().String(), validShopProfileInput(), strings.NewReader("x"), "c.pdf")
		var appErr *domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Wholesaler not found", appErr.Message)
	})

	t.Run("retailer account", func(t *testing.T) {
		uc, accounts, _, _, _ := newShopProfileFixture(t)
		retailer := &entities.Account{
			Name: "Shop Keeper", PhoneNumber: "9000000001", Email: "keeper@example.com",
			Role: entities.RoleRetailer, IsPhoneVerified: true,
		}
		require.NoError(t, accounts.Create(ctx, retailer))

		_, err := uc.CreateShopProfile(ctx, retailer.ID.String(), validShopProfileInput(), strings.NewReader("x"), "c.pdf")
		var appErr *domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Status)
	})

	t.Run("phone not verified", func(t *testing.T) {
		uc, accounts, profiles, _, _ := newShopProfileFixture(t)
		unverified := &entities.Account{
			Name: "Suresh", PhoneNumber: "9000000002", Email: "s@example.com",
			Role: entities.RoleWholesaler,
		}
		require.NoError(t, accounts.Create(ctx, unverified))
		require.NoError(t, profiles.Create(ctx, &entities.WholesalerProfile{WholesalerID: unverified.ID}))

		_, err := uc.CreateShopProfile(ctx, unverified.ID.String(), validShopProfileInput(), strings.NewReader("x"), "c.pdf")
		var appErr *domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Status)
	})
}

func TestCreateShopProfileDuplicateGST(t *testing.T) {
	uc, accounts, profiles, _, firstID := newShopProfileFixture(t)
	ctx := context.Background()

	_, err := uc.CreateShopProfile(ctx, firstID.String(), validShopProfileInput(), strings.NewReader("x"), "c.pdf")
	require.NoError(t, err)

	second := &entities.Account{
		Name: "Suresh", PhoneNumber: "9000000003", Email: "suresh@example.com",
		Role: entities.RoleWholesaler, IsPhoneVerified: true,
	}
	require.NoError(t, accounts.Create(ctx, second))
	require.NoError(t, profiles.Create(ctx, &entities.WholesalerProfile{WholesalerID: second.ID}))

	_, err = uc.CreateShopProfile(ctx, second.ID.String(), validShopProfileInput(), strings.NewReader("x"), "c.pdf")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "GST number already exists", appErr.Message)
}

func TestCreateShopProfileUploadFailure(t *testing.T) {
	uc, accounts, _, uploader, wholesalerID := newShopProfileFixture(t)
	uploader.err = errBoom
	ctx := context.Background()

	_, err := uc.CreateShopProfile(ctx, wholesalerID.String(), validShopProfileInput(), strings.NewReader("x"), "c.pdf")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "Failed to upload business certificate")

	// Profile stays uncommitted on upload failure.
	account, getErr := accounts.GetByID(ctx, wholesalerID)
	require.NoError(t, getErr)
	assert.False(t, account.HasShopDetail)
}
