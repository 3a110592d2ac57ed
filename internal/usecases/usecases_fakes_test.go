package usecases

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/pkg/crypto"
)

type fakeAccountRepo struct {
	accounts  map[uuid.UUID]*entities.Account
	createErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]*entities.Account{}}
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *entities.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, a := range f.accounts {
		if a.PhoneNumber == account.PhoneNumber || a.Email == account.Email {
			return domainerrors.ErrAlreadyExists
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	cp := *account
	f.accounts[account.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entities.Account, error) {
	for _, a := range f.accounts {
		if a.PhoneNumber == phoneNumber {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (f *fakeAccountRepo) SetHasShopDetail(ctx context.Context, id uuid.UUID, hasShopDetail bool) error {
	a, ok := f.accounts[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	a.HasShopDetail = hasShopDetail
	return nil
}

type fakeProfileRepo struct {
	profiles  map[uuid.UUID]*entities.WholesalerProfile // keyed by wholesaler ID
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*entities.WholesalerProfile{}}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entities.WholesalerProfile) error {
	if _, ok := f.profiles[profile.WholesalerID]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	cp := *profile
	f.profiles[profile.WholesalerID] = &cp
	return nil
}

func (f *fakeProfileRepo) GetByWholesalerID(ctx context.Context, wholesalerID uuid.UUID) (*entities.WholesalerProfile, error) {
	p, ok := f.profiles[wholesalerID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) GetByGSTNumber(ctx context.Context, gstNumber string) (*entities.WholesalerProfile, error) {
	for _, p := range f.profiles {
		if p.GSTNumber == gstNumber && gstNumber != "" {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entities.WholesalerProfile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.profiles[profile.WholesalerID]; !ok {
		return domainerrors.ErrNotFound
	}
	cp := *profile
	f.profiles[profile.WholesalerID] = &cp
	return nil
}

type fakeOTPStore struct {
	codes map[string]*entities.OneTimeCode
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{codes: map[string]*entities.OneTimeCode{}}
}

func (f *fakeOTPStore) Save(ctx context.Context, code *entities.OneTimeCode) error {
	cp := *code
	f.codes[code.PhoneNumber] = &cp
	return nil
}

func (f *fakeOTPStore) Get(ctx context.Context, phoneNumber string) (*entities.OneTimeCode, error) {
	c, ok := f.codes[phoneNumber]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeOTPStore) Delete(ctx context.Context, phoneNumber string) error {
	delete(f.codes, phoneNumber)
	return nil
}

// seedCode stores a bcrypt-hashed OTP as the store would hold it.
func (f *fakeOTPStore) seedCode(phoneNumber, code string, createdAt time.Time) error {
	hash, err := crypto.HashCode(code)
	if err != nil {
		return err
	}
	f.codes[phoneNumber] = &entities.OneTimeCode{
		PhoneNumber: phoneNumber,
		CodeHash:    hash,
		CreatedAt:   createdAt,
	}
	return nil
}

type fakeSMSSender struct {
	messages []string
	sendErr  error
}

func (f *fakeSMSSender) Send(ctx context.Context, phoneNumber, message string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.messages = append(f.messages, phoneNumber+": "+message)
	return nil
}

type fakeUploader struct {
	uploads []string
	err     error
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, filename, category string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	var sb strings.Builder
	if file != nil {
		if _, err := io.Copy(&sb, file); err != nil {
			return "", err
		}
	}
	url := "http://uploads.local/" + category + "/" + filename
	f.uploads = append(f.uploads, url)
	return url, nil
}

type fakeOrderRepo struct {
	orders    map[uuid.UUID]*entities.Order
	listErr   error
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*entities.Order{}}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entities.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id, wholesalerID uuid.UUID) (*entities.Order, error) {
	o, ok := f.orders[id]
	if !ok || o.WholesalerID != wholesalerID {
		return nil, domainerrors.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByWholesaler(ctx context.Context, wholesalerID uuid.UUID) ([]*entities.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entities.Order
	for _, o := range f.orders {
		if o.WholesalerID == wholesalerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *entities.Order) error {
	o, ok := f.orders[order.ID]
	if !ok || o.WholesalerID != order.WholesalerID {
		return domainerrors.ErrNotFound
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id, wholesalerID uuid.UUID) error {
	o, ok := f.orders[id]
	if !ok || o.WholesalerID != wholesalerID {
		return domainerrors.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) Search(ctx context.Context, wholesalerID uuid.UUID, filter entities.OrderSearchFilter) ([]*entities.Order, error) {
	var out []*entities.Order
	for _, o := range f.orders {
		if o.WholesalerID != wholesalerID {
			continue
		}
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		if filter.RetailerID != nil && o.RetailerID != *filter.RetailerID {
			continue
		}
		if filter.FromDate != nil && o.CreatedAt.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && o.CreatedAt.After(*filter.ToDate) {
			continue
		}
		if filter.MinTotal != nil && o.OrderTotal < *filter.MinTotal {
			continue
		}
		if filter.MaxTotal != nil && o.OrderTotal > *filter.MaxTotal {
			continue
		}
		if filter.PaymentMethod != "" && string(o.PaymentMethod) != filter.PaymentMethod {
			continue
		}
		if filter.VehicleNumber != "" && o.VehicleNumber.String != filter.VehicleNumber {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

type fakeRetailerRepo struct {
	retailers map[uuid.UUID]*entities.RetailerProfile
	createErr error
}

func newFakeRetailerRepo() *fakeRetailerRepo {
	return &fakeRetailerRepo{retailers: map[uuid.UUID]*entities.RetailerProfile{}}
}

func (f *fakeRetailerRepo) Create(ctx context.Context, retailer *entities.RetailerProfile) error {
	if f.createErr != nil {
		return f.createErr
	}
	if retailer.ID == uuid.Nil {
		retailer.ID = uuid.New()
	}
	cp := *retailer
	f.retailers[retailer.ID] = &cp
	return nil
}

func (f *fakeRetailerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.RetailerProfile, error) {
	r, ok := f.retailers[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

var errBoom = errors.New("boom")
