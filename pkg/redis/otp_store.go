package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
)

const otpKeyPrefix = "otp:"

// OTPStore keeps one-time codes in Redis, one record per phone number.
// Records outlive the 5-minute logical expiry so a late verification can be
// answered with "expired" rather than "not found"; the Redis TTL is only a
// hygiene bound.
type OTPStore struct {
	recordTTL time.Duration
}

var (
	setOTPValue = Set
	getOTPValue = Get
	delOTPValue = Del
)

// NewOTPStore creates a Redis-backed OTP store
func NewOTPStore(recordTTL time.Duration) *OTPStore {
	if recordTTL <= 0 {
		recordTTL = 24 * time.Hour
	}
	return &OTPStore{recordTTL: recordTTL}
}

// Save stores the code record, replacing any previous one for the phone
func (s *OTPStore) Save(ctx context.Context, code *entities.OneTimeCode) error {
	data, err := json.Marshal(code)
	if err != nil {
		return err
	}
	return setOTPValue(ctx, otpKeyPrefix+code.PhoneNumber, data, s.recordTTL)
}

// Get retrieves the most recent code record for the phone
func (s *OTPStore) Get(ctx context.Context, phoneNumber string) (*entities.OneTimeCode, error) {
	data, err := getOTPValue(ctx, otpKeyPrefix+phoneNumber)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var code entities.OneTimeCode
	if err := json.Unmarshal([]byte(data), &code); err != nil {
		return nil, err
	}
	return &code, nil
}

// Delete removes the code record after consumption
func (s *OTPStore) Delete(ctx context.Context, phoneNumber string) error {
	return delOTPValue(ctx, otpKeyPrefix+phoneNumber)
}
