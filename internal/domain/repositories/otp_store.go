package repositories

import (
	"context"

	"mandi-bazaar.backend/internal/domain/entities"
)

// OTPStore defines one-time code storage keyed by phone number. Save
// replaces any previous code for the same phone; Get returns the most
// recently saved record.
type OTPStore interface {
	Save(ctx context.Context, code *entities.OneTimeCode) error
	Get(ctx context.Context, phoneNumber string) (*entities.OneTimeCode, error)
	Delete(ctx context.Context, phoneNumber string) error
}
