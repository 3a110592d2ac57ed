package entities

import "time"

// OneTimeCode represents a stored OTP record. Only the bcrypt hash of the
// code is kept; expiry is computed from CreatedAt, not stored.
type OneTimeCode struct {
	PhoneNumber string    `json:"phoneNumber"`
	CodeHash    string    `json:"codeHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OTPValidity is the logical lifetime of a one-time code.
const OTPValidity = 5 * time.Minute

// IsExpired reports whether the code is older than its logical lifetime.
func (o *OneTimeCode) IsExpired(now time.Time) bool {
	return now.Sub(o.CreatedAt) > OTPValidity
}
