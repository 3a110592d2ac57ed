package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOneTimeCodeIsExpired(t *testing.T) {
	now := time.Now()
	code := &OneTimeCode{PhoneNumber: "9876543210", CreatedAt: now}

	assert.False(t, code.IsExpired(now))
	assert.False(t, code.IsExpired(now.Add(OTPValidity)))
	assert.True(t, code.IsExpired(now.Add(OTPValidity+time.Second)))
}
