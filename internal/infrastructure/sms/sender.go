package sms

import (
	"context"

	"go.uber.org/zap"
	"mandi-bazaar.backend/pkg/logger"
)

// Sender delivers a text message to a phone number. The production gateway
// lives outside this repo; LogSender is the development implementation.
type Sender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// LogSender writes outgoing messages to the structured log instead of a
// gateway.
type LogSender struct{}

// NewLogSender creates a log-only SMS sender
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the message
func (s *LogSender) Send(ctx context.Context, phoneNumber, message string) error {
	logger.Info(ctx, "SMS sent",
		zap.String("phone", phoneNumber),
		zap.String("message", message),
	)
	return nil
}
