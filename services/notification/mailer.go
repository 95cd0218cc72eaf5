package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer writes confirmation mails to the log instead of delivering them.
// Used in development and wherever no mail transport is configured.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) SendConfirmation(ctx context.Context, to, subject, body string) error {
	m.Logger.Info("confirmation mail",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
