package mailer

import (
	"context"

	"github.com/mzotov/cliptide/internal/logger"
)

// noopMailer logs the would-be delivery and succeeds. Used when no
// mail-delivery API is configured (local development, tests).
type noopMailer struct {
	logger *logger.Logger
}

// NewNoopMailer constructs a [Mailer] that only logs. Tokens are never
// written to the log.
func NewNoopMailer(log *logger.Logger) Mailer {
	return &noopMailer{logger: log}
}

func (m *noopMailer) SendVerificationEmail(_ context.Context, email, _ string) error {
	m.logger.Info().Str("to", email).Str("template", "email_verification").Msg("mail delivery skipped: no mailer configured")
	return nil
}

func (m *noopMailer) SendPasswordResetEmail(_ context.Context, email, _ string) error {
	m.logger.Info().Str("to", email).Str("template", "password_reset").Msg("mail delivery skipped: no mailer configured")
	return nil
}

func (m *noopMailer) SendTwoFAEnabledEmail(_ context.Context, email string) error {
	m.logger.Info().Str("to", email).Str("template", "two_fa_enabled").Msg("mail delivery skipped: no mailer configured")
	return nil
}

func (m *noopMailer) SendDeletionScheduledEmail(_ context.Context, email string) error {
	m.logger.Info().Str("to", email).Str("template", "account_deletion_scheduled").Msg("mail delivery skipped: no mailer configured")
	return nil
}
