package mailer

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers account-lifecycle notifications. Implementations must be
// safe for concurrent use. Delivery failures are reported to the caller but
// are never fatal to the triggering flow: the caller logs and proceeds.
type Mailer interface {
	// SendVerificationEmail mails the address-confirmation link containing
	// the single-use token.
	SendVerificationEmail(ctx context.Context, email, token string) error

	// SendPasswordResetEmail mails the password-reset link containing the
	// single-use token.
	SendPasswordResetEmail(ctx context.Context, email, token string) error

	// SendTwoFAEnabledEmail notifies the account that two-factor
	// authentication was turned on.
	SendTwoFAEnabledEmail(ctx context.Context, email string) error

	// SendDeletionScheduledEmail notifies the account that deletion was
	// requested and names the restore window.
	SendDeletionScheduledEmail(ctx context.Context, email string) error
}
