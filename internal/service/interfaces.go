package service

import (
	"context"

	"github.com/mzotov/cliptide/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService owns the session lifecycle: registration, login, the
// two-factor gate, refresh-token rotation, and logout.
type AuthService interface {
	// Register creates a new member account and triggers the verification
	// mail. Returns ErrCredentialTaken when the username or email is in
	// use.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates by email and password. For accounts with 2FA
	// enabled it returns a pending result and no tokens; otherwise it
	// opens a session and issues the token pair.
	Login(ctx context.Context, email, password, ip, userAgent string) (models.LoginResult, error)

	// VerifyTwoFactor answers the pending challenge opened by Login with
	// a TOTP code or a backup code and, on success, opens the session.
	VerifyTwoFactor(ctx context.Context, userID int64, code, ip, userAgent string) (models.LoginResult, error)

	// Refresh rotates the presented refresh token and issues a new token
	// pair. Presenting an already-rotated token invalidates the whole
	// session and returns ErrSessionRevoked.
	Refresh(ctx context.Context, refreshToken string) (models.RefreshResult, error)

	// Logout invalidates the session. Idempotent.
	Logout(ctx context.Context, sessionID string) error

	// ParseToken validates a compact access token string and returns the
	// decoded token. Any validation failure is normalised to
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ListSessions returns the account's valid sessions, flagging the one
	// the request was made with.
	ListSessions(ctx context.Context, userID int64, currentSessionID string) ([]models.SessionInfo, error)

	// RevokeSession invalidates one session owned by the account.
	RevokeSession(ctx context.Context, userID int64, sessionID string) error

	// RevokeAllSessions invalidates every session of the account.
	RevokeAllSessions(ctx context.Context, userID int64) error
}

// TwoFAService owns TOTP enrollment: setup, confirmation, and disabling.
// Code verification during login lives on AuthService because it is a
// login stage, not an enrollment action.
type TwoFAService interface {
	// InitiateSetup generates a fresh secret and provisioning URI. The
	// secret stays pending until ConfirmSetup proves the authenticator
	// was enrolled.
	InitiateSetup(ctx context.Context, userID int64) (models.TwoFASetup, error)

	// ConfirmSetup verifies one code against the pending secret, enables
	// 2FA, and returns nothing more: the backup codes were already handed
	// out by InitiateSetup.
	ConfirmSetup(ctx context.Context, userID int64, code string) error

	// Disable turns 2FA off after re-authenticating with the password and
	// a current code.
	Disable(ctx context.Context, userID int64, password, code string) error
}

// AccountService owns credential and lifecycle changes of an
// authenticated account.
type AccountService interface {
	// ChangePassword verifies the current password, installs the new one,
	// and invalidates every session of the account.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error

	// RequestDeletion re-authenticates with the password, soft-deletes
	// the account, and invalidates its sessions.
	RequestDeletion(ctx context.Context, userID int64, password string) error

	// CancelDeletion restores a soft-deleted account within the retention
	// window.
	CancelDeletion(ctx context.Context, userID int64) error
}

// EmailService owns the out-of-band token flows: address verification and
// password recovery. All operations are enumeration-resistant: requests
// for unknown addresses succeed silently.
type EmailService interface {
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

// AuditService is the append-only security log surface.
type AuditService interface {
	// Record appends one event. Failures are logged and swallowed: audit
	// writes never fail the operation that triggered them.
	Record(ctx context.Context, userID *int64, eventType models.EventType, metadata map[string]any)

	// ListEvents serves the admin audit listing.
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.SecurityEvent, error)
}
