package models

// AuthStatus is the terminal state of an authentication operation as
// reported to the transport layer.
type AuthStatus string

const (
	// StatusSuccess means tokens were issued.
	StatusSuccess AuthStatus = "success"

	// StatusPending2FA means the password stage passed but a two-factor
	// code is still required before tokens are issued.
	StatusPending2FA AuthStatus = "pending_2fa"
)

// LoginResult is the outcome of a successful (or 2FA-pending) login.
// Error outcomes are reported through sentinel errors, not through this
// struct.
type LoginResult struct {
	// Status is either StatusSuccess or StatusPending2FA.
	Status AuthStatus `json:"status"`

	// AccessToken and RefreshToken are present only when Status is
	// StatusSuccess.
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`

	// Account is the public projection of the authenticated user.
	// For the pending-2FA state only UserID is guaranteed to be set, so
	// the client can address the verification request.
	Account AccountSummary `json:"account"`
}

// RefreshResult carries the rotated token pair.
type RefreshResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TwoFASetup is returned when 2FA enrollment is initiated. The secret and
// backup codes are shown to the user exactly once and never again.
type TwoFASetup struct {
	// Secret is the base32-encoded TOTP shared secret.
	Secret string `json:"secret"`

	// OtpAuthURI is the otpauth:// provisioning URI consumed by
	// authenticator apps.
	OtpAuthURI string `json:"otpauth_uri"`

	// BackupCodes are the plaintext single-use fallback codes.
	BackupCodes []string `json:"backup_codes"`
}

// SessionInfo is the public projection of a session row for the
// "where am I logged in" listing.
type SessionInfo struct {
	SessionID string `json:"session_id"`
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	CreatedAt string `json:"created_at"`
	Current   bool   `json:"current"`
}
