package totp

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/totp_manager_mock.go -package=mock

// Manager generates and verifies time-based one-time passwords
// (RFC 6238) for the two-factor enrollment and verification flows.
type Manager interface {
	// GenerateSecret returns a fresh random shared secret, base32-encoded
	// without padding, ready for an authenticator app.
	GenerateSecret() (string, error)

	// ProvisionURI renders the otpauth:// enrollment URI for the secret,
	// labeled with the account name. Suitable for QR encoding.
	ProvisionURI(secretBase32, account string) string

	// VerifyCode checks code against the secret at the given time,
	// allowing one step of clock skew in both directions. On a match it
	// returns the matched counter so the caller can enforce
	// single acceptance per time step.
	VerifyCode(secretBase32, code string, now time.Time) (bool, int64, error)
}
