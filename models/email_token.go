package models

import "time"

// TokenPurpose distinguishes the single-use email token flows.
type TokenPurpose string

const (
	// PurposeVerifyEmail marks tokens sent to confirm an email address.
	PurposeVerifyEmail TokenPurpose = "verify_email"

	// PurposeResetPassword marks tokens sent for password recovery.
	PurposeResetPassword TokenPurpose = "reset_password"
)

// EmailToken is a single-use token delivered out of band (by email link)
// for address verification and password recovery. Only a digest of the
// token is stored; presenting the plaintext token consumes the row.
type EmailToken struct {
	// TokenID is the server-assigned primary key.
	TokenID int64 `json:"-"`

	// UserID is the account the token was issued for.
	UserID int64 `json:"-"`

	// Purpose selects the flow the token belongs to.
	Purpose TokenPurpose `json:"purpose"`

	// TokenHash is the SHA-256 hex digest of the token value.
	TokenHash string `json:"-"`

	// ExpiresAt bounds the token lifetime.
	ExpiresAt time.Time `json:"expires_at"`

	// UsedAt is stamped when the token is consumed; a non-nil value makes
	// the token unusable.
	UsedAt *time.Time `json:"-"`

	// CreatedAt is the issuance timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the EmailToken model.
func (t EmailToken) TableName() string {
	return "email_tokens"
}
