package models

import "time"

// BackupCode is a single-use fallback credential for two-factor login.
// A fixed-size set is generated when 2FA setup is confirmed; each code is
// invalidated the moment it is accepted.
type BackupCode struct {
	// CodeID is the server-assigned primary key.
	CodeID int64 `json:"-"`

	// UserID is the owning account.
	UserID int64 `json:"-"`

	// CodeHash is the argon2id digest of the code. Plaintext codes are
	// shown to the user once at generation time and never stored.
	CodeHash string `json:"-"`

	// Used is true once the code has been consumed.
	Used bool `json:"used"`

	// UsedAt is stamped when the code is consumed.
	UsedAt *time.Time `json:"used_at,omitempty"`

	// CreatedAt is the generation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the BackupCode model.
func (b BackupCode) TableName() string {
	return "backup_codes"
}
