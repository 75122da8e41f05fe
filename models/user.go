package models

import "time"

// Role enumerates the access levels an account can hold.
type Role string

const (
	// RoleMember is the default role assigned at registration.
	RoleMember Role = "member"

	// RoleAdmin grants access to the moderation and audit surfaces.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique public handle of the account.
	Username string `json:"username"`

	// Email is the unique address the account was registered with.
	// Used as the login identifier.
	Email string `json:"email"`

	// PasswordHash stores the argon2id-encoded password digest.
	// Never plaintext, never serialized.
	PasswordHash string `json:"-"`

	// Role is the access level of the account (member or admin).
	Role Role `json:"role"`

	// EmailVerified reports whether the account confirmed its email address.
	EmailVerified bool `json:"email_verified"`

	// TwoFAEnabled reports whether TOTP two-factor authentication is active.
	// Login for such accounts never issues tokens before a code is verified.
	TwoFAEnabled bool `json:"two_fa_enabled"`

	// TwoFASecret is the base32-encoded TOTP shared secret.
	// Present from the moment setup is initiated; cleared on disable.
	// While TwoFAEnabled is false the secret is pending confirmation.
	TwoFASecret *string `json:"-"`

	// TOTPLastCounter is the last accepted TOTP time-step counter.
	// Codes at or below this counter are rejected (anti-replay).
	TOTPLastCounter int64 `json:"-"`

	// PasswordChangedAt is stamped on every successful password change.
	PasswordChangedAt *time.Time `json:"-"`

	// DeletedAt marks the account as soft-deleted. Soft-deleted accounts
	// are excluded from all lookups and cannot authenticate. The row stays
	// restorable until the retention sweep removes it.
	DeletedAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AccountSummary is the public projection of a User returned by the
// authentication endpoints. It carries no credential material.
type AccountSummary struct {
	UserID        int64  `json:"user_id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	EmailVerified bool   `json:"email_verified"`
	TwoFAEnabled  bool   `json:"two_fa_enabled"`
}

// Summary builds the public projection of the user.
func (u User) Summary() AccountSummary {
	return AccountSummary{
		UserID:        u.UserID,
		Username:      u.Username,
		Email:         u.Email,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		TwoFAEnabled:  u.TwoFAEnabled,
	}
}
