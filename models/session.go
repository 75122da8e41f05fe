package models

import "time"

// Session is the server-side record binding a refresh-token lineage to an
// account. A session is revocable independently of access-token expiry:
// logout, password change, and refresh-token replay all flip IsValid to
// false. Rows are never physically deleted by normal operation so that the
// audit trail stays intact; expired rows are removed by the retention sweep.
type Session struct {
	// SessionID is the UUID primary key. It is embedded in every access
	// token issued against this session.
	SessionID string `json:"session_id"`

	// UserID is the owning account.
	UserID int64 `json:"user_id"`

	// RefreshHash is the SHA-256 hex digest of the currently valid refresh
	// token secret. The plaintext secret is never stored.
	RefreshHash string `json:"-"`

	// PrevRefreshHash holds the digest of the previously issued refresh
	// token after a rotation. A lookup that matches this column instead of
	// RefreshHash means an already-rotated token was presented again —
	// the replay signal that invalidates the whole session.
	PrevRefreshHash *string `json:"-"`

	// IsValid is false once the session has been revoked.
	IsValid bool `json:"is_valid"`

	// IP and UserAgent capture the client metadata recorded at login.
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`

	// TwoFAVerified records whether the 2FA step was satisfied when the
	// session was created. Propagated into every access token issued for
	// the session.
	TwoFAVerified bool `json:"-"`

	// CreatedAt is the login timestamp.
	CreatedAt time.Time `json:"created_at"`

	// RotatedAt is stamped on every successful refresh-token rotation.
	RotatedAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
