package models

import "time"

// LoginAttempt is the fixed-window failure counter behind the login rate
// limiter. Rows are keyed by the normalized identifier (lower-cased,
// trimmed email) so that attempts against unknown accounts are throttled
// exactly like attempts against real ones.
type LoginAttempt struct {
	// Identifier is the normalized email the attempts were made with.
	Identifier string `json:"identifier"`

	// FailedCount is the number of failed attempts in the current window.
	FailedCount int `json:"failed_count"`

	// WindowStartedAt marks the beginning of the current counting window.
	// Counters outside the window are treated as expired and reset on the
	// next failure.
	WindowStartedAt time.Time `json:"window_started_at"`
}

// TableName returns the name of the database table
// associated with the LoginAttempt model.
func (a LoginAttempt) TableName() string {
	return "login_attempts"
}
