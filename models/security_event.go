// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package models

import "time"

// EventType enumerates the security events the service records.
// The set is closed: repositories reject unknown values at the type level
// by construction because services only emit these constants.
type EventType string

const (
	EventUserRegistered            EventType = "user_registered"
	EventUserLogin                 EventType = "user_login"
	EventLoginFailed               EventType = "login_failed"
	EventLoginRateLimitExceeded    EventType = "login_rate_limit_exceeded"
	EventTwoFARequired             EventType = "2fa_required"
	EventTwoFAVerified             EventType = "2fa_verified"
	EventTwoFAVerificationFailed   EventType = "2fa_verification_failed"
	EventTwoFALockout              EventType = "2fa_lockout"
	EventTwoFAEnabled              EventType = "2fa_enabled"
	EventTwoFADisabled             EventType = "2fa_disabled"
	EventBackupCodeUsed            EventType = "backup_code_used"
	EventUserLogout                EventType = "user_logout"
	EventTokenRefreshed            EventType = "token_refreshed"
	EventTokenReplayDetected       EventType = "token_replay_detected"
	EventPasswordChanged           EventType = "password_changed"
	EventPasswordResetRequested    EventType = "password_reset_requested"
	EventPasswordResetCompleted    EventType = "password_reset_completed"
	EventEmailVerified             EventType = "email_verified"
	EventEmailVerificationResent   EventType = "email_verification_resent"
	EventAccountDeletionRequested  EventType = "account_deletion_requested"
	EventAccountDeletionCancelled  EventType = "account_deletion_cancelled"
	EventSessionsInvalidated       EventType = "sessions_invalidated"
)

// SecurityEvent is one append-only row of the security audit log.
// Events are never updated or deleted by normal operation; old rows are
// removed only by the retention sweep.
type SecurityEvent struct {
	// EventID is the server-assigned primary key.
	EventID int64 `json:"event_id"`

	// UserID is the account the event concerns. Nil for pre-authentication
	// events such as rate-limit denials on unknown identifiers.
	UserID *int64 `json:"user_id,omitempty"`

	// Type is the enumerated event kind.
	Type EventType `json:"type"`

	// Metadata carries free-form structured context (ip, user agent,
	// identifier, session id). Stored as JSONB.
	Metadata map[string]any `json:"metadata,omitempty"`

	// CreatedAt is the event timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the SecurityEvent model.
func (e SecurityEvent) TableName() string {
	return "security_events"
}

// EventFilter describes the optional criteria for listing security events
// on the admin surface. Zero values mean "no constraint".
type EventFilter struct {
	// UserID restricts the listing to one account.
	UserID *int64 `json:"user_id,omitempty"`

	// Types restricts the listing to the given event kinds.
	Types []EventType `json:"types,omitempty"`

	// Since and Until bound the creation timestamp.
	Since *time.Time `json:"since,omitempty"`
	Until *time.Time `json:"until,omitempty"`

	// Limit caps the number of returned rows. Zero applies the server
	// default.
	Limit int `json:"limit,omitempty"`
}
