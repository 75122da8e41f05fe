package store

import (
	"context"
	"time"

	"github.com/mzotov/cliptide/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store. All lookup methods exclude
// soft-deleted rows; restore-path methods that must see deleted rows say so
// explicitly.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// FindUserByIDIncludingDeleted also matches soft-deleted rows. Used only
	// by the deletion-cancel flow.
	FindUserByIDIncludingDeleted(ctx context.Context, userID int64) (models.User, error)

	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	SetPendingTwoFASecret(ctx context.Context, userID int64, secret string) error
	EnableTwoFA(ctx context.Context, userID int64) error
	DisableTwoFA(ctx context.Context, userID int64) error
	// AdvanceTOTPCounter moves the last accepted TOTP counter forward.
	// Returns ErrTOTPCounterReplayed when counter is not strictly greater
	// than the stored value (anti-replay compare-and-swap).
	AdvanceTOTPCounter(ctx context.Context, userID int64, counter int64) error
	MarkEmailVerified(ctx context.Context, userID int64) error
	SoftDeleteUser(ctx context.Context, userID int64) error
	RestoreUser(ctx context.Context, userID int64) error
}

// SessionRepository is the server-side session registry.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindSessionByRefreshHash(ctx context.Context, refreshHash string) (models.Session, error)
	FindSessionByID(ctx context.Context, sessionID string) (models.Session, error)
	// RotateRefreshHash atomically swaps the current refresh digest for a
	// new one, keeping the old digest in prev_refresh_hash for replay
	// detection. Returns ErrRotationConflict when the expected current
	// digest no longer matches (revoked session or concurrent rotation).
	RotateRefreshHash(ctx context.Context, sessionID, currentHash, newHash string) error
	// InvalidateSession is idempotent: invalidating an already-invalid
	// session is not an error.
	InvalidateSession(ctx context.Context, sessionID string) error
	InvalidateUserSessions(ctx context.Context, userID int64) (int64, error)
	ListUserSessions(ctx context.Context, userID int64) ([]models.Session, error)
	DeleteSessionsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// SecurityEventRepository is the append-only audit log. No update or delete
// operation is exposed besides the retention cut.
type SecurityEventRepository interface {
	AppendEvent(ctx context.Context, event models.SecurityEvent) (models.SecurityEvent, error)
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.SecurityEvent, error)
	DeleteEventsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// BackupCodeRepository stores the single-use 2FA fallback codes.
type BackupCodeRepository interface {
	ReplaceBackupCodes(ctx context.Context, userID int64, codeHashes []string) error
	ListUnusedBackupCodes(ctx context.Context, userID int64) ([]models.BackupCode, error)
	// ConsumeBackupCode marks one code used. The compare-and-swap form
	// guarantees a code is accepted at most once even under concurrent
	// verification attempts.
	ConsumeBackupCode(ctx context.Context, codeID int64) error
	DeleteBackupCodes(ctx context.Context, userID int64) error
}

// LoginAttemptRepository is the fixed-window failure counter behind the
// rate limiter, keyed by normalized identifier.
type LoginAttemptRepository interface {
	// RecordFailure increments the counter for the identifier, resetting
	// the window when the previous one (started before windowCutoff) has
	// expired. Returns the updated row.
	RecordFailure(ctx context.Context, identifier string, windowCutoff time.Time) (models.LoginAttempt, error)
	GetAttempts(ctx context.Context, identifier string) (models.LoginAttempt, error)
	ResetAttempts(ctx context.Context, identifier string) error
	DeleteAttemptsStartedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// EmailTokenRepository stores single-use verification and reset tokens.
type EmailTokenRepository interface {
	CreateEmailToken(ctx context.Context, token models.EmailToken) (models.EmailToken, error)
	// ConsumeEmailToken marks the token used and returns the owning user
	// id. Expired, unknown, and already-consumed tokens all map to
	// ErrEmailTokenNotFound.
	ConsumeEmailToken(ctx context.Context, tokenHash string, purpose models.TokenPurpose) (int64, error)
	InvalidateUserTokens(ctx context.Context, userID int64, purpose models.TokenPurpose) error
	DeleteTokensExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
