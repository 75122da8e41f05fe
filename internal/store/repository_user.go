package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and credential-state mutation against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.EmailVerified,
		&u.TwoFAEnabled,
		&u.TwoFASecret,
		&u.TOTPLastCounter,
		&u.PasswordChangedAt,
		&u.DeletedAt,
		&u.CreatedAt,
	)
	return u, err
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateCredential].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.Role)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrDuplicateCredential
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrDuplicateCredential
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail retrieves the account registered with the given email,
// matched case-insensitively to mirror the uniqueness constraint.
// Soft-deleted rows are excluded.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByUsername retrieves the account with the given username.
// Soft-deleted rows are excluded.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID retrieves the account with the given id.
// Soft-deleted rows are excluded.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByIDIncludingDeleted retrieves the account with the given id even
// when it is soft-deleted. Only the deletion-cancel flow may use this.
func (r *userRepository) FindUserByIDIncludingDeleted(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByIDIncludingDeleted", findUserByIDIncludingDeleted, userID)
}

func (r *userRepository) findOne(ctx context.Context, caller, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", caller).Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// UpdatePassword sets the new password hash and stamps password_changed_at.
// Callers must invalidate the account's sessions afterwards; the repository
// does not do it implicitly.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.execExpectingRow(ctx, "*userRepository.UpdatePassword", updateUserPassword, ErrNoUserWasFound, userID, passwordHash)
}

// SetPendingTwoFASecret stores a freshly generated TOTP secret without
// flipping two_fa_enabled. The secret stays pending until confirmed.
func (r *userRepository) SetPendingTwoFASecret(ctx context.Context, userID int64, secret string) error {
	return r.execExpectingRow(ctx, "*userRepository.SetPendingTwoFASecret", setPendingTwoFASecret, ErrNoUserWasFound, userID, secret)
}

// EnableTwoFA flips two_fa_enabled for an account that has a pending secret.
// Accounts without a stored secret are not matched, so enabling without a
// prior SetPendingTwoFASecret fails with [ErrNoUserWasFound].
func (r *userRepository) EnableTwoFA(ctx context.Context, userID int64) error {
	return r.execExpectingRow(ctx, "*userRepository.EnableTwoFA", enableUserTwoFA, ErrNoUserWasFound, userID)
}

// DisableTwoFA clears the secret, the replay counter, and the enabled flag.
func (r *userRepository) DisableTwoFA(ctx context.Context, userID int64) error {
	return r.execExpectingRow(ctx, "*userRepository.DisableTwoFA", disableUserTwoFA, ErrNoUserWasFound, userID)
}

// AdvanceTOTPCounter moves totp_last_counter forward to counter.
// The UPDATE matches only rows whose stored counter is strictly smaller, so
// a code for an already-consumed time step yields [ErrTOTPCounterReplayed].
func (r *userRepository) AdvanceTOTPCounter(ctx context.Context, userID int64, counter int64) error {
	return r.execExpectingRow(ctx, "*userRepository.AdvanceTOTPCounter", advanceTOTPCounter, ErrTOTPCounterReplayed, userID, counter)
}

// MarkEmailVerified flips email_verified for the account.
func (r *userRepository) MarkEmailVerified(ctx context.Context, userID int64) error {
	return r.execExpectingRow(ctx, "*userRepository.MarkEmailVerified", markUserEmailVerified, ErrNoUserWasFound, userID)
}

// SoftDeleteUser stamps deleted_at, removing the account from all regular
// lookups while keeping the row restorable.
func (r *userRepository) SoftDeleteUser(ctx context.Context, userID int64) error {
	return r.execExpectingRow(ctx, "*userRepository.SoftDeleteUser", softDeleteUser, ErrNoUserWasFound, userID)
}

// RestoreUser clears deleted_at on a soft-deleted account.
func (r *userRepository) RestoreUser(ctx context.Context, userID int64) error {
	return r.execExpectingRow(ctx, "*userRepository.RestoreUser", restoreUser, ErrNoUserWasFound, userID)
}

// execExpectingRow runs a DML statement that must affect exactly one row
// and maps the zero-rows case to the supplied sentinel.
func (r *userRepository) execExpectingRow(ctx context.Context, caller, query string, noRowErr error, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return noRowErr
	}

	return nil
}
