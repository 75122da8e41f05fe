package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateCredential is returned when an attempt to register a new
	// account fails because the email or username is already taken.
	ErrDuplicateCredential = errors.New("email or username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set. Soft-deleted accounts
	// are treated as absent.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when no session matches the supplied
	// identifier or refresh-token digest.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrRefreshReplayDetected is returned when a presented refresh token
	// matches the previous (already rotated out) token of a session. The
	// caller must treat this as a compromise signal and invalidate the
	// whole session.
	ErrRefreshReplayDetected = errors.New("reuse of a rotated refresh token detected")

	// ErrRotationConflict is returned when the compare-and-swap rotation
	// UPDATE matches no row: the session was revoked, or a concurrent
	// refresh already rotated the token.
	ErrRotationConflict = errors.New("refresh token rotation conflict")

	// ErrTOTPCounterReplayed is returned when advancing the last accepted
	// TOTP counter matches no row, meaning a code for the same or an older
	// time step was already consumed.
	ErrTOTPCounterReplayed = errors.New("totp code already consumed for this time step")

	// ErrBackupCodeUsed is returned when a backup code row exists but was
	// already consumed.
	ErrBackupCodeUsed = errors.New("backup code already used")

	// ErrEmailTokenNotFound is returned when no usable email token matches
	// the supplied digest (unknown, expired, or already consumed).
	ErrEmailTokenNotFound = errors.New("email token was not found or is no longer valid")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
