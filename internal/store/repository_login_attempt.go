package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/models"
)

// loginAttemptRepository is the PostgreSQL-backed implementation of
// [LoginAttemptRepository]. Counters are keyed by a normalized identifier
// so throttling applies whether or not the identifier maps to an account.
type loginAttemptRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLoginAttemptRepository constructs a [LoginAttemptRepository] backed by
// the provided database connection and logger.
func NewLoginAttemptRepository(db *DB, logger *logger.Logger) LoginAttemptRepository {
	logger.Debug().Msg("creating login attempt repository")
	return &loginAttemptRepository{
		db:     db,
		logger: logger,
	}
}

// RecordFailure bumps the failure counter for identifier, restarting the
// window when the previous one started before windowCutoff. The upsert is
// retried once on transient errors.
func (r *loginAttemptRepository) RecordFailure(ctx context.Context, identifier string, windowCutoff time.Time) (models.LoginAttempt, error) {
	log := logger.FromContext(ctx)

	attempt, err := r.recordFailureOnce(ctx, identifier, windowCutoff)
	if err != nil && r.db.Retryable(err) {
		log.Warn().Str("func", "*loginAttemptRepository.RecordFailure").Msg("retrying after transient error")
		attempt, err = r.recordFailureOnce(ctx, identifier, windowCutoff)
	}
	if err != nil {
		log.Err(err).Str("func", "*loginAttemptRepository.RecordFailure").Msg("error executing statement")
		return models.LoginAttempt{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return attempt, nil
}

func (r *loginAttemptRepository) recordFailureOnce(ctx context.Context, identifier string, windowCutoff time.Time) (models.LoginAttempt, error) {
	row := r.db.QueryRowContext(ctx, recordLoginFailure, identifier, windowCutoff)
	if err := row.Err(); err != nil {
		return models.LoginAttempt{}, err
	}

	var attempt models.LoginAttempt
	if err := row.Scan(&attempt.Identifier, &attempt.FailedCount, &attempt.WindowStartedAt); err != nil {
		return models.LoginAttempt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return attempt, nil
}

// GetAttempts returns the current counter for identifier. An identifier
// with no recorded failures yields a zero-count row, not an error.
func (r *loginAttemptRepository) GetAttempts(ctx context.Context, identifier string) (models.LoginAttempt, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getLoginAttempts, identifier)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*loginAttemptRepository.GetAttempts").Msg("error executing query")
		return models.LoginAttempt{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var attempt models.LoginAttempt
	if err := row.Scan(&attempt.Identifier, &attempt.FailedCount, &attempt.WindowStartedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LoginAttempt{Identifier: identifier}, nil
		}
		log.Err(err).Str("func", "*loginAttemptRepository.GetAttempts").Msg("error scanning row")
		return models.LoginAttempt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return attempt, nil
}

// ResetAttempts clears the counter after a successful authentication.
func (r *loginAttemptRepository) ResetAttempts(ctx context.Context, identifier string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, resetLoginAttempts, identifier); err != nil {
		log.Err(err).Str("func", "*loginAttemptRepository.ResetAttempts").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteAttemptsStartedBefore prunes stale counters. Used by the retention
// sweeper.
func (r *loginAttemptRepository) DeleteAttemptsStartedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAttemptsStartedBefore, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*loginAttemptRepository.DeleteAttemptsStartedBefore").Msg("error executing statement")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
