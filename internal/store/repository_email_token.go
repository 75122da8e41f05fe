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

// emailTokenRepository is the PostgreSQL-backed implementation of
// [EmailTokenRepository]. Only digests of the mailed tokens are stored.
type emailTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmailTokenRepository constructs an [EmailTokenRepository] backed by the
// provided database connection and logger.
func NewEmailTokenRepository(db *DB, logger *logger.Logger) EmailTokenRepository {
	logger.Debug().Msg("creating email token repository")
	return &emailTokenRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEmailToken records a new verification or reset token digest.
func (r *emailTokenRepository) CreateEmailToken(ctx context.Context, token models.EmailToken) (models.EmailToken, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEmailToken, token.UserID, token.Purpose, token.TokenHash, token.ExpiresAt)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*emailTokenRepository.CreateEmailToken").Msg("error executing query")
		return models.EmailToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&token.TokenID, &token.CreatedAt); err != nil {
		log.Err(err).Str("func", "*emailTokenRepository.CreateEmailToken").Msg("error scanning row")
		return models.EmailToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// ConsumeEmailToken marks the token used and returns the owning user id.
// Unknown, expired, and already-used tokens are indistinguishable to the
// caller: all map to [ErrEmailTokenNotFound].
func (r *emailTokenRepository) ConsumeEmailToken(ctx context.Context, tokenHash string, purpose models.TokenPurpose) (int64, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, consumeEmailToken, tokenHash, purpose)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*emailTokenRepository.ConsumeEmailToken").Msg("error executing query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var userID int64
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrEmailTokenNotFound
		}
		log.Err(err).Str("func", "*emailTokenRepository.ConsumeEmailToken").Msg("error scanning row")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return userID, nil
}

// InvalidateUserTokens voids every outstanding token of the given purpose.
// Called before issuing a replacement so only the latest mail is usable.
func (r *emailTokenRepository) InvalidateUserTokens(ctx context.Context, userID int64, purpose models.TokenPurpose) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, invalidateUserEmailTokens, userID, purpose); err != nil {
		log.Err(err).Str("func", "*emailTokenRepository.InvalidateUserTokens").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteTokensExpiredBefore prunes long-expired tokens. Used by the
// retention sweeper.
func (r *emailTokenRepository) DeleteTokensExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteTokensExpiredBefore, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*emailTokenRepository.DeleteTokensExpiredBefore").Msg("error executing statement")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
