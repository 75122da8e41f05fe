package store

import (
	"context"
	"fmt"

	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/models"
)

// backupCodeRepository is the PostgreSQL-backed implementation of
// [BackupCodeRepository].
type backupCodeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBackupCodeRepository constructs a [BackupCodeRepository] backed by the
// provided database connection and logger.
func NewBackupCodeRepository(db *DB, logger *logger.Logger) BackupCodeRepository {
	logger.Debug().Msg("creating backup code repository")
	return &backupCodeRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceBackupCodes atomically swaps the account's backup-code set:
// old codes (used or not) are removed and the new hashes inserted inside
// one transaction, so the account never observes a partial set.
func (r *backupCodeRepository) ReplaceBackupCodes(ctx context.Context, userID int64, codeHashes []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*backupCodeRepository.ReplaceBackupCodes").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, deleteBackupCodes, userID); err != nil {
		log.Err(err).Str("func", "*backupCodeRepository.ReplaceBackupCodes").Msg("error deleting old codes")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	for _, hash := range codeHashes {
		if _, err := tx.ExecContext(ctx, insertBackupCode, userID, hash); err != nil {
			log.Err(err).Str("func", "*backupCodeRepository.ReplaceBackupCodes").Msg("error inserting code")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ListUnusedBackupCodes returns the account's not-yet-consumed codes.
func (r *backupCodeRepository) ListUnusedBackupCodes(ctx context.Context, userID int64) ([]models.BackupCode, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUnusedBackupCodes, userID)
	if err != nil {
		log.Err(err).Str("func", "*backupCodeRepository.ListUnusedBackupCodes").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var codes []models.BackupCode
	for rows.Next() {
		var code models.BackupCode
		if err := rows.Scan(&code.CodeID, &code.UserID, &code.CodeHash, &code.Used, &code.UsedAt, &code.CreatedAt); err != nil {
			log.Err(err).Str("func", "*backupCodeRepository.ListUnusedBackupCodes").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return codes, nil
}

// ConsumeBackupCode marks one code used. The "AND NOT used" guard makes
// consumption single-winner under concurrency; a second consumer gets
// [ErrBackupCodeUsed].
func (r *backupCodeRepository) ConsumeBackupCode(ctx context.Context, codeID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, consumeBackupCode, codeID)
	if err != nil {
		log.Err(err).Str("func", "*backupCodeRepository.ConsumeBackupCode").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBackupCodeUsed
	}

	return nil
}

// DeleteBackupCodes removes the whole code set of the account.
func (r *backupCodeRepository) DeleteBackupCodes(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteBackupCodes, userID); err != nil {
		log.Err(err).Str("func", "*backupCodeRepository.DeleteBackupCodes").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
