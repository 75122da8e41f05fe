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

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. It owns the refresh-token lineage of every session:
// creation, compare-and-swap rotation, replay detection, and revocation.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func scanSession(row rowScanner) (models.Session, error) {
	var s models.Session
	err := row.Scan(
		&s.SessionID,
		&s.UserID,
		&s.RefreshHash,
		&s.PrevRefreshHash,
		&s.IsValid,
		&s.IP,
		&s.UserAgent,
		&s.TwoFAVerified,
		&s.CreatedAt,
		&s.RotatedAt,
	)
	return s, err
}

// CreateSession persists a new session row and returns it with the
// server-assigned creation timestamp.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession,
		session.SessionID, session.UserID, session.RefreshHash,
		session.IP, session.UserAgent, session.TwoFAVerified)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&session.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, err
	}

	session.IsValid = true
	return session, nil
}

// FindSessionByRefreshHash resolves a presented refresh token to its
// session. The lookup is two-staged:
//
//  1. Match against the current refresh_hash — the normal case.
//  2. Match against prev_refresh_hash — the token was already rotated out,
//     which is the replay signal: the call returns the matched session
//     together with [ErrRefreshReplayDetected] so the caller can
//     invalidate it.
//
// A token matching neither column yields [ErrSessionNotFound].
func (r *sessionRepository) FindSessionByRefreshHash(ctx context.Context, refreshHash string) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findSessionByRefreshHash, refreshHash)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByRefreshHash").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	session, err := scanSession(row)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByRefreshHash").Msg("error: scanning error")
		return models.Session{}, err
	}

	// Not the current token of any session; check the rotated-out lineage.
	row = r.db.QueryRowContext(ctx, findSessionByPrevRefreshHash, refreshHash)
	if err := row.Err(); err != nil {
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	session, err = scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, err
	}

	return session, ErrRefreshReplayDetected
}

// FindSessionByID retrieves a session row by its UUID.
func (r *sessionRepository) FindSessionByID(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findSessionByID, sessionID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByID").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSessionByID").Msg("error: scanning error")
		return models.Session{}, err
	}

	return session, nil
}

// RotateRefreshHash performs the single-UPDATE compare-and-swap described
// on [SessionRepository]. Zero affected rows means the expected current
// hash did not match — the session was revoked or a concurrent refresh won
// the race — and maps to [ErrRotationConflict].
func (r *sessionRepository) RotateRefreshHash(ctx context.Context, sessionID, currentHash, newHash string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, rotateSessionRefreshHash, sessionID, currentHash, newHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.RotateRefreshHash").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRotationConflict
	}

	return nil
}

// InvalidateSession revokes one session. Idempotent: revoking an unknown
// or already-invalid session is a no-op, not an error.
func (r *sessionRepository) InvalidateSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, invalidateSession, sessionID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.InvalidateSession").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// InvalidateUserSessions revokes every valid session of the account and
// returns how many were affected. Used by password change ("log out
// everywhere") and account deletion.
func (r *sessionRepository) InvalidateUserSessions(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, invalidateUserSessions, userID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.InvalidateUserSessions").Msg("error executing statement")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}

// ListUserSessions returns the account's valid sessions, newest first.
func (r *sessionRepository) ListUserSessions(ctx context.Context, userID int64) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserSessions, userID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ListUserSessions").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			log.Err(err).Str("func", "*sessionRepository.ListUserSessions").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

// DeleteSessionsCreatedBefore removes session rows older than cutoff.
// Called only by the retention sweep.
func (r *sessionRepository) DeleteSessionsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteSessionsCreatedBefore, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return res.RowsAffected()
}
