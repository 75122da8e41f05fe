package store

import (
	"context"
	"fmt"

	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/logger"
)

// Storages bundles every repository of the service over one shared
// PostgreSQL connection pool.
type Storages struct {
	UserRepository          UserRepository
	SessionRepository       SessionRepository
	SecurityEventRepository SecurityEventRepository
	BackupCodeRepository    BackupCodeRepository
	LoginAttemptRepository  LoginAttemptRepository
	EmailTokenRepository    EmailTokenRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:          NewUserRepository(db, log),
		SessionRepository:       NewSessionRepository(db, log),
		SecurityEventRepository: NewSecurityEventRepository(db, log),
		BackupCodeRepository:    NewBackupCodeRepository(db, log),
		LoginAttemptRepository:  NewLoginAttemptRepository(db, log),
		EmailTokenRepository:    NewEmailTokenRepository(db, log),
		db:                      db,
	}, nil
}

// Close releases the shared database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
