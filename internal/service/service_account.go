package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/crypto"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/mailer"
	"github.com/mzotov/cliptide/internal/store"
	"github.com/mzotov/cliptide/internal/validators"
	"github.com/mzotov/cliptide/models"
)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	users     store.UserRepository
	sessions  store.SessionRepository
	hasher    crypto.PasswordHasher
	audit     AuditService
	mailer    mailer.Mailer
	validator validators.Validator
	cfg       config.Auth
	logger    *logger.Logger
}

// NewAccountService constructs an AccountService over the given
// collaborators.
func NewAccountService(storages *store.Storages, hasher crypto.PasswordHasher, audit AuditService, mail mailer.Mailer, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AccountService {
	return &accountService{
		users:     storages.UserRepository,
		sessions:  storages.SessionRepository,
		hasher:    hasher,
		audit:     audit,
		mailer:    mail,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}

// ChangePassword installs a new password after verifying the current one.
// Every session of the account is invalidated: stolen refresh tokens die
// with the old password.
func (s *accountService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Credentials{Password: newPassword}, validators.FieldPassword); err != nil {
		return err
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}

	match, err := s.hasher.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		return ErrWrongPassword
	}

	newHash, err := s.hasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	invalidated, err := s.sessions.InvalidateUserSessions(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*accountService.ChangePassword").Msg("error invalidating sessions")
		return fmt.Errorf("error invalidating sessions: %w", err)
	}

	s.audit.Record(ctx, &userID, models.EventPasswordChanged, nil)
	s.audit.Record(ctx, &userID, models.EventSessionsInvalidated, map[string]any{
		"count":  invalidated,
		"reason": "password_changed",
	})

	return nil
}

// RequestDeletion soft-deletes the account after re-authenticating with
// the password. The row stays restorable until the retention sweep removes
// it; all sessions are invalidated immediately.
func (s *accountService) RequestDeletion(ctx context.Context, userID int64, password string) error {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}

	match, err := s.hasher.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		return ErrWrongPassword
	}

	if err := s.users.SoftDeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("error scheduling account deletion: %w", err)
	}
	if _, err := s.sessions.InvalidateUserSessions(ctx, userID); err != nil {
		log.Err(err).Str("func", "*accountService.RequestDeletion").Msg("error invalidating sessions")
	}

	s.audit.Record(ctx, &userID, models.EventAccountDeletionRequested, nil)

	if err := s.mailer.SendDeletionScheduledEmail(ctx, user.Email); err != nil {
		log.Err(err).Str("func", "*accountService.RequestDeletion").Msg("error sending deletion email")
	}

	return nil
}

// CancelDeletion restores a soft-deleted account. Returns
// ErrAccountNotDeleted when the account is not scheduled for deletion.
func (s *accountService) CancelDeletion(ctx context.Context, userID int64) error {
	user, err := s.users.FindUserByIDIncludingDeleted(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if user.DeletedAt == nil {
		return ErrAccountNotDeleted
	}

	if err := s.users.RestoreUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrAccountNotDeleted
		}
		return fmt.Errorf("error restoring account: %w", err)
	}

	s.audit.Record(ctx, &userID, models.EventAccountDeletionCancelled, nil)

	return nil
}
