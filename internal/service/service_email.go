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
	"github.com/mzotov/cliptide/internal/utils"
	"github.com/mzotov/cliptide/internal/validators"
	"github.com/mzotov/cliptide/models"
)

// emailService is the concrete implementation of EmailService. The two
// request operations (ResendVerification, RequestPasswordReset) succeed
// for unknown addresses too, so neither can be used to probe for
// registered accounts.
type emailService struct {
	users       store.UserRepository
	sessions    store.SessionRepository
	emailTokens store.EmailTokenRepository
	hasher      crypto.PasswordHasher
	audit       AuditService
	mailer      mailer.Mailer
	validator   validators.Validator
	cfg         config.Auth
	logger      *logger.Logger
}

// NewEmailService constructs an EmailService over the given collaborators.
func NewEmailService(storages *store.Storages, hasher crypto.PasswordHasher, audit AuditService, mail mailer.Mailer, validator validators.Validator, cfg config.Auth, logger *logger.Logger) EmailService {
	return &emailService{
		users:       storages.UserRepository,
		sessions:    storages.SessionRepository,
		emailTokens: storages.EmailTokenRepository,
		hasher:      hasher,
		audit:       audit,
		mailer:      mail,
		validator:   validator,
		cfg:         cfg,
		logger:      logger,
	}
}

// VerifyEmail consumes a verification token and marks the address
// confirmed.
func (s *emailService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmailTokenInvalid
	}

	userID, err := s.emailTokens.ConsumeEmailToken(ctx, utils.HashToken(token), models.PurposeVerifyEmail)
	if err != nil {
		if errors.Is(err, store.ErrEmailTokenNotFound) {
			return ErrEmailTokenInvalid
		}
		return fmt.Errorf("error consuming verification token: %w", err)
	}

	if err := s.users.MarkEmailVerified(ctx, userID); err != nil {
		return fmt.Errorf("error marking email verified: %w", err)
	}

	s.audit.Record(ctx, &userID, models.EventEmailVerified, nil)

	return nil
}

// ResendVerification issues a fresh verification token for the address.
// Unknown and already-verified addresses return success without sending
// anything.
func (s *emailService) ResendVerification(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}
	if user.EmailVerified {
		return nil
	}

	token, err := issueEmailToken(ctx, s.emailTokens, user.UserID, models.PurposeVerifyEmail, s.cfg.EmailTokenTTL)
	if err != nil {
		return err
	}

	s.audit.Record(ctx, &user.UserID, models.EventEmailVerificationResent, nil)

	if err := s.mailer.SendVerificationEmail(ctx, user.Email, token); err != nil {
		log.Err(err).Str("func", "*emailService.ResendVerification").Msg("error sending verification email")
	}

	return nil
}

// RequestPasswordReset issues a reset token for the address. Unknown
// addresses return success without sending anything.
func (s *emailService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil
		}
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := issueEmailToken(ctx, s.emailTokens, user.UserID, models.PurposeResetPassword, s.cfg.EmailTokenTTL)
	if err != nil {
		return err
	}

	s.audit.Record(ctx, &user.UserID, models.EventPasswordResetRequested, nil)

	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, token); err != nil {
		log.Err(err).Str("func", "*emailService.RequestPasswordReset").Msg("error sending reset email")
	}

	return nil
}

// ConfirmPasswordReset consumes a reset token and installs the new
// password. Every session of the account is invalidated.
func (s *emailService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return ErrEmailTokenInvalid
	}
	if err := s.validator.Validate(ctx, models.Credentials{Password: newPassword}, validators.FieldPassword); err != nil {
		return err
	}

	userID, err := s.emailTokens.ConsumeEmailToken(ctx, utils.HashToken(token), models.PurposeResetPassword)
	if err != nil {
		if errors.Is(err, store.ErrEmailTokenNotFound) {
			return ErrEmailTokenInvalid
		}
		return fmt.Errorf("error consuming reset token: %w", err)
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
		log.Err(err).Str("func", "*emailService.ConfirmPasswordReset").Msg("error invalidating sessions")
	}

	s.audit.Record(ctx, &userID, models.EventPasswordResetCompleted, nil)
	s.audit.Record(ctx, &userID, models.EventSessionsInvalidated, map[string]any{
		"count":  invalidated,
		"reason": "password_reset",
	})

	return nil
}
