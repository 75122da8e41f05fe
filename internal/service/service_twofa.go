// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/crypto"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/mailer"
	"github.com/mzotov/cliptide/internal/store"
	"github.com/mzotov/cliptide/internal/totp"
	"github.com/mzotov/cliptide/models"
)

const backupCodeBytes = 5 // 10 hex characters per code

// twoFAService is the concrete implementation of TwoFAService.
type twoFAService struct {
	users       store.UserRepository
	backupCodes store.BackupCodeRepository
	hasher      crypto.PasswordHasher
	totp        totp.Manager
	audit       AuditService
	mailer      mailer.Mailer
	cfg         config.Auth
	logger      *logger.Logger
}

// NewTwoFAService constructs a TwoFAService over the given collaborators.
func NewTwoFAService(storages *store.Storages, hasher crypto.PasswordHasher, totpManager totp.Manager, audit AuditService, mail mailer.Mailer, cfg config.Auth, logger *logger.Logger) TwoFAService {
	return &twoFAService{
		users:       storages.UserRepository,
		backupCodes: storages.BackupCodeRepository,
		hasher:      hasher,
		totp:        totpManager,
		audit:       audit,
		mailer:      mail,
		cfg:         cfg,
		logger:      logger,
	}
}

// InitiateSetup generates a fresh TOTP secret and a new backup-code set.
//
// The secret stays pending (2FA remains off) until a code is confirmed.
// Re-initiating replaces both the pending secret and the codes. The
// plaintext codes in the returned value are shown to the user exactly once
// and are not recoverable afterwards.
func (s *twoFAService) InitiateSetup(ctx context.Context, userID int64) (models.TwoFASetup, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TwoFASetup{}, ErrAccountNotFound
		}
		return models.TwoFASetup{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if user.TwoFAEnabled {
		return models.TwoFASetup{}, ErrTwoFAAlreadyEnabled
	}

	secret, err := s.totp.GenerateSecret()
	if err != nil {
		return models.TwoFASetup{}, fmt.Errorf("secret generation failed: %w", err)
	}
	if err := s.users.SetPendingTwoFASecret(ctx, userID, secret); err != nil {
		return models.TwoFASetup{}, fmt.Errorf("error storing pending secret: %w", err)
	}

	plaintext, hashes, err := s.generateBackupCodes()
	if err != nil {
		return models.TwoFASetup{}, err
	}
	if err := s.backupCodes.ReplaceBackupCodes(ctx, userID, hashes); err != nil {
		return models.TwoFASetup{}, fmt.Errorf("error storing backup codes: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("two-factor setup initiated")

	return models.TwoFASetup{
		Secret:      secret,
		OtpAuthURI:  s.totp.ProvisionURI(secret, user.Email),
		BackupCodes: plaintext,
	}, nil
}

// ConfirmSetup verifies one code against the pending secret and turns 2FA
// on. The verified counter is recorded so the same code cannot also be
// used for the first 2FA login.
func (s *twoFAService) ConfirmSetup(ctx context.Context, userID int64, code string) error {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if user.TwoFAEnabled {
		return ErrTwoFAAlreadyEnabled
	}
	if user.TwoFASecret == nil {
		return ErrTwoFASetupNotInitiated
	}

	matched, counter, err := s.totp.VerifyCode(*user.TwoFASecret, code, time.Now())
	if err != nil {
		return fmt.Errorf("totp verification failed: %w", err)
	}
	if !matched {
		return ErrInvalidTwoFactorCode
	}

	if err := s.users.AdvanceTOTPCounter(ctx, userID, counter); err != nil && !errors.Is(err, store.ErrTOTPCounterReplayed) {
		return fmt.Errorf("totp counter advance failed: %w", err)
	}

	if err := s.users.EnableTwoFA(ctx, userID); err != nil {
		return fmt.Errorf("error enabling two-factor authentication: %w", err)
	}

	s.audit.Record(ctx, &userID, models.EventTwoFAEnabled, nil)

	if err := s.mailer.SendTwoFAEnabledEmail(ctx, user.Email); err != nil {
		log.Err(err).Str("func", "*twoFAService.ConfirmSetup").Msg("error sending 2fa notification email")
	}

	return nil
}

// Disable turns 2FA off after re-authenticating with the password and a
// current second factor (TOTP code or backup code). The secret, counter,
// and remaining backup codes are all discarded.
func (s *twoFAService) Disable(ctx context.Context, userID int64, password, code string) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if !user.TwoFAEnabled || user.TwoFASecret == nil {
		return ErrTwoFANotEnabled
	}

	match, err := s.hasher.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		return ErrWrongPassword
	}

	verified, _, err := verifySecondFactor(ctx, secondFactorDeps{
		users:       s.users,
		backupCodes: s.backupCodes,
		hasher:      s.hasher,
		totp:        s.totp,
	}, user, code)
	if err != nil {
		return err
	}
	if !verified {
		return ErrInvalidTwoFactorCode
	}

	if err := s.users.DisableTwoFA(ctx, userID); err != nil {
		return fmt.Errorf("error disabling two-factor authentication: %w", err)
	}
	if err := s.backupCodes.DeleteBackupCodes(ctx, userID); err != nil {
		return fmt.Errorf("error deleting backup codes: %w", err)
	}

	s.audit.Record(ctx, &userID, models.EventTwoFADisabled, nil)

	return nil
}

// generateBackupCodes mints the configured number of codes and their
// argon2id digests. Only the digests are stored.
func (s *twoFAService) generateBackupCodes() (plaintext, hashes []string, err error) {
	count := s.cfg.BackupCodeCount

	plaintext = make([]string, 0, count)
	hashes = make([]string, 0, count)
	for i := 0; i < count; i++ {
		raw := make([]byte, backupCodeBytes)
		if _, err := io.ReadFull(rand.Reader, raw); err != nil {
			return nil, nil, fmt.Errorf("error generating backup code: %w", err)
		}
		code := hex.EncodeToString(raw)

		hash, err := s.hasher.HashPassword(code)
		if err != nil {
			return nil, nil, fmt.Errorf("error hashing backup code: %w", err)
		}

		plaintext = append(plaintext, code)
		hashes = append(hashes, hash)
	}

	return plaintext, hashes, nil
}

// secondFactorDeps carries the collaborators of verifySecondFactor.
type secondFactorDeps struct {
	users       store.UserRepository
	backupCodes store.BackupCodeRepository
	hasher      crypto.PasswordHasher
	totp        totp.Manager
}

// verifySecondFactor checks code first as a TOTP code, then as a backup
// code. Reports whether the code was accepted and whether a backup code
// was consumed. Shared by the login gate and the disable flow.
func verifySecondFactor(ctx context.Context, deps secondFactorDeps, user models.User, code string) (verified, usedBackupCode bool, err error) {
	matched, counter, err := deps.totp.VerifyCode(*user.TwoFASecret, code, time.Now())
	if err != nil {
		return false, false, fmt.Errorf("totp verification failed: %w", err)
	}
	if matched {
		// The counter advance is the replay gate: a code already accepted
		// at this time step loses the compare-and-swap.
		if err := deps.users.AdvanceTOTPCounter(ctx, user.UserID, counter); err != nil {
			if errors.Is(err, store.ErrTOTPCounterReplayed) {
				return false, false, nil
			}
			return false, false, fmt.Errorf("totp counter advance failed: %w", err)
		}
		return true, false, nil
	}

	codes, err := deps.backupCodes.ListUnusedBackupCodes(ctx, user.UserID)
	if err != nil {
		return false, false, fmt.Errorf("backup code listing failed: %w", err)
	}

	for _, backup := range codes {
		match, err := deps.hasher.VerifyPassword(code, backup.CodeHash)
		if err != nil || !match {
			continue
		}
		if err := deps.backupCodes.ConsumeBackupCode(ctx, backup.CodeID); err != nil {
			if errors.Is(err, store.ErrBackupCodeUsed) {
				return false, false, nil
			}
			return false, false, fmt.Errorf("backup code consumption failed: %w", err)
		}
		return true, true, nil
	}

	return false, false, nil
}
