// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/crypto"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/mailer"
	"github.com/mzotov/cliptide/internal/store"
	"github.com/mzotov/cliptide/internal/totp"
	"github.com/mzotov/cliptide/internal/utils"
	"github.com/mzotov/cliptide/internal/validators"
	"github.com/mzotov/cliptide/models"
)

// dummyPasswordHash is verified against when the login identifier is
// unknown, so that unknown-email and wrong-password attempts cost the same
// wall time. The digest matches no password; its verification result is
// discarded.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// authService is the concrete implementation of AuthService. It owns the
// full session lifecycle: password verification, the two-factor gate,
// server-side sessions with rotating refresh tokens, and access-token
// issuance.
type authService struct {
	users       store.UserRepository
	sessions    store.SessionRepository
	attempts    store.LoginAttemptRepository
	backupCodes store.BackupCodeRepository
	emailTokens store.EmailTokenRepository

	challenges *challengeRegistry
	hasher     crypto.PasswordHasher
	totp       totp.Manager
	audit      AuditService
	mailer     mailer.Mailer
	validator  validators.Validator
	uuid       *utils.UUIDGenerator

	cfg    config.Auth
	logger *logger.Logger
}

// AuthServiceDeps bundles the collaborators of NewAuthService. All fields
// are required.
type AuthServiceDeps struct {
	Storages  *store.Storages
	Hasher    crypto.PasswordHasher
	TOTP      totp.Manager
	Audit     AuditService
	Mailer    mailer.Mailer
	Validator validators.Validator
}

// NewAuthService constructs an AuthService wired to the given
// collaborators and populated with policy parameters from cfg.
//
// The returned service is safe for concurrent use; all state besides the
// pending-challenge registry is read-only after construction.
func NewAuthService(deps AuthServiceDeps, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		users:       deps.Storages.UserRepository,
		sessions:    deps.Storages.SessionRepository,
		attempts:    deps.Storages.LoginAttemptRepository,
		backupCodes: deps.Storages.BackupCodeRepository,
		emailTokens: deps.Storages.EmailTokenRepository,
		challenges:  newChallengeRegistry(cfg.TwoFAChallengeTTL, cfg.TwoFAMaxAttempts),
		hasher:      deps.Hasher,
		totp:        deps.TOTP,
		audit:       deps.Audit,
		mailer:      deps.Mailer,
		validator:   deps.Validator,
		uuid:        utils.NewUUIDGenerator(),
		cfg:         cfg,
		logger:      logger,
	}
}

// Register creates a new member account.
//
// The password is argon2id-hashed before persistence. On success a
// verification token is issued and mailed; mail failures are logged, never
// fatal.
//
// Returns the persisted user or:
//   - a validators sentinel if the input violates the credential policy.
//   - ErrCredentialTaken if the username or email is already in use.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	creds.Username = strings.TrimSpace(creds.Username)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Msg("invalid registration data provided")
		return models.User{}, err
	}

	passwordHash, err := a.hasher.HashPassword(creds.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Username:     creds.Username,
		Email:        creds.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleMember,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateCredential) {
			return models.User{}, ErrCredentialTaken
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.audit.Record(ctx, &user.UserID, models.EventUserRegistered, map[string]any{
		"username": user.Username,
	})

	token, err := issueEmailToken(ctx, a.emailTokens, user.UserID, models.PurposeVerifyEmail, a.cfg.EmailTokenTTL)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error issuing verification token")
		return user, nil
	}
	if err := a.mailer.SendVerificationEmail(ctx, user.Email, token); err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error sending verification email")
	}

	return user, nil
}

// Login authenticates an account by email and password.
//
// Unknown identifiers and wrong passwords are indistinguishable to the
// caller: both count against the identifier's rate-limit window and both
// return ErrInvalidCredentials. For accounts with two-factor enabled the
// password stage opens a pending challenge and no tokens are issued.
func (a *authService) Login(ctx context.Context, email, password, ip, userAgent string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	identifier := normalizeEmail(email)

	limited, err := a.rateLimited(ctx, identifier)
	if err != nil {
		return models.LoginResult{}, err
	}
	if limited {
		a.audit.Record(ctx, nil, models.EventLoginRateLimitExceeded, map[string]any{
			"identifier": identifier,
			"ip":         ip,
		})
		return models.LoginResult{}, ErrRateLimited
	}

	user, err := a.users.FindUserByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// Equalize timing with the known-account path.
			_, _ = a.hasher.VerifyPassword(password, dummyPasswordHash)
			return models.LoginResult{}, a.loginFailed(ctx, identifier, nil, ip)
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.LoginResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	match, err := a.hasher.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("password verification failed")
		return models.LoginResult{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		return models.LoginResult{}, a.loginFailed(ctx, identifier, &user.UserID, ip)
	}

	if err := a.attempts.ResetAttempts(ctx, identifier); err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error resetting login attempts")
	}

	a.maybeRehash(ctx, user, password)

	if user.TwoFAEnabled {
		a.challenges.open(user.UserID, ip, userAgent)
		a.audit.Record(ctx, &user.UserID, models.EventTwoFARequired, map[string]any{"ip": ip})
		return models.LoginResult{
			Status:  models.StatusPending2FA,
			Account: models.AccountSummary{UserID: user.UserID},
		}, nil
	}

	result, err := a.openSession(ctx, user, ip, userAgent, false)
	if err != nil {
		return models.LoginResult{}, err
	}

	a.audit.Record(ctx, &user.UserID, models.EventUserLogin, map[string]any{
		"ip":         ip,
		"user_agent": userAgent,
	})

	return result, nil
}

// VerifyTwoFactor answers the pending challenge opened by Login.
//
// The code may be a TOTP code or a backup code; a TOTP code is accepted at
// most once per time step. Every submission charges the challenge's
// attempt budget; exhausting it removes the challenge and the user must
// pass the password stage again.
func (a *authService) VerifyTwoFactor(ctx context.Context, userID int64, code, ip, userAgent string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	_, ok, locked := a.challenges.take(userID)
	if locked {
		a.audit.Record(ctx, &userID, models.EventTwoFALockout, map[string]any{"ip": ip})
		return models.LoginResult{}, ErrTwoFALockout
	}
	if !ok {
		return models.LoginResult{}, ErrTwoFAChallengeExpired
	}

	user, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.LoginResult{}, ErrTwoFAChallengeExpired
		}
		return models.LoginResult{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if !user.TwoFAEnabled || user.TwoFASecret == nil {
		return models.LoginResult{}, ErrTwoFANotEnabled
	}

	verified, usedBackupCode, err := verifySecondFactor(ctx, secondFactorDeps{
		users:       a.users,
		backupCodes: a.backupCodes,
		hasher:      a.hasher,
		totp:        a.totp,
	}, user, code)
	if err != nil {
		return models.LoginResult{}, err
	}
	if !verified {
		a.audit.Record(ctx, &userID, models.EventTwoFAVerificationFailed, map[string]any{"ip": ip})
		return models.LoginResult{}, ErrInvalidTwoFactorCode
	}

	a.challenges.resolve(userID)

	if usedBackupCode {
		a.audit.Record(ctx, &userID, models.EventBackupCodeUsed, map[string]any{"ip": ip})
	}
	a.audit.Record(ctx, &userID, models.EventTwoFAVerified, map[string]any{"ip": ip})

	result, err := a.openSession(ctx, user, ip, userAgent, true)
	if err != nil {
		return models.LoginResult{}, err
	}

	a.audit.Record(ctx, &userID, models.EventUserLogin, map[string]any{
		"ip":         ip,
		"user_agent": userAgent,
	})

	log.Info().Int64("user_id", userID).Msg("two-factor login completed")
	return result, nil
}

// Refresh rotates the presented refresh token.
//
// Exactly one of three things happens:
//   - the token matches the session's current digest: it is rotated and a
//     new pair is issued;
//   - the token matches a previous digest: a replay is recorded, the whole
//     session is invalidated, and ErrSessionRevoked is returned;
//   - the token matches nothing: ErrTokenIsExpiredOrInvalid.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.RefreshResult, error) {
	log := logger.FromContext(ctx)

	sessionID, secret, ok := splitRefreshToken(refreshToken)
	if !ok {
		return models.RefreshResult{}, ErrTokenIsExpiredOrInvalid
	}

	presentedHash := utils.HashToken(secret)

	session, err := a.sessions.FindSessionByRefreshHash(ctx, presentedHash)
	switch {
	case errors.Is(err, store.ErrRefreshReplayDetected):
		return models.RefreshResult{}, a.refreshReplayed(ctx, session)
	case errors.Is(err, store.ErrSessionNotFound):
		return models.RefreshResult{}, ErrTokenIsExpiredOrInvalid
	case err != nil:
		log.Err(err).Str("func", "*authService.Refresh").Msg("session lookup failed")
		return models.RefreshResult{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.SessionID != sessionID || !session.IsValid {
		return models.RefreshResult{}, ErrSessionRevoked
	}

	if time.Since(session.CreatedAt) > a.cfg.RefreshTokenTTL {
		if err := a.sessions.InvalidateSession(ctx, session.SessionID); err != nil {
			log.Err(err).Str("func", "*authService.Refresh").Msg("error invalidating expired session")
		}
		return models.RefreshResult{}, ErrTokenIsExpiredOrInvalid
	}

	newSecret, err := generateOpaqueSecret()
	if err != nil {
		return models.RefreshResult{}, err
	}

	err = a.sessions.RotateRefreshHash(ctx, session.SessionID, presentedHash, utils.HashToken(newSecret))
	if err != nil {
		if errors.Is(err, store.ErrRotationConflict) {
			// Lost the race to a concurrent refresh with the same token.
			return models.RefreshResult{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("func", "*authService.Refresh").Msg("refresh rotation failed")
		return models.RefreshResult{}, fmt.Errorf("refresh rotation failed: %w", err)
	}

	user, err := a.users.FindUserByID(ctx, session.UserID)
	if err != nil {
		return models.RefreshResult{}, ErrSessionRevoked
	}

	accessToken, err := a.issueAccessToken(user, session.SessionID, session.TwoFAVerified)
	if err != nil {
		return models.RefreshResult{}, err
	}

	a.audit.Record(ctx, &session.UserID, models.EventTokenRefreshed, map[string]any{
		"session_id": session.SessionID,
	})

	return models.RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: composeRefreshToken(session.SessionID, newSecret),
	}, nil
}

// Logout invalidates the session. Unknown sessions are treated as already
// logged out.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	session, err := a.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("session lookup failed: %w", err)
	}

	if err := a.sessions.InvalidateSession(ctx, sessionID); err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("error invalidating session")
		return fmt.Errorf("error invalidating session: %w", err)
	}

	a.audit.Record(ctx, &session.UserID, models.EventUserLogout, map[string]any{
		"session_id": sessionID,
	})

	return nil
}

// ParseToken validates and parses a raw access token string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ListSessions returns the account's valid sessions, most recent first.
func (a *authService) ListSessions(ctx context.Context, userID int64, currentSessionID string) ([]models.SessionInfo, error) {
	sessions, err := a.sessions.ListUserSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("session listing failed: %w", err)
	}

	infos := make([]models.SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, models.SessionInfo{
			SessionID: s.SessionID,
			IP:        s.IP,
			UserAgent: s.UserAgent,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
			Current:   s.SessionID == currentSessionID,
		})
	}

	return infos, nil
}

// RevokeSession invalidates one session after checking ownership.
func (a *authService) RevokeSession(ctx context.Context, userID int64, sessionID string) error {
	session, err := a.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("session lookup failed: %w", err)
	}
	if session.UserID != userID {
		return ErrSessionNotOwned
	}

	if err := a.sessions.InvalidateSession(ctx, sessionID); err != nil {
		return fmt.Errorf("error invalidating session: %w", err)
	}

	a.audit.Record(ctx, &userID, models.EventSessionsInvalidated, map[string]any{
		"session_id": sessionID,
		"reason":     "revoked_by_user",
	})

	return nil
}

// RevokeAllSessions invalidates every session of the account at once.
func (a *authService) RevokeAllSessions(ctx context.Context, userID int64) error {
	count, err := a.sessions.InvalidateUserSessions(ctx, userID)
	if err != nil {
		return fmt.Errorf("error invalidating sessions: %w", err)
	}

	a.audit.Record(ctx, &userID, models.EventSessionsInvalidated, map[string]any{
		"count":  count,
		"reason": "logout_everywhere",
	})

	return nil
}

// rateLimited reports whether the identifier exhausted its failed-login
// budget inside the current window.
func (a *authService) rateLimited(ctx context.Context, identifier string) (bool, error) {
	attempt, err := a.attempts.GetAttempts(ctx, identifier)
	if err != nil {
		return false, fmt.Errorf("error reading login attempts: %w", err)
	}

	windowActive := time.Since(attempt.WindowStartedAt) < a.cfg.LoginWindow
	return windowActive && attempt.FailedCount >= a.cfg.LoginMaxAttempts, nil
}

// loginFailed records one failed attempt and returns the uniform
// credential error.
func (a *authService) loginFailed(ctx context.Context, identifier string, userID *int64, ip string) error {
	log := logger.FromContext(ctx)

	if _, err := a.attempts.RecordFailure(ctx, identifier, time.Now().Add(-a.cfg.LoginWindow)); err != nil {
		log.Err(err).Str("func", "*authService.loginFailed").Msg("error recording login failure")
	}

	// Crossing the threshold is not audited here: the next attempt is
	// rejected up front in Login, and that denial records the
	// rate-limit event.
	a.audit.Record(ctx, userID, models.EventLoginFailed, map[string]any{
		"identifier": identifier,
		"ip":         ip,
	})

	return ErrInvalidCredentials
}

// maybeRehash upgrades the stored digest in place after a successful
// verification when the hashing parameters have been strengthened.
func (a *authService) maybeRehash(ctx context.Context, user models.User, password string) {
	log := logger.FromContext(ctx)

	needs, err := a.hasher.NeedsRehash(user.PasswordHash)
	if err != nil || !needs {
		return
	}

	newHash, err := a.hasher.HashPassword(password)
	if err != nil {
		return
	}
	if err := a.users.UpdatePassword(ctx, user.UserID, newHash); err != nil {
		log.Err(err).Str("func", "*authService.maybeRehash").Msg("error upgrading password hash")
	}
}

// openSession creates a server-side session and issues the token pair.
func (a *authService) openSession(ctx context.Context, user models.User, ip, userAgent string, twoFAVerified bool) (models.LoginResult, error) {
	secret, err := generateOpaqueSecret()
	if err != nil {
		return models.LoginResult{}, err
	}

	sessionID := a.uuid.Generate()
	_, err = a.sessions.CreateSession(ctx, models.Session{
		SessionID:     sessionID,
		UserID:        user.UserID,
		RefreshHash:   utils.HashToken(secret),
		IP:            ip,
		UserAgent:     userAgent,
		TwoFAVerified: twoFAVerified,
	})
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("session creation failed: %w", err)
	}

	accessToken, err := a.issueAccessToken(user, sessionID, twoFAVerified)
	if err != nil {
		return models.LoginResult{}, err
	}

	return models.LoginResult{
		Status:       models.StatusSuccess,
		AccessToken:  accessToken,
		RefreshToken: composeRefreshToken(sessionID, secret),
		Account:      user.Summary(),
	}, nil
}

func (a *authService) issueAccessToken(user models.User, sessionID string, twoFAVerified bool) (string, error) {
	token, err := utils.GenerateAccessToken(utils.AccessTokenParams{
		Issuer:        a.cfg.TokenIssuer,
		User:          user,
		SessionID:     sessionID,
		TwoFAVerified: twoFAVerified,
		TokenDuration: a.cfg.AccessTokenTTL,
		SignKey:       a.cfg.TokenSignKey,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token.SignedString, nil
}

// refreshReplayed handles the presentation of an already-rotated token:
// the whole session is invalidated because the lineage can no longer be
// trusted.
func (a *authService) refreshReplayed(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if err := a.sessions.InvalidateSession(ctx, session.SessionID); err != nil {
		log.Err(err).Str("func", "*authService.refreshReplayed").Msg("error invalidating replayed session")
	}

	a.audit.Record(ctx, &session.UserID, models.EventTokenReplayDetected, map[string]any{
		"session_id": session.SessionID,
	})

	return ErrSessionRevoked
}

// composeRefreshToken joins the session id and the opaque secret into the
// client-visible refresh token: "<session uuid>.<secret>".
func composeRefreshToken(sessionID, secret string) string {
	return sessionID + "." + secret
}

// splitRefreshToken is the inverse of composeRefreshToken. Neither part
// can contain a dot, so a plain two-way split suffices.
func splitRefreshToken(token string) (sessionID, secret string, ok bool) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
