package service

import (
	"context"
	"testing"
	"time"

	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/mock"
	"github.com/mzotov/cliptide/internal/store"
	"github.com/mzotov/cliptide/internal/utils"
	"github.com/mzotov/cliptide/internal/validators"
	"github.com/mzotov/cliptide/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestMocks struct {
	users       *mock.MockUserRepository
	sessions    *mock.MockSessionRepository
	attempts    *mock.MockLoginAttemptRepository
	backupCodes *mock.MockBackupCodeRepository
	emailTokens *mock.MockEmailTokenRepository
	hasher      *mock.MockPasswordHasher
	totp        *mock.MockManager
	audit       *mock.MockAuditService
	mailer      *mock.MockMailer

	// event types recorded through the audit mock, in emission order
	recorded []models.EventType
}

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:      "test-sign-key",
		TokenIssuer:       "cliptide-auth",
		AccessTokenTTL:    15 * time.Minute,
		RefreshTokenTTL:   30 * 24 * time.Hour,
		LoginMaxAttempts:  5,
		LoginWindow:       15 * time.Minute,
		TwoFAMaxAttempts:  5,
		TwoFAChallengeTTL: 5 * time.Minute,
		BackupCodeCount:   8,
		PasswordMinLength: 8,
		EmailTokenTTL:     24 * time.Hour,
	}
}

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *authTestMocks) {
	t.Helper()

	m := &authTestMocks{
		users:       mock.NewMockUserRepository(ctrl),
		sessions:    mock.NewMockSessionRepository(ctrl),
		attempts:    mock.NewMockLoginAttemptRepository(ctrl),
		backupCodes: mock.NewMockBackupCodeRepository(ctrl),
		emailTokens: mock.NewMockEmailTokenRepository(ctrl),
		hasher:      mock.NewMockPasswordHasher(ctrl),
		totp:        mock.NewMockManager(ctrl),
		audit:       mock.NewMockAuditService(ctrl),
		mailer:      mock.NewMockMailer(ctrl),
	}

	// audit writes are fire-and-forget; the mock collects the emitted
	// event types so tests can assert on the exact sequence when the
	// accounting matters.
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ *int64, eventType models.EventType, _ map[string]any) {
			m.recorded = append(m.recorded, eventType)
		}).
		AnyTimes()

	storages := &store.Storages{
		UserRepository:          m.users,
		SessionRepository:       m.sessions,
		LoginAttemptRepository:  m.attempts,
		BackupCodeRepository:    m.backupCodes,
		EmailTokenRepository:    m.emailTokens,
		SecurityEventRepository: mock.NewMockSecurityEventRepository(ctrl),
	}

	svc := NewAuthService(AuthServiceDeps{
		Storages:  storages,
		Hasher:    m.hasher,
		TOTP:      m.totp,
		Audit:     m.audit,
		Mailer:    m.mailer,
		Validator: validators.NewCredentialsValidator(8),
	}, testAuthConfig(), logger.Nop()).(*authService)

	return svc, m
}

func testUser() models.User {
	return models.User{
		UserID:       42,
		Username:     "casper",
		Email:        "casper@example.com",
		PasswordHash: "$argon2id$stored-digest",
		Role:         models.RoleMember,
	}
}

// ── Register ────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.hasher.EXPECT().HashPassword("correct horse battery").Return("$argon2id$fresh", nil)
	m.users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "casper", u.Username)
			assert.Equal(t, "casper@example.com", u.Email)
			assert.Equal(t, "$argon2id$fresh", u.PasswordHash)
			assert.Equal(t, models.RoleMember, u.Role)
			u.UserID = 42
			return u, nil
		})
	m.emailTokens.EXPECT().InvalidateUserTokens(ctx, int64(42), models.PurposeVerifyEmail).Return(nil)
	m.emailTokens.EXPECT().CreateEmailToken(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tok models.EmailToken) (models.EmailToken, error) {
			assert.Equal(t, int64(42), tok.UserID)
			assert.NotEmpty(t, tok.TokenHash)
			return tok, nil
		})
	m.mailer.EXPECT().SendVerificationEmail(ctx, "casper@example.com", gomock.Any()).Return(nil)

	user, err := svc.Register(ctx, models.Credentials{
		Username: "casper",
		Email:    "Casper@Example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, "casper@example.com", user.Email)
}

func TestAuthService_Register_DuplicateCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.hasher.EXPECT().HashPassword(gomock.Any()).Return("$argon2id$fresh", nil)
	m.users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrDuplicateCredential)

	_, err := svc.Register(ctx, models.Credentials{
		Username: "casper",
		Email:    "casper@example.com",
		Password: "correct horse battery",
	})

	assert.ErrorIs(t, err, ErrCredentialTaken)
}

func TestAuthService_Register_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.Register(context.Background(), models.Credentials{
		Username: "casper",
		Email:    "not-an-email",
		Password: "correct horse battery",
	})

	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

// ── Login ───────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := testUser()

	m.attempts.EXPECT().GetAttempts(ctx, "casper@example.com").Return(models.LoginAttempt{}, nil)
	m.users.EXPECT().FindUserByEmail(ctx, "casper@example.com").Return(user, nil)
	m.hasher.EXPECT().VerifyPassword("secret-password", user.PasswordHash).Return(true, nil)
	m.attempts.EXPECT().ResetAttempts(ctx, "casper@example.com").Return(nil)
	m.hasher.EXPECT().NeedsRehash(user.PasswordHash).Return(false, nil)
	m.sessions.EXPECT().CreateSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) (models.Session, error) {
			assert.Equal(t, user.UserID, s.UserID)
			assert.NotEmpty(t, s.SessionID)
			assert.NotEmpty(t, s.RefreshHash)
			assert.False(t, s.TwoFAVerified)
			return s, nil
		})

	result, err := svc.Login(ctx, "Casper@Example.com", "secret-password", "10.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, result.Status)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, user.UserID, result.Account.UserID)

	// the issued access token round-trips through ParseToken
	token, err := svc.ParseToken(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, token.UserID)
	assert.Equal(t, user.Username, token.Username)
	assert.False(t, token.TwoFAVerified)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.attempts.EXPECT().GetAttempts(ctx, "ghost@example.com").Return(models.LoginAttempt{}, nil)
	m.users.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	// the dummy verification keeps unknown-email timing aligned with the
	// wrong-password path
	m.hasher.EXPECT().VerifyPassword("whatever", dummyPasswordHash).Return(false, nil)
	m.attempts.EXPECT().RecordFailure(ctx, "ghost@example.com", gomock.Any()).
		Return(models.LoginAttempt{Identifier: "ghost@example.com", FailedCount: 1}, nil)

	_, err := svc.Login(ctx, "ghost@example.com", "whatever", "10.0.0.1", "test-agent")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := testUser()

	m.attempts.EXPECT().GetAttempts(ctx, "casper@example.com").Return(models.LoginAttempt{}, nil)
	m.users.EXPECT().FindUserByEmail(ctx, "casper@example.com").Return(user, nil)
	m.hasher.EXPECT().VerifyPassword("wrong", user.PasswordHash).Return(false, nil)
	m.attempts.EXPECT().RecordFailure(ctx, "casper@example.com", gomock.Any()).
		Return(models.LoginAttempt{Identifier: "casper@example.com", FailedCount: 2}, nil)

	_, err := svc.Login(ctx, "casper@example.com", "wrong", "10.0.0.1", "test-agent")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.attempts.EXPECT().GetAttempts(ctx, "casper@example.com").Return(models.LoginAttempt{
		Identifier:      "casper@example.com",
		FailedCount:     5,
		WindowStartedAt: time.Now().Add(-time.Minute),
	}, nil)

	_, err := svc.Login(ctx, "casper@example.com", "secret-password", "10.0.0.1", "test-agent")

	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestAuthService_Login_LockoutEventAccounting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := testUser()

	// five wrong passwords exhaust the window, the sixth attempt is
	// rejected up front
	for i := 0; i < 5; i++ {
		attempt := models.LoginAttempt{Identifier: "casper@example.com", FailedCount: i}
		if i > 0 {
			attempt.WindowStartedAt = time.Now().Add(-time.Minute)
		}
		m.attempts.EXPECT().GetAttempts(ctx, "casper@example.com").Return(attempt, nil)
		m.users.EXPECT().FindUserByEmail(ctx, "casper@example.com").Return(user, nil)
		m.hasher.EXPECT().VerifyPassword("wrong", user.PasswordHash).Return(false, nil)
		m.attempts.EXPECT().RecordFailure(ctx, "casper@example.com", gomock.Any()).
			Return(models.LoginAttempt{Identifier: "casper@example.com", FailedCount: i + 1}, nil)

		_, err := svc.Login(ctx, "casper@example.com", "wrong", "10.0.0.1", "test-agent")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	m.attempts.EXPECT().GetAttempts(ctx, "casper@example.com").Return(models.LoginAttempt{
		Identifier:      "casper@example.com",
		FailedCount:     5,
		WindowStartedAt: time.Now().Add(-time.Minute),
	}, nil)

	_, err := svc.Login(ctx, "casper@example.com", "wrong", "10.0.0.1", "test-agent")
	require.ErrorIs(t, err, ErrRateLimited)

	// exactly one event per attempt: a failure per rejected password and
	// a single rate-limit event for the denial
	assert.Equal(t, []models.EventType{
		models.EventLoginFailed,
		models.EventLoginFailed,
		models.EventLoginFailed,
		models.EventLoginFailed,
		models.EventLoginFailed,
		models.EventLoginRateLimitExceeded,
	}, m.recorded)
}

func TestAuthService_Login_ExpiredWindowIsNotLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := testUser()

	// the counter is over budget but its window has already lapsed
	m.attempts.EXPECT().GetAttempts(ctx, "casper@example.com").Return(models.LoginAttempt{
		Identifier:      "casper@example.com",
		FailedCount:     7,
		WindowStartedAt: time.Now().Add(-time.Hour),
	}, nil)
	m.users.EXPECT().FindUserByEmail(ctx, "casper@example.com").Return(user, nil)
	m.hasher.EXPECT().VerifyPassword("secret-password", user.PasswordHash).Return(true, nil)
	m.attempts.EXPECT().ResetAttempts(ctx, "casper@example.com").Return(nil)
	m.hasher.EXPECT().NeedsRehash(user.PasswordHash).Return(false, nil)
	m.sessions.EXPECT().CreateSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) (models.Session, error) { return s, nil })

	result, err := svc.Login(ctx, "casper@example.com", "secret-password", "10.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, result.Status)
}

func TestAuthService_Login_TwoFAPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	secret := "JBSWY3DPEHPK3PXP"
	user := testUser()
	user.TwoFAEnabled = true
	user.TwoFASecret = &secret

	m.attempts.EXPECT().GetAttempts(ctx, "casper@example.com").Return(models.LoginAttempt{}, nil)
	m.users.EXPECT().FindUserByEmail(ctx, "casper@example.com").Return(user, nil)
	m.hasher.EXPECT().VerifyPassword("secret-password", user.PasswordHash).Return(true, nil)
	m.attempts.EXPECT().ResetAttempts(ctx, "casper@example.com").Return(nil)
	m.hasher.EXPECT().NeedsRehash(user.PasswordHash).Return(false, nil)

	result, err := svc.Login(ctx, "casper@example.com", "secret-password", "10.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending2FA, result.Status)
	assert.Empty(t, result.AccessToken)
	assert.Empty(t, result.RefreshToken)
	assert.Equal(t, user.UserID, result.Account.UserID)
	assert.Empty(t, result.Account.Email)
}

// ── VerifyTwoFactor ─────────────────────────────────────────────────────

func TestAuthService_VerifyTwoFactor_TOTPSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	secret := "JBSWY3DPEHPK3PXP"
	user := testUser()
	user.TwoFAEnabled = true
	user.TwoFASecret = &secret

	svc.challenges.open(user.UserID, "10.0.0.1", "test-agent")

	m.users.EXPECT().FindUserByID(ctx, user.UserID).Return(user, nil)
	m.totp.EXPECT().VerifyCode(secret, "123456", gomock.Any()).Return(true, int64(55), nil)
	m.users.EXPECT().AdvanceTOTPCounter(ctx, user.UserID, int64(55)).Return(nil)
	m.sessions.EXPECT().CreateSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) (models.Session, error) {
			assert.True(t, s.TwoFAVerified)
			return s, nil
		})

	result, err := svc.VerifyTwoFactor(ctx, user.UserID, "123456", "10.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, result.Status)

	token, err := svc.ParseToken(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.True(t, token.TwoFAVerified)
}

func TestAuthService_VerifyTwoFactor_NoChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.VerifyTwoFactor(context.Background(), 42, "123456", "10.0.0.1", "test-agent")

	assert.ErrorIs(t, err, ErrTwoFAChallengeExpired)
}

func TestAuthService_VerifyTwoFactor_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	secret := "JBSWY3DPEHPK3PXP"
	user := testUser()
	user.TwoFAEnabled = true
	user.TwoFASecret = &secret

	svc.challenges.open(user.UserID, "10.0.0.1", "test-agent")

	m.users.EXPECT().FindUserByID(ctx, user.UserID).Return(user, nil)
	m.totp.EXPECT().VerifyCode(secret, "000000", gomock.Any()).Return(false, int64(0), nil)
	m.backupCodes.EXPECT().ListUnusedBackupCodes(ctx, user.UserID).Return(nil, nil)

	_, err := svc.VerifyTwoFactor(ctx, user.UserID, "000000", "10.0.0.1", "test-agent")

	assert.ErrorIs(t, err, ErrInvalidTwoFactorCode)
}

func TestAuthService_VerifyTwoFactor_Lockout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	secret := "JBSWY3DPEHPK3PXP"
	user := testUser()
	user.TwoFAEnabled = true
	user.TwoFASecret = &secret

	svc.challenges.open(user.UserID, "10.0.0.1", "test-agent")

	m.users.EXPECT().FindUserByID(ctx, user.UserID).Return(user, nil).Times(5)
	m.totp.EXPECT().VerifyCode(secret, "000000", gomock.Any()).Return(false, int64(0), nil).Times(5)
	m.backupCodes.EXPECT().ListUnusedBackupCodes(ctx, user.UserID).Return(nil, nil).Times(5)

	for range 5 {
		_, err := svc.VerifyTwoFactor(ctx, user.UserID, "000000", "10.0.0.1", "test-agent")
		assert.ErrorIs(t, err, ErrInvalidTwoFactorCode)
	}

	// the sixth submission exceeds the attempt budget
	_, err := svc.VerifyTwoFactor(ctx, user.UserID, "000000", "10.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrTwoFALockout)

	// and the challenge is gone: the user is back to the password stage
	_, err = svc.VerifyTwoFactor(ctx, user.UserID, "000000", "10.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrTwoFAChallengeExpired)
}

func TestAuthService_VerifyTwoFactor_BackupCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	secret := "JBSWY3DPEHPK3PXP"
	user := testUser()
	user.TwoFAEnabled = true
	user.TwoFASecret = &secret

	svc.challenges.open(user.UserID, "10.0.0.1", "test-agent")

	m.users.EXPECT().FindUserByID(ctx, user.UserID).Return(user, nil)
	m.totp.EXPECT().VerifyCode(secret, "a1b2c3d4e5", gomock.Any()).Return(false, int64(0), nil)
	m.backupCodes.EXPECT().ListUnusedBackupCodes(ctx, user.UserID).Return([]models.BackupCode{
		{CodeID: 7, UserID: user.UserID, CodeHash: "$argon2id$code-digest"},
	}, nil)
	m.hasher.EXPECT().VerifyPassword("a1b2c3d4e5", "$argon2id$code-digest").Return(true, nil)
	m.backupCodes.EXPECT().ConsumeBackupCode(ctx, int64(7)).Return(nil)
	m.sessions.EXPECT().CreateSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Session) (models.Session, error) { return s, nil })

	result, err := svc.VerifyTwoFactor(ctx, user.UserID, "a1b2c3d4e5", "10.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, result.Status)
}

// ── Refresh ─────────────────────────────────────────────────────────────

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := testUser()

	refreshToken := composeRefreshToken("session-1", "old-secret")
	presentedHash := utils.HashToken("old-secret")

	session := models.Session{
		SessionID:   "session-1",
		UserID:      user.UserID,
		RefreshHash: presentedHash,
		IsValid:     true,
		CreatedAt:   time.Now().Add(-time.Hour),
	}

	m.sessions.EXPECT().FindSessionByRefreshHash(ctx, presentedHash).Return(session, nil)
	m.sessions.EXPECT().
		RotateRefreshHash(ctx, "session-1", presentedHash, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, current, newHash string) error {
			assert.NotEqual(t, current, newHash)
			return nil
		})
	m.users.EXPECT().FindUserByID(ctx, user.UserID).Return(user, nil)

	result, err := svc.Refresh(ctx, refreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.NotEqual(t, refreshToken, result.RefreshToken)

	// the new token stays bound to the same session
	sessionID, _, ok := splitRefreshToken(result.RefreshToken)
	require.True(t, ok)
	assert.Equal(t, "session-1", sessionID)
}

func TestAuthService_Refresh_ReplayInvalidatesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	refreshToken := composeRefreshToken("session-1", "rotated-out-secret")
	presentedHash := utils.HashToken("rotated-out-secret")

	session := models.Session{SessionID: "session-1", UserID: 42, IsValid: true}

	m.sessions.EXPECT().FindSessionByRefreshHash(ctx, presentedHash).
		Return(session, store.ErrRefreshReplayDetected)
	m.sessions.EXPECT().InvalidateSession(ctx, "session-1").Return(nil)

	_, err := svc.Refresh(ctx, refreshToken)

	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().FindSessionByRefreshHash(ctx, gomock.Any()).
		Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.Refresh(ctx, composeRefreshToken("session-1", "no-such-secret"))

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Refresh_MalformedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	for _, token := range []string{"", "no-separator", ".leading", "trailing."} {
		_, err := svc.Refresh(context.Background(), token)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, "token %q", token)
	}
}

func TestAuthService_Refresh_RevokedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	presentedHash := utils.HashToken("secret")
	session := models.Session{
		SessionID:   "session-1",
		UserID:      42,
		RefreshHash: presentedHash,
		IsValid:     false,
		CreatedAt:   time.Now(),
	}

	m.sessions.EXPECT().FindSessionByRefreshHash(ctx, presentedHash).Return(session, nil)

	_, err := svc.Refresh(ctx, composeRefreshToken("session-1", "secret"))

	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestAuthService_Refresh_ExpiredLineage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	presentedHash := utils.HashToken("secret")
	session := models.Session{
		SessionID:   "session-1",
		UserID:      42,
		RefreshHash: presentedHash,
		IsValid:     true,
		CreatedAt:   time.Now().Add(-31 * 24 * time.Hour),
	}

	m.sessions.EXPECT().FindSessionByRefreshHash(ctx, presentedHash).Return(session, nil)
	m.sessions.EXPECT().InvalidateSession(ctx, "session-1").Return(nil)

	_, err := svc.Refresh(ctx, composeRefreshToken("session-1", "secret"))

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Refresh_RotationConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	presentedHash := utils.HashToken("secret")
	session := models.Session{
		SessionID:   "session-1",
		UserID:      42,
		RefreshHash: presentedHash,
		IsValid:     true,
		CreatedAt:   time.Now(),
	}

	m.sessions.EXPECT().FindSessionByRefreshHash(ctx, presentedHash).Return(session, nil)
	m.sessions.EXPECT().RotateRefreshHash(ctx, "session-1", presentedHash, gomock.Any()).
		Return(store.ErrRotationConflict)

	_, err := svc.Refresh(ctx, composeRefreshToken("session-1", "secret"))

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Logout / sessions ───────────────────────────────────────────────────

func TestAuthService_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().FindSessionByID(ctx, "gone").Return(models.Session{}, store.ErrSessionNotFound)

	assert.NoError(t, svc.Logout(ctx, "gone"))
}

func TestAuthService_Logout_InvalidatesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().FindSessionByID(ctx, "session-1").
		Return(models.Session{SessionID: "session-1", UserID: 42, IsValid: true}, nil)
	m.sessions.EXPECT().InvalidateSession(ctx, "session-1").Return(nil)

	assert.NoError(t, svc.Logout(ctx, "session-1"))
}

func TestAuthService_ListSessions_FlagsCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	now := time.Now()
	m.sessions.EXPECT().ListUserSessions(ctx, int64(42)).Return([]models.Session{
		{SessionID: "session-1", UserID: 42, IP: "10.0.0.1", UserAgent: "a", CreatedAt: now},
		{SessionID: "session-2", UserID: 42, IP: "10.0.0.2", UserAgent: "b", CreatedAt: now},
	}, nil)

	infos, err := svc.ListSessions(ctx, 42, "session-2")

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.False(t, infos[0].Current)
	assert.True(t, infos[1].Current)
	assert.Equal(t, now.Format(time.RFC3339), infos[0].CreatedAt)
}

func TestAuthService_RevokeSession_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().FindSessionByID(ctx, "session-1").
		Return(models.Session{SessionID: "session-1", UserID: 99}, nil)

	err := svc.RevokeSession(ctx, 42, "session-1")

	assert.ErrorIs(t, err, ErrSessionNotOwned)
}

func TestAuthService_RevokeAllSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().InvalidateUserSessions(ctx, int64(42)).Return(int64(3), nil)

	assert.NoError(t, svc.RevokeAllSessions(ctx, 42))
}

func TestAuthService_RevokeAllSessions_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAuthService(t, ctrl)
	ctx := context.Background()

	m.sessions.EXPECT().InvalidateUserSessions(ctx, int64(42)).Return(int64(0), assert.AnError)

	assert.Error(t, svc.RevokeAllSessions(ctx, 42))
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
