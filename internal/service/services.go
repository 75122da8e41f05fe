package service

import (
	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/crypto"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/mailer"
	"github.com/mzotov/cliptide/internal/store"
	"github.com/mzotov/cliptide/internal/totp"
	"github.com/mzotov/cliptide/internal/validators"
)

// Services bundles every service of the application.
type Services struct {
	AuthService    AuthService
	TwoFAService   TwoFAService
	AccountService AccountService
	EmailService   EmailService
	AuditService   AuditService
}

// NewServices wires the full service graph over the given storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()
	totpManager := totp.NewManager(cfg.Auth.TokenIssuer)
	validator := validators.NewCredentialsValidator(cfg.Auth.PasswordMinLength)
	mail := mailer.New(cfg.Mailer, logger)
	audit := NewAuditService(storages.SecurityEventRepository, logger)

	return &Services{
		AuthService: NewAuthService(AuthServiceDeps{
			Storages:  storages,
			Hasher:    hasher,
			TOTP:      totpManager,
			Audit:     audit,
			Mailer:    mail,
			Validator: validator,
		}, cfg.Auth, logger),
		TwoFAService:   NewTwoFAService(storages, hasher, totpManager, audit, mail, cfg.Auth, logger),
		AccountService: NewAccountService(storages, hasher, audit, mail, validator, cfg.Auth, logger),
		EmailService:   NewEmailService(storages, hasher, audit, mail, validator, cfg.Auth, logger),
		AuditService:   audit,
	}
}
