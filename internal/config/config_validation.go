// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills every
// unset policy field with its named default.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	cfg.applyDefaults()

	if cfg.Auth.LoginMaxAttempts < 1 || cfg.Auth.TwoFAMaxAttempts < 1 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = DefaultRefreshTokenTTL
	}
	if cfg.Auth.LoginMaxAttempts == 0 {
		cfg.Auth.LoginMaxAttempts = DefaultLoginMaxAttempts
	}
	if cfg.Auth.LoginWindow == 0 {
		cfg.Auth.LoginWindow = DefaultLoginWindow
	}
	if cfg.Auth.TwoFAMaxAttempts == 0 {
		cfg.Auth.TwoFAMaxAttempts = DefaultTwoFAMaxAttempts
	}
	if cfg.Auth.TwoFAChallengeTTL == 0 {
		cfg.Auth.TwoFAChallengeTTL = DefaultTwoFAChallengeTTL
	}
	if cfg.Auth.BackupCodeCount == 0 {
		cfg.Auth.BackupCodeCount = DefaultBackupCodeCount
	}
	if cfg.Auth.PasswordMinLength == 0 {
		cfg.Auth.PasswordMinLength = DefaultPasswordMinLength
	}
	if cfg.Auth.EmailTokenTTL == 0 {
		cfg.Auth.EmailTokenTTL = DefaultEmailTokenTTL
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sweeper.Interval == 0 {
		cfg.Sweeper.Interval = DefaultSweepInterval
	}
	if cfg.Sweeper.SessionRetention == 0 {
		cfg.Sweeper.SessionRetention = DefaultSessionRetention
	}
	if cfg.Sweeper.EventRetention == 0 {
		cfg.Sweeper.EventRetention = DefaultEventRetention
	}
	if cfg.Sweeper.AttemptRetention == 0 {
		cfg.Sweeper.AttemptRetention = DefaultAttemptRetention
	}
}
