// Package mailer sends account-lifecycle notifications through the
// platform mail-delivery API. When no API is configured the package falls
// back to a logging no-op implementation.
package mailer

import (
	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/logger"
)

// New selects the [Mailer] implementation for the given configuration:
// the HTTP mailer when a base URL is set, the logging no-op otherwise.
func New(cfg config.Mailer, log *logger.Logger) Mailer {
	if cfg.BaseURL == "" {
		return NewNoopMailer(log)
	}
	return NewHTTPMailer(cfg, log)
}
