// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mzotov/cliptide/internal/config"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/internal/utils"
)

// ErrDeliveryFailed is returned when the mail-delivery API rejects a
// message or is unreachable.
var ErrDeliveryFailed = errors.New("mail delivery failed")

// message is the request body of the platform mail-delivery API.
type message struct {
	To       string         `json:"to"`
	From     string         `json:"from"`
	Template string         `json:"template"`
	Params   map[string]any `json:"params,omitempty"`
}

// httpMailer delivers notifications through the platform mail-delivery
// HTTP API.
type httpMailer struct {
	client *utils.HTTPClient
	from   string
	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] that posts messages to the
// mail-delivery API at cfg.BaseURL, authenticated with cfg.APIKey.
func NewHTTPMailer(cfg config.Mailer, log *logger.Logger) Mailer {
	client := utils.NewHTTPClient()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	client.SetAuthToken(cfg.APIKey)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpMailer{
		client: client,
		from:   cfg.From,
		logger: log,
	}
}

func (m *httpMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	return m.send(ctx, message{
		To:       email,
		Template: "email_verification",
		Params:   map[string]any{"token": token},
	})
}

func (m *httpMailer) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	return m.send(ctx, message{
		To:       email,
		Template: "password_reset",
		Params:   map[string]any{"token": token},
	})
}

func (m *httpMailer) SendTwoFAEnabledEmail(ctx context.Context, email string) error {
	return m.send(ctx, message{
		To:       email,
		Template: "two_fa_enabled",
	})
}

func (m *httpMailer) SendDeletionScheduledEmail(ctx context.Context, email string) error {
	return m.send(ctx, message{
		To:       email,
		Template: "account_deletion_scheduled",
	})
}

func (m *httpMailer) send(ctx context.Context, msg message) error {
	msg.From = m.from

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post("/v1/messages")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrDeliveryFailed, resp.StatusCode(), body)
	}

	return nil
}
