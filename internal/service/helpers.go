package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mzotov/cliptide/internal/store"
	"github.com/mzotov/cliptide/internal/utils"
	"github.com/mzotov/cliptide/models"
)

const opaqueSecretBytes = 32

// normalizeEmail canonicalizes a login identifier: trimmed, lower-cased.
// Rate-limit counters and email lookups both key on this form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateOpaqueSecret returns a 256-bit random value, base64url-encoded
// without padding. Used for refresh-token secrets and email tokens.
func generateOpaqueSecret() (string, error) {
	raw := make([]byte, opaqueSecretBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("error generating random secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// issueEmailToken stores a fresh single-use token digest for the user and
// returns the plaintext value to be delivered by mail. Outstanding tokens
// of the same purpose are voided first, so only the latest mail works.
func issueEmailToken(ctx context.Context, repo store.EmailTokenRepository, userID int64, purpose models.TokenPurpose, ttl time.Duration) (string, error) {
	if err := repo.InvalidateUserTokens(ctx, userID, purpose); err != nil {
		return "", fmt.Errorf("error invalidating previous tokens: %w", err)
	}

	secret, err := generateOpaqueSecret()
	if err != nil {
		return "", err
	}

	_, err = repo.CreateEmailToken(ctx, models.EmailToken{
		UserID:    userID,
		Purpose:   purpose,
		TokenHash: utils.HashToken(secret),
		ExpiresAt: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("error storing email token: %w", err)
	}

	return secret, nil
}
