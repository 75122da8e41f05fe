// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	secretBytes = 20
	period      = 30
	digits      = 6
	skew        = 1
)

// ErrMalformedSecret is returned when a stored shared secret is not valid
// unpadded base32.
var ErrMalformedSecret = errors.New("malformed totp secret")

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// manager is the private implementation of [Manager]. It speaks the
// authenticator-app lingua franca: SHA-1, 6 digits, 30-second steps.
type manager struct {
	issuer string
}

// NewManager constructs a [Manager] that labels enrollment URIs with the
// given issuer name.
func NewManager(issuer string) Manager {
	return &manager{issuer: issuer}
}

// GenerateSecret implements [Manager]. The secret is 20 random bytes
// (160 bits), the RFC 4226 recommended minimum.
func (m *manager) GenerateSecret() (string, error) {
	raw := make([]byte, secretBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}
	return b32.EncodeToString(raw), nil
}

// ProvisionURI implements [Manager].
func (m *manager) ProvisionURI(secretBase32, account string) string {
	label := url.PathEscape(m.issuer + ":" + account)

	v := url.Values{}
	v.Set("secret", secretBase32)
	v.Set("issuer", m.issuer)
	v.Set("period", strconv.Itoa(period))
	v.Set("digits", strconv.Itoa(digits))
	v.Set("algorithm", "SHA1")

	return "otpauth://totp/" + label + "?" + v.Encode()
}

// VerifyCode implements [Manager]. Codes of the wrong shape are a plain
// mismatch, not an error, so callers count them against the attempt limit
// like any other wrong code.
func (m *manager) VerifyCode(secretBase32, code string, now time.Time) (bool, int64, error) {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) != digits || !isNumeric(trimmed) {
		return false, 0, nil
	}

	secret, err := b32.DecodeString(strings.ToUpper(secretBase32))
	if err != nil || len(secret) == 0 {
		return false, 0, ErrMalformedSecret
	}

	baseCounter := now.Unix() / period
	for step := int64(-skew); step <= skew; step++ {
		counter := baseCounter + step
		if counter < 0 {
			continue
		}
		generated := hotpCode(secret, counter)
		if subtle.ConstantTimeCompare([]byte(generated), []byte(trimmed)) == 1 {
			return true, counter, nil
		}
	}

	return false, 0, nil
}

// hotpCode computes the RFC 4226 HMAC-based one-time password for counter.
func hotpCode(secret []byte, counter int64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, secret)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	bin := (int(sum[offset])&0x7f)<<24 |
		(int(sum[offset+1])&0xff)<<16 |
		(int(sum[offset+2])&0xff)<<8 |
		(int(sum[offset+3]) & 0xff)

	return fmt.Sprintf("%06d", bin%1_000_000)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
