// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zotov

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const algorithmID = "argon2id"

var (
	// ErrMalformedHash is returned when a stored digest cannot be parsed
	// as a PHC-encoded argon2id string.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrUnsupportedAlgorithm is returned when a stored digest uses an
	// algorithm or argon2 version this build cannot verify.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		saltLen:      16,
	}
}

// HashPassword implements [PasswordHasher]. It reads a random salt from the
// OS CSPRNG, derives the key with Argon2id, and encodes the result as a PHC
// string: $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>.
func (h *passwordHasher) HashPassword(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.argonMemory,
		h.argonTime,
		h.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword implements [PasswordHasher]. The derivation parameters come
// from the stored digest, not from the receiver, so digests written with
// older tuning still verify.
func (h *passwordHasher) VerifyPassword(password, encodedHash string) (bool, error) {
	parsed, err := parsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), parsed.salt, parsed.time, parsed.memory, parsed.threads, uint32(len(parsed.hash)))

	return subtle.ConstantTimeCompare(computed, parsed.hash) == 1, nil
}

// NeedsRehash implements [PasswordHasher].
func (h *passwordHasher) NeedsRehash(encodedHash string) (bool, error) {
	parsed, err := parsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	upgrade := parsed.memory < h.argonMemory ||
		parsed.time < h.argonTime ||
		parsed.threads < h.argonThreads ||
		uint32(len(parsed.hash)) != h.argonKeyLen

	return upgrade, nil
}

type parsedHash struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	hash    []byte
}

func parsePHC(encodedHash string) (parsedHash, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" {
		return parsedHash{}, ErrMalformedHash
	}

	if parts[1] != algorithmID {
		return parsedHash{}, ErrUnsupportedAlgorithm
	}

	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || !strings.HasPrefix(parts[2], "v=") {
		return parsedHash{}, ErrMalformedHash
	}
	if version != argon2.Version {
		return parsedHash{}, ErrUnsupportedAlgorithm
	}

	var parsed parsedHash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &parsed.memory, &parsed.time, &parsed.threads); err != nil {
		return parsedHash{}, ErrMalformedHash
	}

	if parsed.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return parsedHash{}, ErrMalformedHash
	}
	if parsed.hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return parsedHash{}, ErrMalformedHash
	}
	if len(parsed.salt) == 0 || len(parsed.hash) == 0 {
		return parsedHash{}, ErrMalformedHash
	}

	return parsed, nil
}
