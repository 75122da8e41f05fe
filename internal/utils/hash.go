package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken computes the SHA-256 digest of an opaque token value and
// returns it hex-encoded. Refresh tokens and email tokens are stored only
// in this form; the plaintext value never reaches the database.
//
// SHA-256 (rather than a slow KDF) is appropriate here because the input
// is a 256-bit random value, not a human-chosen password.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
