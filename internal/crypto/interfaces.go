package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and verifies password digests. Implementations own
// their tuning parameters; callers never see raw key material, only the
// self-describing encoded digest.
type PasswordHasher interface {
	// HashPassword derives a digest from the plaintext password. The
	// returned string embeds the algorithm, its parameters, and the salt,
	// so verification needs no out-of-band state.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches encodedHash. The
	// comparison of derived keys is constant-time. A malformed
	// encodedHash is an error, not a mismatch.
	VerifyPassword(password, encodedHash string) (bool, error)

	// NeedsRehash reports whether encodedHash was produced with weaker
	// parameters than the hasher currently uses. Checked after a
	// successful verification so digests upgrade in place over time.
	NeedsRehash(encodedHash string) (bool, error)
}
