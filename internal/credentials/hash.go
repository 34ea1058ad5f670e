package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// KDF parameters. The iteration count is deliberately high; DeriveHash is
// expected to be slow.
const (
	kdfIterations = 250_000
	kdfKeyLen     = 64
	saltLen       = 32
)

// DeriveHash computes the PBKDF2-SHA512 derived key for a password and salt.
// Deterministic: identical inputs always produce identical output.
func DeriveHash(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, kdfKeyLen, sha512.New)
}

// newSalt returns a cryptographically random salt. If the random source is
// unavailable it degrades to a salt derived from the username, password and
// the static application secret; this keeps registration working but loses
// per-user salt unpredictability, so it is logged loudly by the caller.
func newSalt(username, password, fallbackSecret string) ([]byte, bool) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err == nil {
		return salt, true
	}
	sum := sha256.Sum256([]byte(username + password + fallbackSecret))
	return sum[:], false
}

func encodeHex(b []byte) string { return hex.EncodeToString(b) }

func decodeHex(s string) ([]byte, error) { return hex.DecodeString(s) }
