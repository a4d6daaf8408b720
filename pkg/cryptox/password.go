package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const (
	// SaltBytes is the amount of random data drawn for each salt.
	SaltBytes = 16

	// SaltLength is the length of the hex encoded salt.
	SaltLength = SaltBytes * 2

	// HashLength is the length of the hex encoded SHA-256 digest.
	HashLength = sha256.Size * 2
)

// GenerateSalt returns SaltBytes of cryptographically secure randomness
// encoded as lowercase hex.
func GenerateSalt() (string, error) {
	b := make([]byte, SaltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword derives the stored digest for password under salt. The salt is
// used as its hex text, prepended to the UTF-8 password bytes.
func HashPassword(salt, password string) string {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyPassword recomputes the digest and compares it against hash in
// constant time.
func VerifyPassword(salt, password, hash string) bool {
	computed := HashPassword(salt, password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
