package credential

import (
	"crypto/sha1"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-1 of plaintext. It is deterministic
// and unsalted: the same input always yields the same digest, at both
// registration time (to store) and authentication time (to compare).
func Digest(plaintext string) string {
	sum := sha1.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
