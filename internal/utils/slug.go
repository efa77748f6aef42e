package utils

import (
	"crypto/rand"   // secure random number generation
	"encoding/hex"  // hex encoding of the random suffix
	"strings"
)

// NewSlug derives a candidate public identifier from a display name: the
// name lower-cased with spaces replaced by dashes, followed by a dash and
// 8 hex characters of cryptographically random entropy.  Uniqueness is not
// guaranteed here; the caller relies on the database unique key and
// regenerates on collision.
func NewSlug(name string) (string, error) {
	base := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	suffix, err := randomHex(4) // 4 bytes -> 8 hex chars
	if err != nil {
		return "", err
	}
	return base + "-" + suffix, nil
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
