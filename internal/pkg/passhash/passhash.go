// Package passhash wraps bcrypt behind a hash/verify pair so that callers
// never touch digests or salts directly.
package passhash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor the rest of the system was built
// around; raising it invalidates no existing digests because the cost is
// embedded in each one.
const DefaultCost = 12

// Hash derives a salted digest from plaintext. Equal inputs produce
// different digests across calls.
func Hash(plaintext string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. It returns false for any
// mismatch or malformed digest; user input can never make it fail loudly.
// bcrypt's compare is constant-time over the derived key.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
