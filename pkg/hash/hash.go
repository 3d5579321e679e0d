package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Secret produces a salted bcrypt digest of a secret. Used for passwords
// and for the 6-digit email verification codes — both are compared only
// through Verify, never by direct equality.
func Secret(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether secret matches digest. A malformed or empty
// digest verifies as false; the caller never learns why the comparison
// failed.
func Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
