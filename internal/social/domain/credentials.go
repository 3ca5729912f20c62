package domain

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCredential derives the stored form of an account secret. The stored
// hash is salted; two hashes of the same secret do not compare equal.
func HashCredential(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash credential: %w", err)
	}
	return string(hash), nil
}

// CredentialMatches reports whether secret matches the user's stored hash.
// Matching is exact: any difference in the presented secret fails.
func (u User) CredentialMatches(secret string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(secret)) == nil
}
