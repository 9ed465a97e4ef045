package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input limit. Passwords are truncated to
// this length before hashing and before verification, so credentials
// hashed from longer inputs keep verifying the same way.
const maxPasswordBytes = 72

// HashPassword hashes a password with bcrypt at the given cost.
// The salt is random, so two calls with the same input produce
// different hashes.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the candidate password matches the
// stored bcrypt hash. Any mismatch or malformed hash yields false,
// never an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
