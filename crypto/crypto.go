// Package crypto provides password hashing for stored credentials.
package crypto

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/port-russell/marina-api/logging/logger"
)

const (
	bcryptCost = bcrypt.DefaultCost
)

// HashPassword hashes the provided password using bcrypt.
func HashPassword(ctx context.Context, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Errorf(ctx, "crypto.HashPassword error: %v", err)
		return "", err
	}
	return string(hash), nil
}

// ComparePassword compares the hashed password with the provided password.
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
