package util

import (
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

var bcryptCost atomic.Int64

func init() {
	bcryptCost.Store(defaultBcryptCost)
}

// SetBcryptCost changes the work factor used by HashPassword. Values outside
// bcrypt's accepted range fall back to the default.
func SetBcryptCost(cost int) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}
	bcryptCost.Store(int64(cost))
}

// HashPassword hashes a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), int(bcryptCost.Load()))
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword checks if a plain text password matches a hashed password.
// An empty hash never matches.
func VerifyPassword(hashedPassword, password string) bool {
	if hashedPassword == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
