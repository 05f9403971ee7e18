package model

import "github.com/google/uuid"

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
