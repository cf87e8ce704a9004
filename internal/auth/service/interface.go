// Package service provides technical services for authentication operations.
//
// This package implements reusable services for password hashing and signed
// session token handling using industry-standard cryptographic practices.
package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/auth/domain"
)

// PasswordService defines operations for password hashing and verification.
// Implementations must use a memory-hard hashing algorithm (e.g., argon2id)
// suitable for long-lived user credentials.
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword compares a plain text password against a stored hash.
	// Returns true if the password matches the hash, false otherwise.
	// This is constant-time to prevent timing attacks.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// SessionService defines operations for minting and verifying signed session
// tokens. Tokens are self-contained: verification requires only the signing
// secret, no database lookup.
type SessionService interface {
	// Mint creates a signed session token for a user. The role is embedded in
	// the token as a snapshot taken at mint time.
	Mint(userID uuid.UUID, role domain.Role) (token string, expiresAt time.Time, err error)

	// Verify parses and validates a session token, returning the principal it
	// carries. Expired, tampered, or malformed tokens return errors wrapping
	// errors.ErrUnauthorized.
	Verify(token string) (*domain.Principal, error)
}
