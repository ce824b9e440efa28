// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations. The
// dashboard has a single principal, so tokens carry no user identity beyond
// a fixed subject.
type TokenService interface {
	// GenerateAccessToken issues a signed access token.
	GenerateAccessToken(ctx context.Context) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error
}
