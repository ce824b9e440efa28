package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bizpulse/backend/internal/application/adapter"
)

const bcryptCost = 12

// passwordService implements the adapter.PasswordService interface using bcrypt.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword hashes a plaintext password.
func (s *passwordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with its hash.
func (s *passwordService) VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
