// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/bizpulse/backend/internal/application/adapter"
	domainerror "github.com/bizpulse/backend/internal/domain/error"
)

// LoginInput represents the input for dashboard login.
type LoginInput struct {
	Password string
}

// LoginOutput represents the output of dashboard login.
type LoginOutput struct {
	AccessToken string
}

// LoginUseCase handles dashboard login. The dashboard has a single
// principal authenticated by one password.
type LoginUseCase struct {
	passwordHash    string
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(passwordHash string, passwordService adapter.PasswordService, tokenService adapter.TokenService) *LoginUseCase {
	return &LoginUseCase{
		passwordHash:    passwordHash,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := uc.passwordService.VerifyPassword(input.Password, uc.passwordHash); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginOutput{
		AccessToken: token,
	}, nil
}
