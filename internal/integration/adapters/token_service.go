// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bizpulse/backend/internal/application/adapter"
)

// tokenSubject identifies the single dashboard principal.
const tokenSubject = "dashboard"

// tokenService implements the adapter.TokenService interface using HS256
// signed JWTs.
type tokenService struct {
	secret      []byte
	tokenExpiry time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, tokenExpiry time.Duration) adapter.TokenService {
	return &tokenService{
		secret:      []byte(secret),
		tokenExpiry: tokenExpiry,
	}
}

// GenerateAccessToken issues a signed access token.
func (s *tokenService) GenerateAccessToken(_ context.Context) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject != tokenSubject {
		return nil, fmt.Errorf("unexpected token subject")
	}

	validated := &adapter.TokenClaims{
		Subject: claims.Subject,
	}
	if claims.ExpiresAt != nil {
		validated.ExpiresAt = claims.ExpiresAt.Time
	}
	return validated, nil
}
