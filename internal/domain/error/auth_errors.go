// Package error defines domain-specific errors for the BizPulse application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when the dashboard password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken is returned when no access token accompanies a request.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned when an access token is malformed or expired.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
