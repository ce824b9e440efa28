// Package dto defines data transfer objects for API requests and responses.
package dto

// LoginRequest represents the request body for dashboard login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response for a successful login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
