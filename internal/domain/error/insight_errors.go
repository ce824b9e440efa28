// Package error defines domain-specific errors for the BizPulse application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightServiceUnavailable is returned when no AI backend is configured.
	ErrInsightServiceUnavailable = errors.New("insight service unavailable")

	// ErrProfileRequired is returned when insights are requested before any
	// business data has been entered.
	ErrProfileRequired = errors.New("business profile required")
)

// InsightErrorCode defines error codes for insight errors.
type InsightErrorCode string

const (
	ErrCodeInsightServiceUnavailable InsightErrorCode = "INS-010001"
	ErrCodeProfileRequired           InsightErrorCode = "INS-010002"
)

// InsightError represents an insight generation error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
