// Package error defines domain-specific errors for the BizPulse application.
package error

import "errors"

// File transfer (import/export) domain errors.
var (
	// ErrUnsupportedFileType is returned when an uploaded file has an extension
	// no adapter handles.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrNoRecordsToExport is returned when a CSV export is requested while the
	// store holds no financial records.
	ErrNoRecordsToExport = errors.New("no records to export")
)

// TransferErrorCode defines error codes for import/export errors.
// Format: XFER-XXYYYY where XX is category and YYYY is specific error.
type TransferErrorCode string

const (
	ErrCodeUnsupportedFileType TransferErrorCode = "XFER-010001"
	ErrCodeNoRecordsToExport   TransferErrorCode = "XFER-010002"
)

// TransferError represents an import/export error with code and message.
type TransferError struct {
	Code    TransferErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// NewTransferError creates a new TransferError with the given code and message.
func NewTransferError(code TransferErrorCode, message string, err error) *TransferError {
	return &TransferError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
