// Package errors provides custom error types for the SiteLedger API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Storage errors. A failed read or write against the key-value store is
// surfaced generically; the driver error travels in Internal for logging.
var (
	ErrStorage = &AppError{Code: "STORAGE_ERROR", Message: "Failed to read or write persistent storage", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	ErrRecordNotFound     = &AppError{Code: "RECORD_NOT_FOUND", Message: "Finance record not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmount      = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a number greater than zero", StatusCode: http.StatusBadRequest}
	ErrMissingDescription = &AppError{Code: "MISSING_DESCRIPTION", Message: "Description must not be blank", StatusCode: http.StatusBadRequest}
)

// Progress payment errors.
var (
	ErrProgressItemNotFound = &AppError{Code: "PROGRESS_ITEM_NOT_FOUND", Message: "Progress payment item not found", StatusCode: http.StatusNotFound}
)

// Project errors.
var (
	ErrProjectNotFound = &AppError{Code: "PROJECT_NOT_FOUND", Message: "Project not found", StatusCode: http.StatusNotFound}
)

// Subcontractor errors.
var (
	ErrSubcontractorNotFound = &AppError{Code: "SUBCONTRACTOR_NOT_FOUND", Message: "Subcontractor not found", StatusCode: http.StatusNotFound}
)
