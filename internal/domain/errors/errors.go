// Package errors defines the application error model: a small AppError
// interface carrying HTTP status and business codes, plus the predefined
// errors raised by the console before any network call is made.
package errors

import (
	"net/http"

	"ketalog/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REQUIRED",
		"Sign in to access the dashboard",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Session expired, sign in again",
		"",
	)

	// Order-board precondition errors (raised before any upstream call)
	ErrPartnerNotAssigned = NewBaseError(
		http.StatusBadRequest,
		"PARTNER_NOT_ASSIGNED",
		"Assign a delivery partner first",
		"",
	)

	ErrPincodeMismatch = NewBaseError(
		http.StatusBadRequest,
		"PINCODE_MISMATCH",
		"Delivery partner does not serve the seller's pincode",
		"",
	)

	ErrMissingContact = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CONTACT",
		"Missing seller mobile or partner details",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrPartnerNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"Delivery partner not found",
		"",
	)

	// Form validation errors
	ErrInvalidMobile = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MOBILE",
		"Mobile number must be exactly 10 digits",
		"",
	)

	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Please fill all required fields",
		"",
	)

	ErrMinCartTooLow = NewBaseError(
		http.StatusBadRequest,
		"MIN_CART_TOO_LOW",
		"Minimum cart value must exceed the discount",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"New passwords do not match",
		"",
	)

	ErrCurrentPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"CURRENT_PASSWORD_REQUIRED",
		"Current password required to set new password",
		"",
	)

	ErrLedgerRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"LEDGER_RECORD_NOT_FOUND",
		"Ledger record not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// UpstreamError represents a failure reported by the marketplace backend,
// implementing the AppError interface so the server's own message reaches
// the operator when one is present.
type UpstreamError struct {
	statusCode int
	message    string
	details    string
}

// NewUpstreamError creates an upstream-reported error. An empty message
// falls back to a generic one.
func NewUpstreamError(statusCode int, message, details string) AppError {
	if message == "" {
		message = "Marketplace backend rejected the request"
	}

	return &UpstreamError{
		statusCode: statusCode,
		message:    message,
		details:    details,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code reported by the backend
func (e *UpstreamError) HTTPCode() int {
	return e.statusCode
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_REJECTED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.details
}

// UnavailableError represents a transport-level failure reaching the
// marketplace backend.
type UnavailableError struct {
	err error
}

// NewUnavailableError wraps a transport failure.
func NewUnavailableError(err error) AppError {
	return &UnavailableError{err: err}
}

// Error implements the error interface
func (e *UnavailableError) Error() string {
	return errors.Wrap(e.err, "marketplace backend unreachable").Error()
}

// HTTPCode returns the HTTP status code
func (e *UnavailableError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UnavailableError) ErrorCode() string {
	return "UPSTREAM_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *UnavailableError) Message() string {
	return "Marketplace backend unreachable"
}

// Details returns detailed error information
func (e *UnavailableError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}
