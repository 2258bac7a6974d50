// Package errors defines the application error taxonomy shared between the
// usecase layer and the HTTP delivery.
package errors

import (
	"net/http"

	"latch/internal/errors"
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
	// PIN validation errors. These abort the operation before any write is
	// attempted and each carries the specific reason shown to the user.
	ErrPinCodeEmpty = NewBaseError(
		http.StatusBadRequest,
		"PIN_CODE_EMPTY",
		"PIN code is required",
		"",
	)

	ErrPinNameEmpty = NewBaseError(
		http.StatusBadRequest,
		"PIN_NAME_EMPTY",
		"PIN name is required",
		"",
	)

	ErrPinInvalidLength = NewBaseError(
		http.StatusBadRequest,
		"PIN_INVALID_LENGTH",
		"PIN code must be 4 to 8 digits long",
		"",
	)

	ErrPinNotNumeric = NewBaseError(
		http.StatusBadRequest,
		"PIN_NOT_NUMERIC",
		"PIN code may contain digits only",
		"",
	)

	ErrPinQuotaExceeded = NewBaseError(
		http.StatusConflict,
		"PIN_QUOTA_EXCEEDED",
		"You have reached the maximum number of PINs",
		"",
	)

	ErrPinDuplicate = NewBaseError(
		http.StatusConflict,
		"PIN_DUPLICATE",
		"This PIN code is already in use",
		"",
	)

	ErrPinNotFound = NewBaseError(
		http.StatusNotFound,
		"PIN_NOT_FOUND",
		"PIN not found",
		"",
	)

	// Door flow errors. The message never reveals which part of a PIN entry
	// was wrong.
	ErrDoorInvalidTransition = NewBaseError(
		http.StatusConflict,
		"DOOR_INVALID_TRANSITION",
		"That action is not available right now",
		"",
	)

	ErrDoorBusy = NewBaseError(
		http.StatusConflict,
		"DOOR_BUSY",
		"Another door operation is still in progress",
		"",
	)

	// Store errors degrade to a retryable state rather than crashing.
	ErrStoreWriteFailed = NewBaseError(
		http.StatusBadGateway,
		"STORE_WRITE_FAILED",
		"Could not update the device, please try again",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceInvalidKind = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_INVALID_KIND",
		"Unknown device type",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

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
