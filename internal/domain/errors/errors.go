package errors

import (
	"net/http"

	"venuealert/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so that
// WithDetails copies still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
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
	// Geofence-related errors
	ErrInvalidGeofence = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GEOFENCE",
		"geofence requires a non-empty id and name",
		"",
	)

	ErrGeofenceNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOFENCE_NOT_FOUND",
		"geofence not found",
		"",
	)

	// Alert policy errors
	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"alert radius must be greater than zero",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// PersistenceError represents a durable storage read or write failure, implementing the AppError interface
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a persistence-related error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "persistence failed: "+e.details).Error()
}

// Unwrap exposes the storage error
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "failed to save location alert state"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}

// IsPersistenceError reports whether err is, or wraps, a PersistenceError
func IsPersistenceError(err error) bool {
	var persistenceErr *PersistenceError

	return errors.As(err, &persistenceErr)
}

// ResolutionError reports a region event that matched no stored geofence.
// It is never returned to a caller; it exists so the failure is logged with a stable shape.
type ResolutionError struct {
	RegionID      string
	GeofenceCount int
}

// Error implements the error interface
func (e *ResolutionError) Error() string {
	return "region " + e.RegionID + " matched no stored geofence by id, venueId or name"
}
