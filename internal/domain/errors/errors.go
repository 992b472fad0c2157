package errors

import (
	"net/http"

	"quill/internal/errors"
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

// Is matches application errors by their business code, so a WithDetails
// copy still matches its sentinel in errors.Is chains.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if errors.As(target, &other) {
		return e.errorCode == other.errorCode
	}

	return false
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

// The closed set of error variants surfaced by the service layer. Handlers and
// the error middleware map on these instead of inspecting error strings.
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrAccountHasPosts = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_HAS_POSTS",
		"account still owns posts",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Post-related errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"post not found",
		"",
	)

	ErrInvalidAuthor = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AUTHOR",
		"author does not exist",
		"",
	)

	// Token-related errors
	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"failed to issue token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Store-related errors
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"storage is unavailable or misconfigured",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
