package errors

import (
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrNotFound           = NewNotFoundError("resource", "resource not found")
	ErrAlreadyExists      = NewAlreadyExistsError("resource", "resource already exists")
	ErrInvalidArgument    = NewValidationError("", "invalid argument")
	ErrInternal           = NewInternalError("internal server error", nil)
	ErrUnauthorized       = NewUnauthorizedError("unauthorized")
	ErrInvalidCredentials = NewUnauthorizedError("invalid email or password")
	ErrPermissionDenied   = NewForbiddenError("no access to this resource")
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status code for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Code returns the machine-readable error code for this error
func (e *ValidationError) Code() string {
	return "validation_error"
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// Code returns the machine-readable error code for this error
func (e *NotFoundError) Code() string {
	return "not_found"
}

// AlreadyExistsError represents a resource already exists error
type AlreadyExistsError struct {
	Resource string
	Message  string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error.
// Duplicate resources are reported as a bad request rather than a conflict,
// matching the public API contract.
func (e *AlreadyExistsError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Code returns the machine-readable error code for this error
func (e *AlreadyExistsError) Code() string {
	return "already_exists"
}

// UnauthorizedError represents a failed authentication attempt.
// Unknown accounts and bad credentials must carry the same message so that
// callers cannot probe for account existence.
type UnauthorizedError struct {
	Message string
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// HTTPStatus returns the HTTP status code for this error
func (e *UnauthorizedError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// Code returns the machine-readable error code for this error
func (e *UnauthorizedError) Code() string {
	return "unauthorized"
}

// ForbiddenError represents a failed ownership check: the acting identity is
// valid but does not own the target resource.
type ForbiddenError struct {
	Message string
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

// Error implements the error interface
func (e *ForbiddenError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "forbidden"
}

// HTTPStatus returns the HTTP status code for this error
func (e *ForbiddenError) HTTPStatus() int {
	return http.StatusForbidden
}

// Code returns the machine-readable error code for this error
func (e *ForbiddenError) Code() string {
	return "forbidden"
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// Code returns the machine-readable error code for this error
func (e *InternalError) Code() string {
	return "internal_error"
}

// HTTPStatuser is the interface for errors that carry an HTTP status and a
// machine-readable error code
type HTTPStatuser interface {
	error
	HTTPStatus() int
	Code() string
}
