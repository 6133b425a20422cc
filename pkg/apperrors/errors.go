package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure kinds the API distinguishes.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("resource not found")
	ErrStore          = errors.New("store failure")
)

// Error is a structured application error with an HTTP status mapping.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Kind    error  `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is lets errors.Is match both the wrapped cause and the failure kind.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// InvalidRequest creates a 400 error for malformed or missing input.
func InvalidRequest(message string) *Error {
	return &Error{
		Code:    "INVALID_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Kind:    ErrInvalidRequest,
	}
}

// Unauthorized creates a 401 error.
func Unauthorized(message string) *Error {
	return &Error{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Kind:    ErrUnauthorized,
	}
}

// Forbidden creates a 403 error.
func Forbidden(message string) *Error {
	return &Error{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Kind:    ErrForbidden,
	}
}

// NotFound creates a 404 error for an absent resource.
func NotFound(resource, id string) *Error {
	return &Error{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Kind:    ErrNotFound,
	}
}

// Store wraps an underlying data-store failure. The cause is kept for
// logging but never serialized to the caller.
func Store(err error) *Error {
	return &Error{
		Code:    "STORE_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Kind:    ErrStore,
		Err:     err,
	}
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
