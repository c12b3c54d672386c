// Package apperror defines the application error taxonomy. Every failure
// surfaced to a caller is one of these types; controllers map them to HTTP
// status codes via StatusCode.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an application error.
type ErrorType int

const (
	// InternalError is for unspecified server-side failures.
	InternalError ErrorType = iota
	// DatabaseError represents an error originating from the store.
	DatabaseError
	// AuthError represents an authentication failure (bad credentials,
	// invalid/expired/missing token).
	AuthError
	// ForbiddenError represents an authorization failure (valid identity,
	// no permission on the target).
	ForbiddenError
	// NotFoundError represents an absent account, user or food.
	NotFoundError
	// BadRequestError represents invalid input (missing upload, bad date range).
	BadRequestError
	// ConflictError represents a duplicate (username/email, existing user profile).
	ConflictError
	// UpstreamError represents a failure of the food-recognition service.
	// The upstream status and body are preserved verbatim.
	UpstreamError
)

// AppError is the error type carried through services up to the controllers.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error

	// UpstreamStatus is set for UpstreamError only.
	UpstreamStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status appropriate for the error type.
// Upstream failures keep the status the recognition service answered with.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case BadRequestError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case UpstreamError:
		if e.UpstreamStatus > 0 {
			return e.UpstreamStatus
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

func NewInternal(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

func NewDatabase(message string, underlying error) *AppError {
	return New(DatabaseError, message, underlying)
}

func NewAuth(message string, underlying error) *AppError {
	return New(AuthError, message, underlying)
}

func NewForbidden(message string, underlying error) *AppError {
	return New(ForbiddenError, message, underlying)
}

func NewNotFound(message string, underlying error) *AppError {
	return New(NotFoundError, message, underlying)
}

func NewBadRequest(message string, underlying error) *AppError {
	return New(BadRequestError, message, underlying)
}

func NewConflict(message string, underlying error) *AppError {
	return New(ConflictError, message, underlying)
}

// NewUpstream wraps a non-success response from the recognition service.
// The body becomes the user-facing message so the detail reaches the caller
// unchanged.
func NewUpstream(status int, body string) *AppError {
	return &AppError{Type: UpstreamError, Message: body, UpstreamStatus: status}
}

// FromError converts a generic error to an *AppError when possible.
func FromError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	ae, ok := FromError(err)
	return ok && ae.Type == NotFoundError
}

func IsConflict(err error) bool {
	ae, ok := FromError(err)
	return ok && ae.Type == ConflictError
}

func IsBadRequest(err error) bool {
	ae, ok := FromError(err)
	return ok && ae.Type == BadRequestError
}
