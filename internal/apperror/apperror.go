// Package apperror defines the typed failure results returned by services.
// Handlers branch on the kind to pick an HTTP status; the message is what the
// visitor sees.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindInternal covers unexpected failures surfaced as a generic message.
	KindInternal Kind = iota
	// KindValidation marks malformed input; the operation was not attempted.
	KindValidation
	// KindNotFound marks a referenced account or resource that does not exist.
	KindNotFound
	// KindConflict marks a duplicate username or email at registration.
	KindConflict
	// KindAuth marks a failed password check.
	KindAuth
	// KindLocked marks an account refused because of a temporary lockout.
	KindLocked
	// KindPrecondition marks an action that requires a session while anonymous.
	KindPrecondition
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status for the transport layer.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindLocked:
		return http.StatusLocked
	case KindPrecondition:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Locked(message string) *Error {
	return &Error{Kind: KindLocked, Message: message}
}

func Precondition(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// As extracts an *Error from the chain, or nil.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
