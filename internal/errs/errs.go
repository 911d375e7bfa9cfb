// Package errs defines the error taxonomy shared by the store, services and
// HTTP handlers. Handlers translate a Kind into a status code exactly once.
package errs

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	Validation
	Duplicate
	Unauthorized
	Forbidden
	NotFound
	Dependency
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Duplicate:
		return "duplicate"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Dependency:
		return "dependency"
	default:
		return "internal"
	}
}

// Error carries a client-safe Message. Err, when set, is the underlying cause
// and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewValidation(message string) *Error   { return E(Validation, message) }
func NewNotFound(message string) *Error     { return E(NotFound, message) }
func NewForbidden(message string) *Error    { return E(Forbidden, message) }
func NewUnauthorized(message string) *Error { return E(Unauthorized, message) }

// KindOf reports the Kind of the outermost *Error in err's chain. Errors that
// carry no Kind are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the client-safe message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return "Internal server error"
}

func Status(kind Kind) int {
	switch kind {
	case Validation, Duplicate:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Dependency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
