// Package apperror defines the error taxonomy shared by the services.
// Services return *Error values; only the HTTP layer turns a Kind into a status code.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport boundary
type Kind string

const (
	KindValidation Kind = "validation_error"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "auth_error"
	KindConflict   Kind = "conflict"
	KindServer     Kind = "server_error"
)

// Error is a tagged service error. Message is safe to show to clients
// except for KindServer, where Err carries the detail for logs only.
type Error struct {
	Kind    Kind
	Code    string
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

// Is matches on Kind and Code so wrapped sentinels compare equal
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return New(KindValidation, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

func Auth(code, message string) *Error {
	return New(KindAuth, code, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

// Server wraps err as an opaque server failure
func Server(err error) *Error {
	return &Error{Kind: KindServer, Code: "server_error", Message: "Server error", Err: err}
}

// Wrap returns a copy of e carrying err as its cause
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: err}
}

// From classifies any error. Untagged errors collapse to KindServer.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Server(err)
}

// KindOf returns the Kind of err, KindServer for untagged errors
func KindOf(err error) Kind {
	return From(err).Kind
}
