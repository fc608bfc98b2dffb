// Package errs defines the error taxonomy shared by services and
// controllers. Every failure leaving a service carries a Kind so the
// HTTP layer can map it to a status code and callers can decide whether
// a retry makes sense.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindUpstream      Kind = "upstream"
	KindUnavailable   Kind = "unavailable"
)

type Error struct {
	Kind    Kind
	Message string

	// UpstreamStatus and UpstreamBody are populated for KindUpstream
	// only, for server-side diagnostics. They are never sent to clients.
	UpstreamStatus int
	UpstreamBody   string

	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.wrapped }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Upstream reports a rejection by an external service. The raw status
// and body are kept for logging; callers should not retry.
func Upstream(status int, body string, format string, args ...any) *Error {
	return &Error{
		Kind:           KindUpstream,
		Message:        fmt.Sprintf(format, args...),
		UpstreamStatus: status,
		UpstreamBody:   body,
	}
}

// Unavailable reports a transport-level failure reaching an external
// service. Callers may retry.
func Unavailable(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindUnavailable, Message: fmt.Sprintf(format, args...), wrapped: cause}
}

// KindOf extracts the taxonomy kind from err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
