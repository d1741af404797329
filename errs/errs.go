package errs

import (
	"github.com/go-faster/errors"
)

// SessionError wraps a transport I/O failure, a body decode failure, or a
// TelegramError surfaced from check_response (SPEC_FULL.md §7 "Session
// error"). Use errors.As to recover a wrapped TelegramError.
type SessionError struct {
	cause error
}

func WrapSession(cause error) *SessionError {
	return &SessionError{cause: errors.Wrap(cause, "session")}
}

func (e *SessionError) Error() string { return e.cause.Error() }
func (e *SessionError) Unwrap() error { return e.cause }

// ExtractionErrorKind distinguishes why an Extractor could not produce a
// value (SPEC_FULL.md §4.1 "Errors are classified as...").
type ExtractionErrorKind int

const (
	ExtractionNotFound ExtractionErrorKind = iota
	ExtractionTypeMismatch
	ExtractionUser
)

type ExtractionError struct {
	Kind  ExtractionErrorKind
	Key   string
	cause error
}

func NewExtractionError(kind ExtractionErrorKind, key string, cause error) *ExtractionError {
	return &ExtractionError{Kind: kind, Key: key, cause: cause}
}

func (e *ExtractionError) Error() string {
	switch e.Kind {
	case ExtractionNotFound:
		return "extraction: no value for key " + e.Key
	case ExtractionTypeMismatch:
		return "extraction: wrong dynamic type for key " + e.Key
	default:
		if e.cause != nil {
			return "extraction: " + e.cause.Error()
		}
		return "extraction: user error"
	}
}

func (e *ExtractionError) Unwrap() error { return e.cause }

// HandlerError is an opaque wrapper around whatever error a user handler
// returned (SPEC_FULL.md §7 "Handler error").
type HandlerError struct {
	cause error
}

func WrapHandler(cause error) *HandlerError {
	if cause == nil {
		return nil
	}
	return &HandlerError{cause: cause}
}

func (e *HandlerError) Error() string { return e.cause.Error() }
func (e *HandlerError) Unwrap() error { return e.cause }

// EventError is the top-level union surfaced from router propagation: an
// extraction error (before the handler ran), a handler error (the handler
// ran and failed), or a middleware-originated error (SPEC_FULL.md §7
// "Event error").
type EventError struct {
	cause error
}

func WrapEvent(cause error) *EventError {
	if cause == nil {
		return nil
	}
	return &EventError{cause: errors.Wrap(cause, "event")}
}

func (e *EventError) Error() string { return e.cause.Error() }
func (e *EventError) Unwrap() error { return e.cause }
