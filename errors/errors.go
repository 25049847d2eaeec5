package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error is the unified failure type.
type Error struct {
	// Kind is the machine-readable classification.
	Kind Kind `json:"kind"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Details contains additional context, e.g. the upstream envelope code.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil && !strings.Contains(e.Message, e.Cause.Error()) {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind around cause. The message is
// prefix followed by the cause's text.
func Wrap(kind Kind, prefix string, cause error) *Error {
	msg := prefix
	if cause != nil {
		if msg != "" {
			msg += ": "
		}
		msg += cause.Error()
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Constructors ---

// BadRequest creates a KindBadRequest error.
func BadRequest(message string) *Error { return New(KindBadRequest, message) }

// Parameter creates a KindParameter error.
func Parameter(message string) *Error { return New(KindParameter, message) }

// ParseJSON creates a KindParseJSON error.
func ParseJSON(message string) *Error { return New(KindParseJSON, message) }

// Parse creates a KindParse error.
func Parse(message string) *Error { return New(KindParse, message) }

// FileRead creates a KindFileRead error.
func FileRead(message string, cause error) *Error { return Wrap(KindFileRead, message, cause) }

// FileWrite creates a KindFileWrite error.
func FileWrite(message string, cause error) *Error { return Wrap(KindFileWrite, message, cause) }

// SerializeJSON creates a KindSerializeJSON error.
func SerializeJSON(message string, cause error) *Error {
	return Wrap(KindSerializeJSON, message, cause)
}

// Lock creates a KindLock error.
func Lock(message string) *Error { return New(KindLock, message) }

// Unknown creates a KindUnknown error around cause.
func Unknown(cause error) *Error {
	if cause == nil {
		return New(KindUnknown, "unknown error")
	}
	return &Error{Kind: KindUnknown, Message: cause.Error(), Cause: cause}
}

// --- Inspection ---

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the outermost *Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HasKind reports whether any *Error in err's chain carries kind.
func HasKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// From converts any error into an *Error, mapping foreign errors to
// KindUnknown. Nil stays nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e
	}
	return Unknown(err)
}
