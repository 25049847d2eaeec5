package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies transport failures.
type ErrorCode int

const (
	// ErrCodeTimeout indicates the attempt exceeded its timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, TLS, reset).
	ErrCodeConnection
	// ErrCodeCanceled indicates the caller's context ended.
	ErrCodeCanceled
	// ErrCodeBody indicates the response body could not be read in full.
	ErrCodeBody
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeCanceled:
		return "canceled"
	case ErrCodeBody:
		return "body"
	default:
		return "unknown"
	}
}

// TransportError is a failure below the HTTP exchange.
type TransportError struct {
	// Code classifies the failure.
	Code ErrorCode
	// Method and URL identify the request.
	Method string
	URL    string
	// Transient marks failures the client retries.
	Transient bool
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("httpclient: %s: %s %s: %v", e.Code, e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

func newTransportError(code ErrorCode, method, url string, err error) *TransportError {
	return &TransportError{
		Code:      code,
		Method:    method,
		URL:       url,
		Transient: code != ErrCodeCanceled,
		Err:       err,
	}
}

// IsTimeout checks if an error is a timeout.
func IsTimeout(err error) bool {
	var e *TransportError
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection failure.
func IsConnection(err error) bool {
	var e *TransportError
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsCanceled checks if an error stems from the caller's context.
func IsCanceled(err error) bool {
	var e *TransportError
	return errors.As(err, &e) && e.Code == ErrCodeCanceled
}

// IsTransient checks if an error is a retryable transport failure.
func IsTransient(err error) bool {
	var e *TransportError
	return errors.As(err, &e) && e.Transient
}
