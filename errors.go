package signalboard

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Error is implemented by all SDK errors.
type Error interface {
	error
	SignalboardError() // marker method
}

// AuthenticationError indicates the API rejected the request credentials
// (HTTP 401). Authentication failures are never retried.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// SignalboardError implements the Error interface.
func (e *AuthenticationError) SignalboardError() {}

// APIError represents a non-success HTTP response from the Signalboard API
// other than 401. ResponseBody holds the decoded response body as returned
// by the server.
type APIError struct {
	StatusCode   int
	Message      string
	ResponseBody any
}

func (e *APIError) Error() string {
	return e.Message
}

// SignalboardError implements the Error interface.
func (e *APIError) SignalboardError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// ConnectionError represents a transport-level failure: the request never
// produced an HTTP response. Timeouts and connection failures carry a
// "Connection failed:" message prefix, other transport errors "Network error:".
type ConnectionError struct {
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	return e.Message
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// SignalboardError implements the Error interface.
func (e *ConnectionError) SignalboardError() {}

// ValidationError reports caller-supplied parameters rejected before any
// network I/O. Each entry names the offending field.
type ValidationError struct {
	Errors []FieldError
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string
	Message string
	Value   string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}

	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Errors[0].Message)
	}

	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return fmt.Sprintf("validation failed: %d errors: %v", len(e.Errors), msgs)
}

// SignalboardError implements the Error interface.
func (e *ValidationError) SignalboardError() {}

// IsAuthenticationError reports whether err is an [AuthenticationError].
func IsAuthenticationError(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsConnectionError reports whether err is a [ConnectionError].
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsValidationError reports whether err is a [ValidationError].
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
