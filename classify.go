package signalboard

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
)

// errorMessageKeys are the response-body keys inspected for a server-supplied
// error message, in priority order. The first present, non-null value wins.
var errorMessageKeys = []string{"error", "message", "error_description"}

// classifyTransportError wraps a transport failure as a [ConnectionError].
// Timeouts and connection-level failures (refused, reset, unreachable, DNS)
// get a "Connection failed:" message, every other transport error a
// "Network error:" message.
func classifyTransportError(err error) *ConnectionError {
	if isTimeoutOrConnectionFailure(err) {
		return &ConnectionError{Message: "Connection failed: " + err.Error(), Err: err}
	}
	return &ConnectionError{Message: "Network error: " + err.Error(), Err: err}
}

func isTimeoutOrConnectionFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	// Dial, read and write failures (connection refused, reset, unreachable)
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// classifyResponse maps the final HTTP response to the SDK error taxonomy.
// 401 becomes an [AuthenticationError], every other status in [400,599] an
// [APIError] carrying the status code and decoded body. Success and
// redirect statuses pass through with a nil error. Classification runs once
// per call, on the response left after the retry policy has given up.
func classifyResponse(statusCode int, body any) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		msg := extractErrorMessage(body)
		if msg == "" {
			msg = "Authentication failed"
		}
		return &AuthenticationError{Message: msg}

	case statusCode >= 400 && statusCode < 600:
		msg := extractErrorMessage(body)
		if msg == "" {
			msg = fmt.Sprintf("API request failed with status %d", statusCode)
		}
		return &APIError{StatusCode: statusCode, Message: msg, ResponseBody: body}
	}

	return nil
}

// extractErrorMessage pulls a human-readable message out of a decoded error
// body. Only JSON objects are inspected; arrays, scalars and raw strings
// yield no message. Empty-string values fall through to the next key.
func extractErrorMessage(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}

	for _, key := range errorMessageKeys {
		v, present := obj[key]
		if !present || v == nil {
			continue
		}

		if s, ok := v.(string); ok {
			if s == "" {
				continue
			}
			return s
		}

		return fmt.Sprintf("%v", v)
	}

	return ""
}
