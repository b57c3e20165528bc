package signalboard

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// retryableStatuses are the HTTP status codes retried by [DefaultRetryPolicy].
// Only these exact codes are retryable; other 5xx codes (501, 505, ...) and
// all remaining 4xx codes surface immediately.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true, // 429
	http.StatusInternalServerError: true, // 500
	http.StatusBadGateway:          true, // 502
	http.StatusServiceUnavailable:  true, // 503
	http.StatusGatewayTimeout:      true, // 504
}

// DefaultRetryPolicy is the default retry condition used by [Client]. It
// retries on HTTP 429, 500, 502, 503 and 504, and on transient transport
// errors such as per-request timeouts and connection resets. It does not
// retry once the caller's context is canceled, nor on DNS resolution
// failures, and never on authentication failures (401) or other client
// errors.
//
// The policy applies to every request the client issues regardless of verb.
// Retried POSTs can be delivered more than once when the server processed an
// attempt whose response was lost; see the package documentation.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		// Per-attempt timeouts are transient. Since go1.23 the client
		// timeout error also matches context.DeadlineExceeded, so this
		// check must run before the context exclusions. A dead caller
		// context never reaches the policy: the retry loop aborts before
		// consulting conditions once the request context has expired.
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return true
		}

		// Don't retry on context cancellation or deadline exceeded
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		// Don't retry on non-timeout DNS resolution errors
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}

		// Retry on other transport errors
		return true
	}

	return retryableStatuses[r.StatusCode()]
}
