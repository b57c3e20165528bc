package signalboard

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the production Signalboard API endpoint.
	DefaultBaseURL = "https://api.signalboard.io"

	// DefaultTimeout bounds each request attempt, including retries' individual
	// attempts but not the waits between them.
	DefaultTimeout = 10 * time.Second
)

// envDebug toggles debug logging. Any value strconv.ParseBool accepts as true
// ("1", "t", "true", ...) enables it. The variable is read once, when option
// defaults are built; [WithDebug] overrides it.
const envDebug = "SIGNALBOARD_DEBUG"

type Option func(*Options)

type Options struct {
	baseURL          string
	timeout          time.Duration
	debug            bool
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
}

func newClientOptions() *Options {
	return &Options{
		baseURL:          DefaultBaseURL,
		timeout:          DefaultTimeout,
		debug:            debugFromEnv(),
		retryCount:       3,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   userAgent,
		},
	}
}

func debugFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv(envDebug))
	return err == nil && v
}

// WithBaseURL overrides the production API endpoint, e.g. for a staging
// environment or a local stub.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimSpace(baseURL)

		if baseURL != "" {
			o.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithDebug enables or disables the request/response dump regardless of the
// SIGNALBOARD_DEBUG environment variable.
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.debug = debug
	}
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// Validate reports the first invalid option value. It runs once, inside
// [New], so a misconfigured client is rejected before any request is made.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.baseURL) == "" {
		return errors.New("baseURL must be set")
	}

	if o.timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return errors.New("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return errors.New("retryWaitTime must not exceed 1m0s")
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return errors.New("retryMaxWaitTime must not exceed 5m0s")
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)", o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	return nil
}
