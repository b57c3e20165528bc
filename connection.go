package signalboard

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// response is the decoded outcome of a successful API call.
type response struct {
	statusCode int
	body       any
	header     http.Header
}

// connection owns the HTTP pipeline shared by all endpoint services: default
// headers, bearer authentication, the retry policy and optional debug
// logging. The underlying resty client is built lazily on first use and
// cached for the lifetime of the client; constructing a connection performs
// no network I/O.
type connection struct {
	creds   Credentials
	options *Options

	once   sync.Once
	client *resty.Client
}

func newConnection(creds Credentials, options *Options) *connection {
	return &connection{creds: creds, options: options}
}

// httpClient returns the shared resty client, building it on first call.
func (c *connection) httpClient() *resty.Client {
	c.once.Do(c.buildClient)
	return c.client
}

// buildClient wires the request pipeline: JSON headers and bearer auth on
// every request, retries with exponential backoff and jitter, a generated
// X-Request-ID when the caller set none, and the request/response dump when
// debug logging was enabled at construction time.
func (c *connection) buildClient() {
	rc := resty.New().
		SetBaseURL(c.options.baseURL).
		SetTimeout(c.options.timeout).
		SetHeaders(c.options.requestHeaders).
		SetAuthToken(c.creds.APIKey).
		SetRetryCount(c.options.retryCount).
		SetRetryWaitTime(c.options.retryWaitTime).
		SetRetryMaxWaitTime(c.options.retryMaxWaitTime).
		AddRetryCondition(c.options.retryPolicy)

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(headerRequestID) == "" {
			r.Header.Set(headerRequestID, uuid.NewString())
		}
		return nil
	})

	logger := c.options.requestLogger
	if c.options.debug {
		if _, noop := logger.(*NoopLogger); noop {
			logger = newDebugLogger(os.Stderr)
		}
		rc.SetDebug(true)
	}
	rc.SetLogger(logger)

	c.client = rc
}

// post sends a JSON payload and returns the decoded response body.
func (c *connection) post(ctx context.Context, path string, payload map[string]any) (*response, error) {
	req := c.httpClient().R().SetContext(ctx).SetBody(payload)

	resp, err := req.Post(path)
	return c.finish(resp, err)
}

// get issues a GET with the given query parameters and returns the decoded
// response body.
func (c *connection) get(ctx context.Context, path string, query map[string]string) (*response, error) {
	req := c.httpClient().R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	return c.finish(resp, err)
}

// finish decodes the final response body and runs error classification.
// Classification happens exactly once per call: when retries are exhausted
// only the last response or transport error is considered.
func (c *connection) finish(resp *resty.Response, err error) (*response, error) {
	if err != nil {
		return nil, classifyTransportError(err)
	}

	body := decodeBody(resp.Body())
	if cerr := classifyResponse(resp.StatusCode(), body); cerr != nil {
		return nil, cerr
	}

	return &response{statusCode: resp.StatusCode(), body: body, header: resp.Header()}, nil
}

// decodeBody decodes a JSON response body. A body that is not valid JSON is
// returned as the raw string, an empty body as nil.
func decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
