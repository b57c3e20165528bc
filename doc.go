// Package signalboard provides a client for the Signalboard digital-signage
// advertising API.
//
// The client wraps [github.com/go-resty/resty/v2] with bearer authentication,
// automatic retries, parameter validation and pluggable logging.
//
// # Basic Usage
//
//	c, err := signalboard.New("my-api-key", "my-network-id")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ad, err := c.Ads.Request(ctx, &signalboard.AdRequest{
//	    Latitude:  37.7749,
//	    Longitude: -122.4194,
//	})
//
// Endpoint methods validate their parameters before any I/O and return the
// decoded JSON response body verbatim; the SDK does not enforce a response
// schema.
//
// # Configuration
//
// Credentials are passed to [New] and validated there, before the client can
// reach the network. All other configuration is supplied as [Option]
// functions passed to [New]; invalid option values are silently ignored and
// the default is retained. The underlying HTTP client is built lazily on the
// first endpoint call.
//
// # Retry Behaviour
//
// [DefaultRetryPolicy] retries on HTTP 429, 500, 502, 503 and 504, and on
// transient transport errors such as per-request timeouts and connection
// resets. Waits between attempts grow exponentially from 500ms with jitter,
// capped at 3s, and a Retry-After response header is honored. Cancelling the
// request context stops the retry loop; DNS resolution failures and
// authentication failures are never retried. Supply a custom function via
// [WithRetryPolicy] to override this behaviour.
//
// POST requests are retried like everything else. A retried POST can be
// processed twice when the server handled an attempt whose response never
// arrived, so proof-of-play submission is at-least-once, not exactly-once;
// see [ProofOfPlayService.Submit].
//
// # Authentication
//
// Every request carries the API key as an Authorization bearer header.
// Device-facing calls (ad requests, proof of play) additionally carry the
// credentials in the request body, as the device wire protocol requires.
//
// # Logging
//
// With debug logging enabled ([WithDebug], or the SIGNALBOARD_DEBUG
// environment variable at construction time) the client dumps request and
// response headers and bodies to stderr through a zerolog-backed
// [RequestLogger]. Implement [RequestLogger] and supply it via
// [WithRequestLogger] to integrate with your logging library. Ensure your
// implementation redacts credentials and tokens from request and response
// bodies before persisting logs.
//
// # Errors
//
// Every failure surfaces as exactly one typed error: [ValidationError] for
// parameters rejected before I/O, [AuthenticationError] for HTTP 401,
// [APIError] for any other 4xx or 5xx response, and [ConnectionError] for
// transport failures. All of them implement the [Error] marker interface,
// and [APIError] matches the [ErrNotFound] and [ErrRateLimited] sentinels
// through errors.Is.
package signalboard
