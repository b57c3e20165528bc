package signalboard

import (
	"fmt"
)

// Credentials authenticate every request made by a [Client].
type Credentials struct {
	// APIKey is the network's secret key. It is sent as a bearer token on
	// every request and, where the device wire protocol requires it, inside
	// the request body.
	APIKey string `validate:"required"`

	// NetworkID identifies the advertising network the client acts for.
	NetworkID string `validate:"required"`
}

// Client is the entry point to the Signalboard API. All endpoint services
// share one connection and therefore one lazily-built HTTP client; the
// Client is safe for concurrent use.
type Client struct {
	conn    *connection
	options *Options

	// Ads requests ad decisions for playback slots.
	Ads *AdsService

	// ProofOfPlay reports completed playbacks back to the network.
	ProofOfPlay *ProofOfPlayService

	// Venues manages the physical locations screens play in.
	Venues *VenuesService

	// Loops manages content loops and the slots scheduled in them.
	Loops *LoopsService
}

// New builds a Client for the given network credentials. Credentials and
// options are validated exactly once, here: a missing APIKey or NetworkID is
// rejected with a [ValidationError] naming the field before any network
// capability exists. No request is made until the first endpoint call.
func New(apiKey, networkID string, opts ...Option) (*Client, error) {
	creds := Credentials{APIKey: apiKey, NetworkID: networkID}
	if err := validateParams(creds); err != nil {
		return nil, err
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	conn := newConnection(creds, options)

	return &Client{
		conn:        conn,
		options:     options,
		Ads:         &AdsService{conn: conn},
		ProofOfPlay: &ProofOfPlayService{conn: conn},
		Venues:      &VenuesService{conn: conn},
		Loops:       &LoopsService{conn: conn},
	}, nil
}
