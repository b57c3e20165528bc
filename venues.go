package signalboard

import (
	"context"
	"net/url"
	"strconv"
)

// VenuesService manages the physical locations screens play in. Management
// calls authenticate with the bearer token alone; the network is addressed
// with a network_id parameter.
type VenuesService struct {
	conn *connection
}

// VenueParams describes a venue to register.
type VenueParams struct {
	// Name is the display name of the venue.
	Name string `validate:"required"`

	// Latitude and Longitude locate the venue.
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`

	// Address is the street address, free-form.
	Address string

	// VenueType classifies the venue, e.g. "retail" or "transit".
	VenueType string
}

// VenueListParams paginate venue listings.
type VenueListParams struct {
	Page    int `validate:"omitempty,gt=0"`
	PerPage int `validate:"omitempty,gt=0,lte=100"`
}

// Create registers a venue with the network.
func (s *VenuesService) Create(ctx context.Context, params *VenueParams) (any, error) {
	if params == nil {
		return nil, missingField("params")
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"name":       params.Name,
		"latitude":   params.Latitude,
		"longitude":  params.Longitude,
		"network_id": s.conn.creds.NetworkID,
	}
	if params.Address != "" {
		payload["address"] = params.Address
	}
	if params.VenueType != "" {
		payload["venue_type"] = params.VenueType
	}

	resp, err := s.conn.post(ctx, "/v1/venues", payload)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// List returns the network's venues. params may be nil to use the server's
// pagination defaults.
func (s *VenuesService) List(ctx context.Context, params *VenueListParams) (any, error) {
	query := map[string]string{"network_id": s.conn.creds.NetworkID}

	if params != nil {
		if err := validateParams(params); err != nil {
			return nil, err
		}
		if params.Page > 0 {
			query["page"] = strconv.Itoa(params.Page)
		}
		if params.PerPage > 0 {
			query["per_page"] = strconv.Itoa(params.PerPage)
		}
	}

	resp, err := s.conn.get(ctx, "/v1/venues", query)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// Get returns a single venue by id.
func (s *VenuesService) Get(ctx context.Context, id string) (any, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	resp, err := s.conn.get(ctx, "/v1/venues/"+url.PathEscape(id), map[string]string{
		"network_id": s.conn.creds.NetworkID,
	})
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}
