package signalboard

import (
	"context"
	"net/url"
	"strconv"
)

// LoopsService manages content loops and the slots scheduled in them. A loop
// is the ordered rotation of slots a screen plays through.
type LoopsService struct {
	conn *connection
}

// LoopParams describes a loop to create.
type LoopParams struct {
	// Name is the display name of the loop.
	Name string `validate:"required"`

	// VenueID is the venue the loop plays in.
	VenueID string `validate:"required"`

	// Duration is the total loop length in seconds.
	Duration int `validate:"omitempty,gt=0"`
}

// LoopListParams filter and paginate loop listings.
type LoopListParams struct {
	// VenueID restricts the listing to one venue.
	VenueID string

	Page    int `validate:"omitempty,gt=0"`
	PerPage int `validate:"omitempty,gt=0,lte=100"`
}

// SlotParams describes a slot to schedule in a loop. Type selects the slot
// kind: "ad" slots are filled by ad decisions, "content" slots play operator
// content, "programmatic" slots are open to programmatic buys.
type SlotParams struct {
	Type string `validate:"required,oneof=ad content programmatic"`

	// Duration is the slot length in seconds.
	Duration int `validate:"required,gt=0"`

	// Position orders the slot within the loop; zero lets the server append.
	Position int `validate:"omitempty,gte=0"`

	// ContentURL points at the creative for content slots.
	ContentURL string `validate:"omitempty,url"`
}

// Create registers a loop at a venue.
func (s *LoopsService) Create(ctx context.Context, params *LoopParams) (any, error) {
	if params == nil {
		return nil, missingField("params")
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"name":       params.Name,
		"venue_id":   params.VenueID,
		"network_id": s.conn.creds.NetworkID,
	}
	if params.Duration > 0 {
		payload["duration"] = params.Duration
	}

	resp, err := s.conn.post(ctx, "/v1/loops", payload)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// List returns the network's loops. params may be nil to use the server's
// pagination defaults.
func (s *LoopsService) List(ctx context.Context, params *LoopListParams) (any, error) {
	query := map[string]string{"network_id": s.conn.creds.NetworkID}

	if params != nil {
		if err := validateParams(params); err != nil {
			return nil, err
		}
		if params.VenueID != "" {
			query["venue_id"] = params.VenueID
		}
		if params.Page > 0 {
			query["page"] = strconv.Itoa(params.Page)
		}
		if params.PerPage > 0 {
			query["per_page"] = strconv.Itoa(params.PerPage)
		}
	}

	resp, err := s.conn.get(ctx, "/v1/loops", query)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// Get returns a single loop by id.
func (s *LoopsService) Get(ctx context.Context, id string) (any, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	resp, err := s.conn.get(ctx, "/v1/loops/"+url.PathEscape(id), map[string]string{
		"network_id": s.conn.creds.NetworkID,
	})
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// AddSlot schedules a slot in a loop.
func (s *LoopsService) AddSlot(ctx context.Context, loopID string, params *SlotParams) (any, error) {
	if err := requireID("loopID", loopID); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, missingField("params")
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"type":       params.Type,
		"duration":   params.Duration,
		"network_id": s.conn.creds.NetworkID,
	}
	if params.Position > 0 {
		payload["position"] = params.Position
	}
	if params.ContentURL != "" {
		payload["content_url"] = params.ContentURL
	}

	resp, err := s.conn.post(ctx, "/v1/loops/"+url.PathEscape(loopID)+"/slots", payload)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// Slots returns the slots scheduled in a loop, in play order.
func (s *LoopsService) Slots(ctx context.Context, loopID string) (any, error) {
	if err := requireID("loopID", loopID); err != nil {
		return nil, err
	}

	resp, err := s.conn.get(ctx, "/v1/loops/"+url.PathEscape(loopID)+"/slots", map[string]string{
		"network_id": s.conn.creds.NetworkID,
	})
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}
