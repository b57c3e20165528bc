package signalboard

import "context"

// AdsService requests ad decisions for playback slots. Ad requests originate
// from devices, and the device wire protocol carries the network credentials
// inside the request body.
type AdsService struct {
	conn *connection
}

// AdRequest describes the slot an ad decision is requested for.
type AdRequest struct {
	// Latitude and Longitude locate the screen requesting the ad.
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`

	// DeviceID identifies the requesting screen.
	DeviceID string

	// VenueID scopes the request to a registered venue.
	VenueID string

	// SlotType selects the slot kind: ad, content or programmatic.
	SlotType string `validate:"omitempty,oneof=ad content programmatic"`

	// Duration is the length of the slot to fill, in seconds.
	Duration int `validate:"omitempty,gt=0"`
}

// Request asks the network for an ad decision. Parameters are validated
// before any I/O; the decoded response body is returned verbatim with no
// response schema enforced.
func (s *AdsService) Request(ctx context.Context, req *AdRequest) (any, error) {
	if req == nil {
		return nil, missingField("request")
	}
	if err := validateParams(req); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"latitude":   req.Latitude,
		"longitude":  req.Longitude,
		"network_id": s.conn.creds.NetworkID,
		"api_key":    s.conn.creds.APIKey,
	}
	if req.DeviceID != "" {
		payload["device_id"] = req.DeviceID
	}
	if req.VenueID != "" {
		payload["venue_id"] = req.VenueID
	}
	if req.SlotType != "" {
		payload["slot_type"] = req.SlotType
	}
	if req.Duration > 0 {
		payload["duration"] = req.Duration
	}

	resp, err := s.conn.post(ctx, "/v1/ad_requests", payload)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}
