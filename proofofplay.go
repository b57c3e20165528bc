package signalboard

import "context"

// ProofOfPlayService reports completed ad playbacks back to the network.
type ProofOfPlayService struct {
	conn *connection
}

// ProofOfPlay records one completed playback of a delivered ad.
type ProofOfPlay struct {
	// AdID is the decision identifier returned with the ad.
	AdID string `validate:"required"`

	// DisplayTime is when playback started, as a Unix timestamp in seconds.
	DisplayTime int64 `validate:"required,gt=0"`

	// Duration is how long the ad actually played, in seconds.
	Duration int `validate:"omitempty,gt=0"`

	// DeviceID identifies the screen that played the ad.
	DeviceID string
}

// Submit reports a completed playback. Submissions are retried on transient
// failures like every other request; the proof-of-play endpoint is not
// idempotent, so a retry after a lost response can record the playback twice.
// Networks needing exact playback accounting deduplicate on (AdID,
// DisplayTime) server-side.
func (s *ProofOfPlayService) Submit(ctx context.Context, pop *ProofOfPlay) (any, error) {
	if pop == nil {
		return nil, missingField("proof of play")
	}
	if err := validateParams(pop); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"ad_id":        pop.AdID,
		"display_time": pop.DisplayTime,
		"network_id":   s.conn.creds.NetworkID,
		"api_key":      s.conn.creds.APIKey,
	}
	if pop.Duration > 0 {
		payload["duration"] = pop.Duration
	}
	if pop.DeviceID != "" {
		payload["device_id"] = pop.DeviceID
	}

	resp, err := s.conn.post(ctx, "/v1/proof_of_play", payload)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}
