package response_models

import "tripplanner/internal/models/request_models"

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type TransportLink struct {
	Mode  string `json:"mode"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type TripResponse struct {
	Trip           request_models.TripRequest `json:"trip"`
	TransportLinks []TransportLink            `json:"transport_links,omitempty"`
}
