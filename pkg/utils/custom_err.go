package utils

import "errors"

var (
	ErrIncompleteInput       = errors.New("required trip details are missing")
	ErrInvalidInput          = errors.New("invalid input")
	ErrCompletionUnavailable = errors.New("completion unavailable")
	ErrTripRequestMissing    = errors.New("trip details have not been submitted")
	ErrItineraryMissing      = errors.New("no itinerary has been generated")
	ErrSectionNotFound       = errors.New("plan section not found")
	ErrNothingSelected       = errors.New("no plans selected")
	ErrSessionNotFound       = errors.New("session not found")
	ErrInvalidSessionToken   = errors.New("invalid session token")
	ErrAssetMissing          = errors.New("image asset not found")
	ErrReportRender          = errors.New("report rendering failed")
)
