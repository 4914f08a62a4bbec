package services

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

var transportLinkLabels = map[string]string{
	"Car":              "Click here to rent a car!",
	"Public Transport": "Click here to view public transport details!",
	"Boat":             "Click here to view transport via boat!",
	"Bicycle":          "Click here to view bicycle routes!",
	"Walking":          "Click here to view walking routes!",
}

type TripServiceInterface interface {
	SubmitTrip(ctx context.Context, state *memcache.SessionState, req request_models.TripRequest) (response_models.TripResponse, error)
	GetTrip(ctx context.Context, state *memcache.SessionState) (response_models.TripResponse, error)
	PreviewPrompt(ctx context.Context, state *memcache.SessionState) (string, error)
}

type TripService struct {
	promptService  PromptServiceInterface
	transportLinks map[string]string
}

func NewTripService(promptService PromptServiceInterface, transportLinks map[string]string) TripServiceInterface {
	return &TripService{
		promptService:  promptService,
		transportLinks: transportLinks,
	}
}

func (t *TripService) SubmitTrip(ctx context.Context, state *memcache.SessionState, req request_models.TripRequest) (response_models.TripResponse, error) {
	normalized, err := ValidateTripRequest(req)
	if err != nil {
		return response_models.TripResponse{}, err
	}

	state.SetTrip(normalized)
	log.Printf("Session %s: trip details saved for %s (%d days)", state.ID, normalized.Destination, normalized.Duration)

	return t.tripResponse(normalized), nil
}

func (t *TripService) GetTrip(ctx context.Context, state *memcache.SessionState) (response_models.TripResponse, error) {
	trip, ok := state.Trip()
	if !ok {
		return response_models.TripResponse{}, utils.ErrTripRequestMissing
	}
	return t.tripResponse(trip), nil
}

func (t *TripService) PreviewPrompt(ctx context.Context, state *memcache.SessionState) (string, error) {
	trip, ok := state.Trip()
	if !ok {
		return "", utils.ErrTripRequestMissing
	}
	return t.promptService.BuildItineraryPrompt(trip), nil
}

func (t *TripService) tripResponse(trip request_models.TripRequest) response_models.TripResponse {
	resp := response_models.TripResponse{Trip: trip}
	for _, mode := range trip.Transportation {
		url, ok := t.transportLinks[mode]
		if !ok || url == "" {
			continue
		}
		resp.TransportLinks = append(resp.TransportLinks, response_models.TransportLink{
			Mode:  mode,
			Label: transportLinkLabels[mode],
			URL:   url,
		})
	}
	return resp
}

// ValidateTripRequest trims the form input and rejects missing or out-of-range fields.
// Missing required fields yield ErrIncompleteInput, malformed ones ErrInvalidInput.
func ValidateTripRequest(req request_models.TripRequest) (request_models.TripRequest, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	req.Interests = strings.TrimSpace(req.Interests)
	req.AccommodationLocation = strings.TrimSpace(req.AccommodationLocation)
	req.StartDate = strings.TrimSpace(req.StartDate)
	req.PlanType = strings.TrimSpace(req.PlanType)

	if req.Duration < 0 || req.Travellers < 0 || req.Children < 0 || req.BudgetPerPersonPerDay < 0 {
		return req, fmt.Errorf("%w: numeric fields must not be negative", utils.ErrInvalidInput)
	}

	var missing []string
	if req.Destination == "" {
		missing = append(missing, "destination")
	}
	if req.Duration == 0 {
		missing = append(missing, "duration")
	}
	if req.Travellers == 0 {
		missing = append(missing, "travellers")
	}
	if req.Interests == "" {
		missing = append(missing, "interests")
	}
	if req.BudgetPerPersonPerDay == 0 {
		missing = append(missing, "budget_per_person_per_day")
	}
	if len(missing) > 0 {
		return req, fmt.Errorf("%w: %s", utils.ErrIncompleteInput, strings.Join(missing, ", "))
	}

	if req.Children > req.Travellers {
		return req, fmt.Errorf("%w: children cannot outnumber travellers", utils.ErrInvalidInput)
	}
	if req.StartDate != "" {
		if _, ok := req.Start(); !ok {
			return req, fmt.Errorf("%w: start_date must be formatted YYYY-MM-DD", utils.ErrInvalidInput)
		}
	}
	if req.PlanType != "" && !slices.Contains(request_models.PlanTypes, req.PlanType) {
		return req, fmt.Errorf("%w: unknown plan type %q", utils.ErrInvalidInput, req.PlanType)
	}

	var modes []string
	for _, mode := range req.Transportation {
		mode = strings.TrimSpace(mode)
		if !slices.Contains(request_models.TransportationModes, mode) {
			return req, fmt.Errorf("%w: unknown transportation mode %q", utils.ErrInvalidInput, mode)
		}
		if !slices.Contains(modes, mode) {
			modes = append(modes, mode)
		}
	}
	req.Transportation = modes

	return req, nil
}
