package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, state *memcache.SessionState) (response_models.GeneratedItinerary, error)
	ParseRawItinerary(ctx context.Context, state *memcache.SessionState, text string) (response_models.GeneratedItinerary, error)
	GetItinerary(ctx context.Context, state *memcache.SessionState) (response_models.GeneratedItinerary, error)
}

type ItineraryService struct {
	promptService PromptServiceInterface
	completion    utils.CompletionClientInterface
}

func NewItineraryService(promptService PromptServiceInterface, completion utils.CompletionClientInterface) ItineraryServiceInterface {
	return &ItineraryService{
		promptService: promptService,
		completion:    completion,
	}
}

// GenerateItinerary asks the model for recommendations for the session's trip.
// A failed call leaves the previous itinerary and selections untouched.
func (i *ItineraryService) GenerateItinerary(ctx context.Context, state *memcache.SessionState) (response_models.GeneratedItinerary, error) {
	trip, ok := state.Trip()
	if !ok {
		return response_models.GeneratedItinerary{}, utils.ErrTripRequestMissing
	}

	startTime := time.Now()
	prompt := i.promptService.BuildItineraryPrompt(trip)

	raw, err := i.completion.Complete(ctx, prompt, nil)
	if err != nil {
		if !errors.Is(err, utils.ErrCompletionUnavailable) {
			err = fmt.Errorf("%w: %v", utils.ErrCompletionUnavailable, err)
		}
		log.Printf("Session %s: itinerary generation failed after %s: %v", state.ID, time.Since(startTime), err)
		return response_models.GeneratedItinerary{}, err
	}

	itinerary := ParseItinerary(raw)
	state.SetItinerary(itinerary, raw)
	log.Printf("Session %s: %s returned %d day(s) in %s", state.ID, i.completion.Name(), len(itinerary.Days), time.Since(startTime))

	return response_models.GeneratedItinerary{
		Itinerary:     itinerary,
		RawCompletion: raw,
		Provider:      i.completion.Name(),
	}, nil
}

// ParseRawItinerary stores an itinerary parsed from text the client already has.
func (i *ItineraryService) ParseRawItinerary(ctx context.Context, state *memcache.SessionState, text string) (response_models.GeneratedItinerary, error) {
	itinerary := ParseItinerary(text)
	state.SetItinerary(itinerary, text)

	return response_models.GeneratedItinerary{
		Itinerary:     itinerary,
		RawCompletion: text,
	}, nil
}

func (i *ItineraryService) GetItinerary(ctx context.Context, state *memcache.SessionState) (response_models.GeneratedItinerary, error) {
	itinerary, raw, ok := state.Itinerary()
	if !ok {
		return response_models.GeneratedItinerary{}, utils.ErrItineraryMissing
	}
	return response_models.GeneratedItinerary{
		Itinerary:     itinerary,
		RawCompletion: raw,
	}, nil
}
