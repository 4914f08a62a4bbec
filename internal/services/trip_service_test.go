package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

func TestValidateTripRequest(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*request_models.TripRequest)
		want   error
	}{
		{"valid", func(r *request_models.TripRequest) {}, nil},
		{"missing destination", func(r *request_models.TripRequest) { r.Destination = "   " }, utils.ErrIncompleteInput},
		{"missing duration", func(r *request_models.TripRequest) { r.Duration = 0 }, utils.ErrIncompleteInput},
		{"missing travellers", func(r *request_models.TripRequest) { r.Travellers = 0 }, utils.ErrIncompleteInput},
		{"missing interests", func(r *request_models.TripRequest) { r.Interests = "" }, utils.ErrIncompleteInput},
		{"zero budget", func(r *request_models.TripRequest) { r.BudgetPerPersonPerDay = 0 }, utils.ErrIncompleteInput},
		{"negative budget", func(r *request_models.TripRequest) { r.BudgetPerPersonPerDay = -5 }, utils.ErrInvalidInput},
		{"negative duration", func(r *request_models.TripRequest) { r.Duration = -1 }, utils.ErrInvalidInput},
		{"too many children", func(r *request_models.TripRequest) { r.Children = 3 }, utils.ErrInvalidInput},
		{"bad date", func(r *request_models.TripRequest) { r.StartDate = "10/03/2025" }, utils.ErrInvalidInput},
		{"unknown plan type", func(r *request_models.TripRequest) { r.PlanType = "Luxury" }, utils.ErrInvalidInput},
		{"unknown transport", func(r *request_models.TripRequest) { r.Transportation = []string{"Teleport"} }, utils.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTrip()
			tt.modify(&req)

			_, err := ValidateTripRequest(req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateTripRequest_ListsMissingFields(t *testing.T) {
	_, err := ValidateTripRequest(request_models.TripRequest{})

	require.ErrorIs(t, err, utils.ErrIncompleteInput)
	assert.Contains(t, err.Error(), "destination, duration, travellers, interests, budget_per_person_per_day")
}

func TestValidateTripRequest_Normalizes(t *testing.T) {
	req := validTrip()
	req.Destination = "  Valencia "
	req.Transportation = []string{" Walking", "Boat", "Walking"}

	got, err := ValidateTripRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "Valencia", got.Destination)
	assert.Equal(t, []string{"Walking", "Boat"}, got.Transportation)
}

func TestTripService_SubmitTripResetsPlanning(t *testing.T) {
	svc := NewTripService(NewPromptService(), map[string]string{"Walking": "https://example.test/walk"})
	state := plannedState(t)
	state.ToggleSelection("Day 1: - Morning Plan:", selectionRecord(), true)

	resp, err := svc.SubmitTrip(context.Background(), state, validTrip())

	require.NoError(t, err)
	assert.Equal(t, "Valencia", resp.Trip.Destination)
	require.Len(t, resp.TransportLinks, 1)
	assert.Equal(t, "Walking", resp.TransportLinks[0].Mode)
	assert.Equal(t, "https://example.test/walk", resp.TransportLinks[0].URL)
	assert.Equal(t, "Click here to view walking routes!", resp.TransportLinks[0].Label)

	_, _, ok := state.Itinerary()
	assert.False(t, ok)
	assert.Empty(t, state.Selections())
}

func TestTripService_InvalidSubmissionLeavesState(t *testing.T) {
	svc := NewTripService(NewPromptService(), nil)
	state := plannedState(t)

	bad := validTrip()
	bad.Destination = ""
	_, err := svc.SubmitTrip(context.Background(), state, bad)

	require.ErrorIs(t, err, utils.ErrIncompleteInput)
	trip, ok := state.Trip()
	require.True(t, ok)
	assert.Equal(t, "Valencia", trip.Destination)
	_, _, ok = state.Itinerary()
	assert.True(t, ok)
}

func TestTripService_GetTripAndPrompt(t *testing.T) {
	svc := NewTripService(NewPromptService(), nil)
	state := memcache.NewSessionState("s")

	_, err := svc.GetTrip(context.Background(), state)
	assert.ErrorIs(t, err, utils.ErrTripRequestMissing)
	_, err = svc.PreviewPrompt(context.Background(), state)
	assert.ErrorIs(t, err, utils.ErrTripRequestMissing)

	_, err = svc.SubmitTrip(context.Background(), state, validTrip())
	require.NoError(t, err)

	resp, err := svc.GetTrip(context.Background(), state)
	require.NoError(t, err)
	assert.Empty(t, resp.TransportLinks)

	prompt, err := svc.PreviewPrompt(context.Background(), state)
	require.NoError(t, err)
	assert.Contains(t, prompt, "trip to Valencia")
}
