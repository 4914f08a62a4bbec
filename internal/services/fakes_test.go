package services

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/memcache"
)

type fakeCompletion struct {
	reply     string
	err       error
	prompts   []string
	histories [][]string
}

func (f *fakeCompletion) Complete(ctx context.Context, prompt string, history []string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.histories = append(f.histories, append([]string(nil), history...))
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeCompletion) Name() string {
	return "fake"
}

var errUpstream = errors.New("upstream 503")

func validTrip() request_models.TripRequest {
	return request_models.TripRequest{
		Destination:           "Valencia",
		Duration:              3,
		Travellers:            2,
		Interests:             "food, architecture",
		BudgetPerPersonPerDay: 100,
		StartDate:             "2025-03-10",
		Transportation:        []string{"Walking"},
		PlanType:              request_models.PlanTypeLocal,
	}
}

// plannedState returns a session holding validTrip and the itinerary parsed from twoDayReply.
func plannedState(t *testing.T) *memcache.SessionState {
	t.Helper()
	state := memcache.NewSessionState("test-session")
	state.SetTrip(validTrip())
	state.SetItinerary(ParseItinerary(twoDayReply), twoDayReply)
	return state
}

func writeTestImage(t *testing.T, dir, name string) {
	t.Helper()
	img := imaging.New(8, 8, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	require.NoError(t, imaging.Save(img, filepath.Join(dir, name)))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
