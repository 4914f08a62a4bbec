package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

const sampleReply = `Day 1:
Morning Plan:
Description: Beach walk
Estimated Cost: $5
Activities:
- Sunrise
Afternoon/Evening Plan:
Description: Tapas crawl
Estimated Cost: $30
Activities:
- Bar Pilar
Recommended Restaurants:
- La Pepica
`

type stubCompletion struct {
	reply string
	err   error
}

func (s *stubCompletion) Complete(ctx context.Context, prompt string, history []string) (string, error) {
	return s.reply, s.err
}

func (s *stubCompletion) Name() string { return "stub" }

var _ utils.CompletionClientInterface = (*stubCompletion)(nil)

func TestWriteOutput(t *testing.T) {
	it := response_models.Itinerary{Days: []response_models.DayPlan{{
		Label:    "Day 1:",
		Sections: []response_models.PlanSection{{Label: "Morning Plan:", Description: "Walk", EstimatedCost: "$10", Activities: []string{"Stroll"}}},
	}}}

	var jsonOut bytes.Buffer
	require.NoError(t, WriteOutput(&jsonOut, "json", it))
	var decoded response_models.Itinerary
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	assert.Equal(t, it, decoded)

	var yamlOut bytes.Buffer
	require.NoError(t, WriteOutput(&yamlOut, "YAML", it))
	var fromYAML response_models.Itinerary
	require.NoError(t, yaml.Unmarshal(yamlOut.Bytes(), &fromYAML))
	assert.Equal(t, it, fromYAML)

	assert.Error(t, WriteOutput(&bytes.Buffer{}, "xml", it))
}

func TestParseCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reply.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleReply), 0o644))

	var out bytes.Buffer
	ParseCmd.SetOut(&out)
	require.NoError(t, ParseCmd.RunE(ParseCmd, []string{path}))

	var it response_models.Itinerary
	require.NoError(t, json.Unmarshal(out.Bytes(), &it))
	require.Len(t, it.Days, 1)
	assert.Len(t, it.Days[0].Sections, 2)
	assert.Equal(t, []string{"La Pepica"}, it.Days[0].Restaurants)

	out.Reset()
	ParseCmd.SetIn(strings.NewReader("no itinerary here"))
	require.NoError(t, ParseCmd.RunE(ParseCmd, []string{"-"}))
	assert.JSONEq(t, `{"days":[]}`, out.String())

	assert.Error(t, ParseCmd.RunE(ParseCmd, []string{filepath.Join(t.TempDir(), "missing.txt")}))
}

func TestPromptCmd(t *testing.T) {
	promptTrip = request_models.TripRequest{
		Destination:           "Valencia",
		Duration:              2,
		Travellers:            1,
		Interests:             "beaches",
		BudgetPerPersonPerDay: 50,
	}
	t.Cleanup(func() { promptTrip = request_models.TripRequest{} })

	var out bytes.Buffer
	PromptCmd.SetOut(&out)
	require.NoError(t, PromptCmd.RunE(PromptCmd, nil))
	assert.Contains(t, out.String(), "trip to Valencia")

	promptTrip.Interests = ""
	assert.ErrorIs(t, PromptCmd.RunE(PromptCmd, nil), utils.ErrIncompleteInput)
}

func TestPlanPipeline(t *testing.T) {
	trip := request_models.TripRequest{
		Destination:           "Valencia",
		Duration:              1,
		Travellers:            3,
		Interests:             "beaches",
		BudgetPerPersonPerDay: 50,
	}
	pipeline := NewPlanPipeline(&stubCompletion{reply: sampleReply}, t.TempDir())

	withoutReport, err := pipeline.Run(context.Background(), trip, false)
	require.NoError(t, err)
	assert.Len(t, withoutReport.Itinerary.Itinerary.Days, 1)
	assert.Nil(t, withoutReport.PDF)

	result, err := pipeline.Run(context.Background(), trip, true)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF-")))
	assert.Len(t, result.Report.Activities, 2)
	assert.Equal(t, "Total Estimated Cost: $105.00", result.Report.TotalLabel)
	assert.Empty(t, result.Warnings)
}

func TestPlanPipeline_CompletionFailure(t *testing.T) {
	pipeline := NewPlanPipeline(&stubCompletion{err: errors.New("offline")}, t.TempDir())

	_, err := pipeline.Run(context.Background(), request_models.TripRequest{
		Destination: "Valencia", Duration: 1, Travellers: 1, Interests: "x", BudgetPerPersonPerDay: 1,
	}, true)

	assert.ErrorIs(t, err, utils.ErrCompletionUnavailable)
}
