package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tripplanner/internal/config"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

var (
	planTrip    request_models.TripRequest
	planPDFPath string
)

var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate recommendations with the configured provider",
	Long: `Runs the whole pipeline: builds the prompt, calls the completion provider
configured through the environment, parses the reply and prints the itinerary.
With --pdf every plan is selected for the whole group and the report is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		completionCfg, err := cfg.CompletionConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		client, err := utils.NewCompletionClient(ctx, completionCfg)
		if err != nil {
			return err
		}
		if closer, ok := client.(io.Closer); ok {
			defer closer.Close()
		}

		pipeline := NewPlanPipeline(client, viper.GetString("assets"))
		result, err := pipeline.Run(ctx, planTrip, planPDFPath != "")
		if err != nil {
			return err
		}

		if err := WriteOutput(cmd.OutOrStdout(), viper.GetString("output"), result.Itinerary); err != nil {
			return err
		}
		for _, w := range result.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", w)
		}
		if planPDFPath == "" {
			return nil
		}
		if err := os.WriteFile(planPDFPath, result.PDF, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", planPDFPath, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s (%s)\n", planPDFPath, result.Report.TotalLabel)
		return nil
	},
}

func init() {
	addTripFlags(PlanCmd, &planTrip)
	PlanCmd.Flags().StringVar(&planPDFPath, "pdf", "", "write the trip report to this file")
}

type PlanResult struct {
	Itinerary response_models.GeneratedItinerary
	Report    response_models.TripReport
	PDF       []byte
	Warnings  []string
}

// PlanPipeline drives the same services the HTTP API uses against a throwaway session.
type PlanPipeline struct {
	trips      services.TripServiceInterface
	itinerary  services.ItineraryServiceInterface
	selections services.SelectionServiceInterface
	reports    services.ReportServiceInterface
}

func NewPlanPipeline(client utils.CompletionClientInterface, assetDir string) *PlanPipeline {
	prompts := services.NewPromptService()
	return &PlanPipeline{
		trips:      services.NewTripService(prompts, nil),
		itinerary:  services.NewItineraryService(prompts, client),
		selections: services.NewSelectionService(assetDir),
		reports:    services.NewReportService(assetDir),
	}
}

func (p *PlanPipeline) Run(ctx context.Context, trip request_models.TripRequest, withReport bool) (PlanResult, error) {
	state := memcache.NewSessionState("tripctl")

	if _, err := p.trips.SubmitTrip(ctx, state, trip); err != nil {
		return PlanResult{}, err
	}
	generated, err := p.itinerary.GenerateItinerary(ctx, state)
	if err != nil {
		return PlanResult{}, err
	}

	result := PlanResult{Itinerary: generated}
	if !withReport {
		return result, nil
	}

	travellers, _ := state.Trip()
	for _, day := range generated.Itinerary.Days {
		for _, section := range day.Sections {
			resp, err := p.selections.ToggleSelection(ctx, state, request_models.ToggleSelectionRequest{
				Day:      day.Label,
				Section:  section.Label,
				Selected: true,
				People:   travellers.Travellers,
			})
			if err != nil {
				return result, err
			}
			result.Warnings = append(result.Warnings, resp.Warnings...)
		}
	}

	pdf, report, err := p.reports.RenderPDF(ctx, state)
	if err != nil {
		return result, err
	}
	result.PDF = pdf
	result.Report = report
	result.Warnings = append(result.Warnings, report.Warnings...)
	return result, nil
}
