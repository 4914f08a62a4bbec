package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/pdf"
	"tripplanner/pkg/utils"
)

const (
	reportImageWidth = 100.0
	reportQRSize     = 30.0
	currencySymbols  = "$€£¥"
)

type ReportServiceInterface interface {
	BuildReport(ctx context.Context, state *memcache.SessionState) (response_models.TripReport, error)
	RenderPDF(ctx context.Context, state *memcache.SessionState) ([]byte, response_models.TripReport, error)
	ConfirmTrip(ctx context.Context, state *memcache.SessionState) (response_models.TripReport, error)
}

type ReportService struct {
	assetDir string
}

func NewReportService(assetDir string) ReportServiceInterface {
	return &ReportService{assetDir: assetDir}
}

func (r *ReportService) BuildReport(ctx context.Context, state *memcache.SessionState) (response_models.TripReport, error) {
	trip, ok := state.Trip()
	if !ok {
		return response_models.TripReport{}, utils.ErrTripRequestMissing
	}
	return BuildTripReport(trip, state.Selections()), nil
}

// RenderPDF builds the downloadable report. Images that cannot be found or
// decoded are skipped and listed in the report warnings.
func (r *ReportService) RenderPDF(ctx context.Context, state *memcache.SessionState) ([]byte, response_models.TripReport, error) {
	report, err := r.BuildReport(ctx, state)
	if err != nil {
		return nil, response_models.TripReport{}, err
	}
	if len(report.Activities) == 0 {
		return nil, report, utils.ErrNothingSelected
	}

	doc := pdf.New()
	doc.Title(report.Title)

	doc.Gap(10)
	doc.Line("Trip Details:")
	for _, d := range report.Details {
		doc.Line(fmt.Sprintf("%s: %s", d.Label, d.Value))
	}

	doc.Gap(10)
	doc.Line("Selected Plans:")
	for _, a := range report.Activities {
		doc.Gap(5)
		doc.BoldLine(a.Label)
		doc.Line(fmt.Sprintf("Plan: %s", memcache.SelectionKey(a.Day, a.Section)))
		doc.Line(fmt.Sprintf("Description: %s", a.Description))
		doc.Line(fmt.Sprintf("Estimated Cost: %s", a.EstimatedCost))
		doc.Line(fmt.Sprintf("Number of People: %d", a.People))

		if a.Image == "" {
			continue
		}
		if warning := r.embedImage(doc, a.Image); warning != "" {
			log.Printf("Session %s: %s", state.ID, warning)
			report.Warnings = append(report.Warnings, warning)
		}
	}

	doc.Gap(10)
	doc.BoldLine(report.TotalLabel)

	doc.Gap(5)
	if err := doc.QRCode(report.Reference, reportQRSize); err != nil {
		log.Printf("Session %s: %v", state.ID, err)
	}
	doc.Line(fmt.Sprintf("Reference: %s", report.Reference))

	data, err := doc.Bytes()
	if err != nil {
		return nil, report, fmt.Errorf("%w: %v", utils.ErrReportRender, err)
	}

	return data, report, nil
}

// ConfirmTrip is the final step of the flow; it needs at least one selected plan.
func (r *ReportService) ConfirmTrip(ctx context.Context, state *memcache.SessionState) (response_models.TripReport, error) {
	report, err := r.BuildReport(ctx, state)
	if err != nil {
		return response_models.TripReport{}, err
	}
	if len(report.Activities) == 0 {
		return report, utils.ErrNothingSelected
	}
	log.Printf("Session %s: trip to %s confirmed with %d plan(s), %s", state.ID, reportDestination(report), len(report.Activities), report.TotalLabel)
	return report, nil
}

func (r *ReportService) embedImage(doc *pdf.Document, image string) string {
	path, err := utils.ResolveAsset(r.assetDir, image)
	if err != nil {
		return fmt.Sprintf("Image %s not found.", image)
	}
	if err := doc.ImageFile(path, reportImageWidth); err != nil {
		return fmt.Sprintf("Error loading image %s.", image)
	}
	return ""
}

func reportDestination(report response_models.TripReport) string {
	return strings.TrimPrefix(report.Title, "Trip Report for ")
}

// BuildTripReport combines the trip details and the selected plans into the report view.
func BuildTripReport(trip request_models.TripRequest, selections []response_models.SelectionRecord) response_models.TripReport {
	activities := make([]response_models.ReportActivity, 0, len(selections))
	for i, s := range selections {
		activities = append(activities, response_models.ReportActivity{
			Label:         fmt.Sprintf("Activity #%d", i+1),
			Day:           s.Day,
			Section:       s.Section,
			Description:   s.Description,
			EstimatedCost: s.EstimatedCost,
			People:        s.People,
			Image:         s.Image,
		})
	}

	total := ComputeTotal(selections)
	return response_models.TripReport{
		Reference:  uuid.New().String(),
		Title:      fmt.Sprintf("Trip Report for %s", trip.Destination),
		Details:    TripDetails(trip),
		Activities: activities,
		TotalCost:  total,
		TotalLabel: fmt.Sprintf("Total Estimated Cost: $%.2f", total),
	}
}

// TripDetails lists the trip fields in report order, one line per field.
func TripDetails(trip request_models.TripRequest) []response_models.DetailLine {
	dates := "Not specified"
	if start, ok := trip.Start(); ok {
		end := start.AddDate(0, 0, trip.Duration-1)
		dates = fmt.Sprintf("%s to %s", start.Format(request_models.DateLayout), end.Format(request_models.DateLayout))
	}

	return []response_models.DetailLine{
		{Label: "Trip Dates", Value: dates},
		{Label: "Duration", Value: fmt.Sprintf("%d days", trip.Duration)},
		{Label: "Accommodation Location", Value: orDefault(trip.AccommodationLocation, "Not specified")},
		{Label: "Number of Travellers", Value: strconv.Itoa(trip.Travellers)},
		{Label: "Number of Children", Value: strconv.Itoa(trip.Children)},
		{Label: "Pets Allowed", Value: yesNo(trip.PetsAllowed)},
		{Label: "Wheelchair Accessible Required", Value: yesNo(trip.WheelchairAccessible)},
		{Label: "Preferred Transportation", Value: orDefault(strings.Join(trip.Transportation, ", "), "N/A")},
		{Label: "Interests", Value: orDefault(trip.Interests, "N/A")},
		{Label: "Budget per Person per Day", Value: fmt.Sprintf("$%.2f", trip.BudgetPerPersonPerDay)},
		{Label: "Plan Type Preference", Value: orDefault(trip.PlanType, "N/A")},
	}
}

// ParseCost reads a per-person cost such as "$25" or "25.50".
// Text that is not a plain number after removing the currency symbol reports false.
func ParseCost(text string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.Trim(strings.TrimSpace(text), currencySymbols))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ComputeTotal sums cost × people over the selections; unparseable costs add nothing.
func ComputeTotal(selections []response_models.SelectionRecord) float64 {
	total := 0.0
	for _, s := range selections {
		if cost, ok := ParseCost(s.EstimatedCost); ok {
			total += cost * float64(s.People)
		}
	}
	return total
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
