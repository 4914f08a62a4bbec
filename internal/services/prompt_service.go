package services

import (
	"fmt"
	"strings"

	"tripplanner/internal/models/request_models"
)

// itineraryTemplate is the exact layout ParseItinerary understands.
const itineraryTemplate = `Day X:
Morning Plan:
Description: [Brief description]
Estimated Cost: $X
Activities:
- Activity 1
- Activity 2
Midday Plan:
Description: [Brief description]
Estimated Cost: $X
Activities:
- Activity 1
- Activity 2
Afternoon/Evening Plan:
Description: [Brief description]
Estimated Cost: $X
Activities:
- Activity 1
- Activity 2
Recommended Restaurants:
- Restaurant 1
- Restaurant 2`

type PromptServiceInterface interface {
	BuildItineraryPrompt(req request_models.TripRequest) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

func (p *PromptService) BuildItineraryPrompt(req request_models.TripRequest) string {
	return BuildItineraryPrompt(req)
}

// BuildItineraryPrompt renders the trip request into the instruction sent to the model.
// It does no validation; callers submit requests that already passed TripService checks.
func BuildItineraryPrompt(req request_models.TripRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Generate personalized daily plan recommendations for a trip to %s ", req.Destination))

	start, hasStart := req.Start()
	dateStr := ""
	if hasStart {
		dateStr = start.Format("January 2006")
		prompt.WriteString(fmt.Sprintf("starting on %s ", dateStr))
	}

	children := "without children"
	if req.HasChildren() {
		children = fmt.Sprintf("including %d child(ren)", req.Children)
	}
	prompt.WriteString(fmt.Sprintf("for %d days with %d traveller(s) %s. ", req.Duration, req.Travellers, children))
	prompt.WriteString(fmt.Sprintf("The travellers are interested in %s. ", req.Interests))

	if req.AccommodationLocation != "" {
		prompt.WriteString(fmt.Sprintf("They are staying near %s. ", req.AccommodationLocation))
	}
	if req.PetsAllowed {
		prompt.WriteString("They are travelling with pets, so include pet-friendly options. ")
	}
	if req.WheelchairAccessible {
		prompt.WriteString("All recommendations must be wheelchair accessible. ")
	}
	if len(req.Transportation) > 0 {
		prompt.WriteString(fmt.Sprintf("Preferred modes of transportation: %s. ", strings.Join(req.Transportation, ", ")))
	}

	prompt.WriteString(fmt.Sprintf("The total budget for the trip is $%.2f, ", req.TotalBudget()))
	prompt.WriteString(fmt.Sprintf("which is approximately $%.2f per person per day. ", req.BudgetPerPersonPerDay))
	prompt.WriteString("Please ensure that the recommended activities and restaurants fit within this budget. ")

	if req.PlanType != "" {
		prompt.WriteString(fmt.Sprintf("Focus on providing %s. ", strings.ToLower(req.PlanType)))
	}
	if req.RandomizeInterests {
		prompt.WriteString("Please provide alternative recommendations that differ from their stated hobbies/interests. ")
	}

	prompt.WriteString("For each day, provide recommendations for morning, midday, afternoon/evening activities, ")
	prompt.WriteString("and recommended restaurants, including estimated costs. ")
	if hasStart {
		prompt.WriteString(fmt.Sprintf("Please consider the season and weather for %s. ", dateStr))
	}

	prompt.WriteString("Please format the response as follows:\n\n")
	prompt.WriteString(itineraryTemplate)
	prompt.WriteString("\n\nPlease ensure each day's plan follows this exact format.")

	return prompt.String()
}
