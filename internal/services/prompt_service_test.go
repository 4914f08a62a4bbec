package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildItineraryPrompt(t *testing.T) {
	trip := validTrip()
	trip.Children = 1
	trip.AccommodationLocation = "Ruzafa"
	trip.PetsAllowed = true
	trip.WheelchairAccessible = true
	trip.Transportation = []string{"Walking", "Public Transport"}

	prompt := NewPromptService().BuildItineraryPrompt(trip)

	assert.True(t, strings.HasPrefix(prompt, "Generate personalized daily plan recommendations for a trip to Valencia starting on March 2025 "))
	assert.Contains(t, prompt, "for 3 days with 2 traveller(s) including 1 child(ren).")
	assert.Contains(t, prompt, "interested in food, architecture.")
	assert.Contains(t, prompt, "staying near Ruzafa.")
	assert.Contains(t, prompt, "pet-friendly")
	assert.Contains(t, prompt, "wheelchair accessible")
	assert.Contains(t, prompt, "Preferred modes of transportation: Walking, Public Transport.")
	assert.Contains(t, prompt, "The total budget for the trip is $600.00")
	assert.Contains(t, prompt, "approximately $100.00 per person per day")
	assert.Contains(t, prompt, "Focus on providing local plans.")
	assert.Contains(t, prompt, "consider the season and weather for March 2025")
	assert.Contains(t, prompt, itineraryTemplate)
	assert.True(t, strings.HasSuffix(prompt, "Please ensure each day's plan follows this exact format."))
	assert.NotContains(t, prompt, "differ from their stated hobbies")
}

func TestBuildItineraryPrompt_OptionalFieldsOmitted(t *testing.T) {
	trip := validTrip()
	trip.StartDate = ""
	trip.Transportation = nil
	trip.PlanType = ""

	prompt := BuildItineraryPrompt(trip)

	assert.NotContains(t, prompt, "starting on")
	assert.NotContains(t, prompt, "season and weather")
	assert.NotContains(t, prompt, "staying near")
	assert.NotContains(t, prompt, "pet-friendly")
	assert.NotContains(t, prompt, "Preferred modes of transportation")
	assert.NotContains(t, prompt, "Focus on providing")
	assert.Contains(t, prompt, "without children")
}

func TestBuildItineraryPrompt_Randomize(t *testing.T) {
	trip := validTrip()
	trip.RandomizeInterests = true

	assert.Contains(t, BuildItineraryPrompt(trip), "alternative recommendations that differ from their stated hobbies/interests")
}

func TestBuildItineraryPrompt_TemplateParsesAsItinerary(t *testing.T) {
	it := ParseItinerary(itineraryTemplate)

	assert.Len(t, it.Days, 1)
	assert.Len(t, it.Days[0].Sections, 3)
	assert.Equal(t, []string{"Restaurant 1", "Restaurant 2"}, it.Days[0].Restaurants)
}
