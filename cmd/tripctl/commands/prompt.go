package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
)

var promptTrip request_models.TripRequest

var PromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the recommendation prompt for a trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		trip, err := services.ValidateTripRequest(promptTrip)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), services.BuildItineraryPrompt(trip))
		return err
	},
}

func init() {
	addTripFlags(PromptCmd, &promptTrip)
}

// addTripFlags exposes every trip request field as a flag on cmd.
func addTripFlags(cmd *cobra.Command, trip *request_models.TripRequest) {
	f := cmd.Flags()
	f.StringVarP(&trip.Destination, "destination", "d", "", "trip destination")
	f.IntVar(&trip.Duration, "days", 0, "trip duration in days")
	f.IntVar(&trip.Travellers, "travellers", 1, "number of travellers")
	f.IntVar(&trip.Children, "children", 0, "number of children among the travellers")
	f.StringVar(&trip.Interests, "interests", "", "hobbies and interests")
	f.Float64Var(&trip.BudgetPerPersonPerDay, "budget", 0, "budget per person per day")
	f.StringVar(&trip.StartDate, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&trip.AccommodationLocation, "accommodation", "", "accommodation location")
	f.BoolVar(&trip.PetsAllowed, "pets", false, "travelling with pets")
	f.BoolVar(&trip.WheelchairAccessible, "wheelchair", false, "wheelchair accessible places only")
	f.StringSliceVar(&trip.Transportation, "transport", nil, "preferred transportation modes")
	f.StringVar(&trip.PlanType, "plan-type", "", "plan type preference")
	f.BoolVar(&trip.RandomizeInterests, "randomize", false, "ask for recommendations outside the stated interests")

	_ = cmd.MarkFlagRequired("destination")
}
