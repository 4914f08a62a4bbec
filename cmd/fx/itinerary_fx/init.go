package itinerary_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(promptService services.PromptServiceInterface, completion utils.CompletionClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(promptService, completion)
}
