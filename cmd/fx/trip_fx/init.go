package trip_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/internal/services"
)

var Module = fx.Provide(provideTripService)

func provideTripService(cfg *config.Config, promptService services.PromptServiceInterface) services.TripServiceInterface {
	return services.NewTripService(promptService, cfg.TransportLinks)
}
