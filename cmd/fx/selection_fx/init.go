package selection_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/internal/services"
)

var Module = fx.Provide(provideSelectionService)

func provideSelectionService(cfg *config.Config) services.SelectionServiceInterface {
	return services.NewSelectionService(cfg.AssetDir)
}
