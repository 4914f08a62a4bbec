package report_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/internal/services"
)

var Module = fx.Provide(provideReportService)

func provideReportService(cfg *config.Config) services.ReportServiceInterface {
	return services.NewReportService(cfg.AssetDir)
}
