package controllers_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewSelectionController),
	fx.Provide(controllers.NewReportController),
	fx.Provide(controllers.NewChatController))
