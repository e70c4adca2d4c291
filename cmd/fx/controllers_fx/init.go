package controllers_fx

import (
	"go.uber.org/fx"

	"doramahub/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewWatchlistController),
	fx.Provide(controllers.NewConfigController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewAssistantController))
