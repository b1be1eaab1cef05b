package controllersfx

import (
	"voyago/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewTravelController),
	fx.Provide(controllers.NewBudgetController),
	fx.Provide(controllers.NewParseController),
	fx.Provide(controllers.NewGeocodeController),
	fx.Provide(controllers.NewVoiceController))
