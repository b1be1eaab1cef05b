package geocodefx

import (
	"voyago/internal/config"
	"voyago/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideGeocodeService)

func provideGeocodeService(cfg *config.Settings) services.GeocodeServiceInterface {
	return services.NewGeocodeService(cfg.AmapWebKey)
}
