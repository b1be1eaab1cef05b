package authfx

import (
	"voyago/internal/config"
	"voyago/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideAuthService)

func provideAuthService(cfg *config.Settings) services.AuthServiceInterface {
	return services.NewAuthService(cfg.SupabaseURL, cfg.SupabaseKey)
}
