package configfx

import (
	"voyago/internal/config"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	config.Load)
