package parsefx

import (
	"voyago/internal/services"
	"voyago/pkg/llm"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideParseService)

func provideParseService(chat llm.ChatClient) services.ParseServiceInterface {
	return services.NewParseService(chat)
}
