package llmfx

import (
	"voyago/internal/config"
	"voyago/pkg/llm"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideChatClient)

func provideChatClient(cfg *config.Settings) (llm.ChatClient, error) {
	apiKey := cfg.DashScopeAPIKey
	if cfg.LLMProvider == "gemini" {
		apiKey = cfg.GeminiAPIKey
	}
	return llm.NewChatClient(cfg.LLMProvider, apiKey, cfg.LLMModel)
}
