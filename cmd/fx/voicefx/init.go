package voicefx

import (
	"voyago/internal/config"
	"voyago/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideVoiceService)

func provideVoiceService(cfg *config.Settings) services.VoiceServiceInterface {
	return services.NewVoiceService(cfg.AliyunSpeechAppKey, cfg.AliyunAccessKeyID, cfg.AliyunAccessKeySecret)
}
