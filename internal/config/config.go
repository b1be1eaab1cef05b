package config

import (
	"fmt"
	"os"
	"strconv"
	"voyago/pkg/utils"

	"github.com/joho/godotenv"
)

// Settings holds all process configuration. Required keys are validated at
// startup so a misconfigured deployment fails before serving traffic.
type Settings struct {
	PostgresURL       string
	SupabaseURL       string
	SupabaseKey       string
	SupabaseJWTSecret string

	DashScopeAPIKey string
	LLMProvider     string
	LLMModel        string
	GeminiAPIKey    string

	AmapWebKey string

	AliyunSpeechAppKey    string
	AliyunAccessKeyID     string
	AliyunAccessKeySecret string

	AppEnv    string
	AppPort   int
	StaticDir string
}

var required = []string{
	"POSTGRES_URL",
	"SUPABASE_URL",
	"SUPABASE_KEY",
	"SUPABASE_JWT_SECRET",
	"DASHSCOPE_API_KEY",
}

func Load() (*Settings, error) {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	for _, key := range required {
		if os.Getenv(key) == "" {
			return nil, fmt.Errorf("%w: environment variable %s must be set", utils.ErrConfigMissing, key)
		}
	}

	port := 8000
	if raw := os.Getenv("APP_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid APP_PORT %q: %w", raw, err)
		}
		port = parsed
	}

	return &Settings{
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseKey:       os.Getenv("SUPABASE_KEY"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),

		DashScopeAPIKey: os.Getenv("DASHSCOPE_API_KEY"),
		LLMProvider:     os.Getenv("LLM_PROVIDER"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),

		AmapWebKey: os.Getenv("AMAP_WEB_KEY"),

		AliyunSpeechAppKey:    os.Getenv("ALIYUN_SPEECH_APP_KEY"),
		AliyunAccessKeyID:     os.Getenv("ALIYUN_ACCESS_KEY_ID"),
		AliyunAccessKeySecret: os.Getenv("ALIYUN_ACCESS_KEY_SECRET"),

		AppEnv:    envOrDefault("APP_ENV", "development"),
		AppPort:   port,
		StaticDir: os.Getenv("STATIC_DIR"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
