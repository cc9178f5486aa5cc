package config

import (
	"fmt"

	"github.com/go-playground/validator"

	"github.com/videobrief/backend/internal/util"
)

// Config is the explicit startup configuration of the service. It is
// assembled from the environment once and validated before the server
// starts; handlers never read the environment directly.
type Config struct {
	Port        string
	Debug       bool
	AllowOrigin string

	// AIAdapter selects the generation backend: "openai" (default, any
	// OpenAI-compatible endpoint) or "ollama".
	AIAdapter     string `validate:"oneof=openai ollama"`
	AIChatModel   string `validate:"required"`
	AIChatURL     string
	AIChatKey     string
	AIMaxParallel int    `validate:"min=1"`

	YouTubeAPIKey   string
	TranslateAPIKey string `validate:"required"`
	TranslateURL    string
}

// Load reads the configuration from the environment and validates it.
// Required keys: AI_CHAT_MODEL, TRANSLATE_API_KEY, and AI_CHAT_KEY unless
// the ollama adapter is selected. YOUTUBE_API_KEY is optional; without it
// the video metadata route reports an error.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        util.GetEnvString("PORT", "8080"),
		Debug:       util.GetEnvBool("DEBUG", false),
		AllowOrigin: util.GetEnvString("ALLOWED_ORIGIN", "*"),

		AIAdapter:     util.GetEnvString("AI_ADAPTER", "openai"),
		AIChatModel:   util.GetEnv("AI_CHAT_MODEL"),
		AIChatURL:     util.GetEnv("AI_CHAT_URL"),
		AIChatKey:     util.GetEnv("AI_CHAT_KEY"),
		AIMaxParallel: util.GetEnvInt("AI_PARALLEL_REQ", 4),

		YouTubeAPIKey:   util.GetEnv("YOUTUBE_API_KEY"),
		TranslateAPIKey: util.GetEnv("TRANSLATE_API_KEY"),
		TranslateURL:    util.GetEnv("TRANSLATE_API_URL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.AIAdapter == "openai" && cfg.AIChatKey == "" {
		return nil, fmt.Errorf("invalid configuration: AI_CHAT_KEY is required for the openai adapter")
	}

	return cfg, nil
}
