package server

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the HTTP server configuration, read from the environment. A .env
// file loaded by the caller feeds the same variables in development.
type Config struct {
	Port           int      `env:"PORT, default=8080"`
	DBPath         string   `env:"NUTRITRACK_DB_PATH"`
	GeminiAPIKey   string   `env:"GEMINI_API_KEY"`
	GeminiModel    string   `env:"GEMINI_MODEL"`
	GeminiBaseURL  string   `env:"GEMINI_BASE_URL"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=*"`
}

func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process server config: %w", err)
	}
	return &cfg, nil
}
