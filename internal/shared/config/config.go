package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults for the completion request parameters. The CLI variant uses a
// smaller token budget.
const (
	DefaultModel           = "gpt-3.5-turbo"
	DefaultMaxOutputTokens = 600
	DefaultTemperature     = 0.7
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	OpenAIAPIKey    string
	LLMModel        string
	MaxOutputTokens int
}

// Load reads configuration from environment variables with sensible defaults.
// The API credential is required: callers must fail fast before serving any
// request when Validate returns an error.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		LLMModel:        getEnv("LLM_MODEL", DefaultModel),
		MaxOutputTokens: getEnvInt("MAX_OUTPUT_TOKENS", DefaultMaxOutputTokens),
	}
}

// Validate checks that required settings are present.
func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if c.MaxOutputTokens <= 0 {
		return errors.New("MAX_OUTPUT_TOKENS must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
