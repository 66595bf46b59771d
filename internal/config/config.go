package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// Primary AI analysis path. An empty provider disables it entirely and
	// every analysis runs through the template fallback.
	LLMProvider     string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	GeminiAPIKey    string
	DefaultModel    string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:           os.Getenv("DB_DSN"),
		ServerPort:      os.Getenv("SERVER_PORT"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		LLMProvider:     os.Getenv("LLM_PROVIDER"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		DefaultModel:    os.Getenv("DEFAULT_MODEL"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey(provider string) string {
	switch provider {
	case "anthropic":
		return c.AnthropicAPIKey
	case "openai":
		return c.OpenAIAPIKey
	case "gemini":
		return c.GeminiAPIKey
	}
	return ""
}
