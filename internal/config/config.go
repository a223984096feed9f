// Package config centralises all environment configuration for the server.
// It should be imported only by `cmd/server` (and test code); other layers
// receive an already-built Config via dependency-injection.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds every runtime option the server needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// External services
	GitHubToken string

	// Generation
	LLMProvider   string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
//
// The two secrets are deliberately NOT fatal here: a missing credential is
// reported per-request as a generic configuration error so the response
// never names which one is absent.
func Load() Config {
	// godotenv.Load() is a no-op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		LLMProvider:   getEnv("LLM_PROVIDER", ProviderGemini),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		ReadTimeout:   getDuration("READ_TIMEOUT_SEC", 10),
		WriteTimeout:  getDuration("WRITE_TIMEOUT_SEC", 120),
	}
}

// LLMKey returns the credential for the configured provider.
func (c Config) LLMKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			return time.Duration(sec) * time.Second
		}
		log.Warn().Str("key", key).Str("value", v).Int("default_sec", defaultSec).
			Msg("invalid duration env var; using default")
	}
	return time.Duration(defaultSec) * time.Second
}
