// Package llm abstracts the generation backends behind a single interface.
// Gemini is the default; any OpenAI-compatible endpoint can be selected
// with LLM_PROVIDER=openai.
package llm

import (
	"context"
	"fmt"

	"github.com/FrancescoXX/readme-generator/internal/config"
)

// Fixed generation parameters. The service sends one prompt and takes the
// first candidate; there is no sampling knob exposed to the client.
const (
	Temperature     = 0.4
	MaxOutputTokens = 4096
)

// Generator produces Markdown text from a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New returns the Generator selected by cfg, or an error when the
// provider's credential is missing. Callers keep the error generic toward
// clients; the detail is for the server log only.
func New(cfg config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("llm: GEMINI_API_KEY is not set")
		}
		return NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("llm: OPENAI_API_KEY is not set")
		}
		return NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.LLMProvider)
	}
}
