package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini calls the generative-language REST API directly. The payload is
// small enough that typed request/response structs beat an SDK dependency.
type Gemini struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
}

// GeminiOption configures a Gemini client.
type GeminiOption func(*Gemini)

// WithBaseURL points the client at a different API root. Used in tests.
func WithBaseURL(u string) GeminiOption {
	return func(g *Gemini) { g.baseURL = strings.TrimSuffix(u, "/") }
}

// NewGemini returns a client for the given model, e.g. "gemini-1.5-flash".
func NewGemini(apiKey, model string, opts ...GeminiOption) *Gemini {
	g := &Gemini{
		http: &http.Client{
			Timeout: 90 * time.Second,
		},
		baseURL: geminiBaseURL,
		apiKey:  apiKey,
		model:   model,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// --- Request types for the Gemini REST API ---

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// --- Response types ---

type generateResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason"`
}

// Generate sends the prompt with the fixed generation parameters and
// returns the first candidate's text. Withheld content is reported with
// the block/finish reason the API exposes, never the raw payload.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:     Temperature,
			MaxOutputTokens: MaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshaling request: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("gemini: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Header auth keeps the key out of URLs and access logs.
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: API returned %s", resp.Status)
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("gemini: parsing response: %w", err)
	}

	return extractText(out)
}

// extractText pulls the generated text out of a decoded response,
// translating empty or withheld results into diagnostic errors.
func extractText(resp generateResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("gemini: prompt blocked (reason: %s)", resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("gemini: no response generated")
	}

	cand := resp.Candidates[0]
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		if cand.FinishReason != "" {
			return "", fmt.Errorf("gemini: empty candidate (finish reason: %s)", cand.FinishReason)
		}
		return "", fmt.Errorf("gemini: empty candidate")
	}
	return sb.String(), nil
}
