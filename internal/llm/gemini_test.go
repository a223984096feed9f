package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestGemini(t *testing.T, h http.HandlerFunc) *Gemini {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGemini("test-key", "gemini-1.5-flash", WithBaseURL(srv.URL))
}

func TestGeminiGenerate(t *testing.T) {
	var gotReq generateRequest
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/gemini-1.5-flash:generateContent" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("unexpected api key header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"# widget\n"},{"text":"rest"}]},"finishReason":"STOP"}]}`))
	})

	out, err := g.Generate(context.Background(), "write a readme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "# widget\nrest" {
		t.Errorf("parts should be concatenated, got %q", out)
	}

	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 1 ||
		gotReq.Contents[0].Parts[0].Text != "write a readme" {
		t.Errorf("prompt not forwarded: %+v", gotReq)
	}
	if gotReq.GenerationConfig == nil ||
		gotReq.GenerationConfig.Temperature != Temperature ||
		gotReq.GenerationConfig.MaxOutputTokens != MaxOutputTokens {
		t.Errorf("fixed generation parameters not sent: %+v", gotReq.GenerationConfig)
	}
}

func TestGeminiBlockedPrompt(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
	})

	_, err := g.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "SAFETY") {
		t.Errorf("error should carry the block reason: %v", err)
	}
}

func TestGeminiEmptyCandidate(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[]},"finishReason":"MAX_TOKENS"}]}`))
	})

	_, err := g.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "MAX_TOKENS") {
		t.Errorf("error should carry the finish reason: %v", err)
	}
}

func TestGeminiNoResponse(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := g.Generate(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "no response generated") {
		t.Errorf("expected a no-response error, got %v", err)
	}
}

func TestGeminiHTTPError(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"key invalid"}}`, http.StatusForbidden)
	})

	_, err := g.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected an error")
	}
	// Raw upstream payloads must not leak into the error.
	if strings.Contains(err.Error(), "key invalid") {
		t.Errorf("error leaks upstream body: %v", err)
	}
}
