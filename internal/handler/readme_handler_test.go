package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/FrancescoXX/readme-generator/internal/github"
	"github.com/FrancescoXX/readme-generator/internal/llm"
	"github.com/FrancescoXX/readme-generator/internal/service"
)

type stubService struct {
	readme string
	err    error
}

func (s *stubService) Generate(ctx context.Context, repoURL string) (string, error) {
	return s.readme, s.err
}

func newApp(svc service.ReadmeService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, svc)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("body is not a JSON object: %v\n%s", err, raw)
	}
	return resp, decoded
}

func TestReadmeHandlerBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{name: "invalid JSON", body: `{`},
		{name: "missing repoUrl", body: `{}`},
		{name: "unparseable URL", body: `{"repoUrl":"https://github.com/acme"}`, err: service.ErrInvalidRepoURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(&stubService{err: tt.err})
			resp, body := postJSON(t, app, "/api/v1/readme", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
			if body["error"] == "" {
				t.Error("expected an error message in the body")
			}
		})
	}
}

func TestReadmeHandlerGenericConfigError(t *testing.T) {
	app := newApp(&stubService{err: service.ErrNotConfigured})
	resp, body := postJSON(t, app, "/api/v1/readme", `{"repoUrl":"https://github.com/acme/widget"}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
	// The message must stay generic; no credential name may appear.
	for _, leak := range []string{"GITHUB", "GEMINI", "OPENAI", "token", "key"} {
		if strings.Contains(strings.ToUpper(body["error"]), strings.ToUpper(leak)) {
			t.Errorf("config error leaks %q: %q", leak, body["error"])
		}
	}
}

func TestReadmeHandlerUpstreamError(t *testing.T) {
	app := newApp(&stubService{err: errors.New("generating readme: gemini: no response generated")})
	resp, body := postJSON(t, app, "/api/v1/readme", `{"repoUrl":"https://github.com/acme/widget"}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
	if !strings.Contains(body["error"], "no response generated") {
		t.Errorf("expected the upstream diagnostic, got %q", body["error"])
	}
}

// TestReadmeEndToEnd drives the full stack: fiber handler → service →
// GitHub client against a mock hosting API → Gemini client against a mock
// inference API.
func TestReadmeEndToEnd(t *testing.T) {
	hosting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/widget":
			w.Write([]byte(`{"full_name":"acme/widget","description":"A widget","language":"Go"}`))
		case "/repos/acme/widget/languages":
			w.Write([]byte(`{"Go":1000}`))
		case "/repos/acme/widget/contents/":
			w.Write([]byte(`[{"name":"main.go","path":"main.go","type":"file","size":100}]`))
		case "/repos/acme/widget/contents/package.json":
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		default:
			t.Errorf("unexpected hosting call %q", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(hosting.Close)

	inference := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"# widget\n..."}]},"finishReason":"STOP"}]}`))
	}))
	t.Cleanup(inference.Close)

	svc := service.NewReadmeService(
		github.NewClient("test-token", github.WithBaseURL(hosting.URL)),
		llm.NewGemini("test-key", "gemini-1.5-flash", llm.WithBaseURL(inference.URL)),
	)
	app := newApp(svc)

	resp, body := postJSON(t, app, "/api/v1/readme", `{"repoUrl":"https://github.com/acme/widget"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if body["readme"] != "# widget\n..." {
		t.Errorf("expected the generated markdown verbatim, got %q", body["readme"])
	}
}
