package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FrancescoXX/readme-generator/internal/models"
)

const defaultBaseURL = "https://api.github.com"

// ErrNotFound is returned when the API answers 404 for a resource. Callers
// that treat a missing file as a normal empty result match on it with
// errors.Is.
var ErrNotFound = errors.New("github: not found")

// Client is a minimal wrapper around GitHub's REST API v3.
// It is intentionally light—just the endpoints the readme service requires.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient returns a ready-to-use GitHub API client.
// token may be an empty string, but you will be subject to very low rate-limits.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetRepository fetches the metadata record for owner/name.
func (c *Client) GetRepository(ctx context.Context, ref models.RepoRef) (models.Repository, error) {
	var repo models.Repository
	err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", url.PathEscape(ref.Owner), url.PathEscape(ref.Name)), &repo)
	return repo, err
}

// ListLanguages fetches the byte count per language for owner/name.
func (c *Client) ListLanguages(ctx context.Context, ref models.RepoRef) (models.Languages, error) {
	var langs models.Languages
	err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/languages", url.PathEscape(ref.Owner), url.PathEscape(ref.Name)), &langs)
	return langs, err
}

// ListRootContents fetches the repository's root directory listing.
func (c *Client) ListRootContents(ctx context.Context, ref models.RepoRef) ([]models.DirEntry, error) {
	var entries []models.DirEntry
	err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/contents/", url.PathEscape(ref.Owner), url.PathEscape(ref.Name)), &entries)
	return entries, err
}

// GetFile fetches a single file at path and returns its decoded content.
// A missing file is reported as ErrNotFound.
func (c *Client) GetFile(ctx context.Context, ref models.RepoRef, path string) ([]byte, error) {
	var file models.FileContent
	p := fmt.Sprintf("/repos/%s/%s/contents/%s", url.PathEscape(ref.Owner), url.PathEscape(ref.Name), path)
	if err := c.get(ctx, p, &file); err != nil {
		return nil, err
	}

	if file.Encoding != "base64" {
		return []byte(file.Content), nil
	}
	// The contents API inserts newlines into the Base64 payload.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(file.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("github: decoding %s: %w", path, err)
	}
	return raw, nil
}

// get executes an authenticated GET and decodes the JSON body into v.
func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.addHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("github: %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("github: unexpected status %s for %s", resp.Status, path)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// addHeaders sets authentication and Accept headers.
func (c *Client) addHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", "readme-generator")
}
