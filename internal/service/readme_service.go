package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/FrancescoXX/readme-generator/internal/github"
	"github.com/FrancescoXX/readme-generator/internal/llm"
	"github.com/FrancescoXX/readme-generator/internal/models"
)

const manifestPath = "package.json"

var (
	// ErrInvalidRepoURL maps to a 400 in the handler.
	ErrInvalidRepoURL = errors.New("invalid repository URL: expected https://github.com/<owner>/<repo>")

	// ErrNotConfigured maps to a generic 500. It deliberately carries no
	// hint of which credential is missing.
	ErrNotConfigured = errors.New("server configuration error")
)

// RepoFetcher is the slice of the GitHub client the service needs.
type RepoFetcher interface {
	GetRepository(ctx context.Context, ref models.RepoRef) (models.Repository, error)
	ListLanguages(ctx context.Context, ref models.RepoRef) (models.Languages, error)
	ListRootContents(ctx context.Context, ref models.RepoRef) ([]models.DirEntry, error)
	GetFile(ctx context.Context, ref models.RepoRef, path string) ([]byte, error)
}

// ReadmeService turns a repository URL into a generated README.
type ReadmeService interface {
	Generate(ctx context.Context, repoURL string) (string, error)
}

type readmeService struct {
	gh  RepoFetcher
	gen llm.Generator
}

// NewReadmeService wires dependencies. Either may be nil when the matching
// credential is absent; Generate then reports ErrNotConfigured.
func NewReadmeService(gh RepoFetcher, gen llm.Generator) ReadmeService {
	return &readmeService{gh: gh, gen: gen}
}

// Generate parses the URL, fans out the metadata fetches, assembles the
// prompt and calls the model. Upstream fetch failures degrade the context
// instead of failing the request; they surface only if generation itself
// fails afterwards.
func (s *readmeService) Generate(ctx context.Context, repoURL string) (string, error) {
	if s.gh == nil || s.gen == nil {
		return "", ErrNotConfigured
	}

	ref, err := ParseRepoURL(repoURL)
	if err != nil {
		return "", err
	}

	rc := s.fetchContext(ctx, ref)
	if rc.FetchNote != "" {
		log.Warn().Str("repo", ref.FullName()).Str("note", rc.FetchNote).
			Msg("continuing with partial context")
	}

	readme, err := s.gen.Generate(ctx, BuildPrompt(rc))
	if err != nil {
		if rc.FetchNote != "" {
			return "", fmt.Errorf("generating readme: %w (note: %s)", err, rc.FetchNote)
		}
		return "", fmt.Errorf("generating readme: %w", err)
	}
	return readme, nil
}

// fetchContext runs the four upstream calls concurrently. No call aborts
// the others: failures become notes and the context stays partial.
func (s *readmeService) fetchContext(ctx context.Context, ref models.RepoRef) RepoContext {
	rc := RepoContext{Ref: ref}

	var (
		mu    sync.Mutex
		notes []string
	)
	note := func(what string, err error) {
		mu.Lock()
		notes = append(notes, fmt.Sprintf("%s: %v", what, err))
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		repo, err := s.gh.GetRepository(gctx, ref)
		if err != nil {
			note("fetching repository metadata", err)
			return nil
		}
		rc.Repo = &repo
		return nil
	})
	g.Go(func() error {
		langs, err := s.gh.ListLanguages(gctx, ref)
		if err != nil {
			note("fetching languages", err)
			return nil
		}
		rc.Languages = langs
		return nil
	})
	g.Go(func() error {
		entries, err := s.gh.ListRootContents(gctx, ref)
		if err != nil {
			note("listing root contents", err)
			return nil
		}
		rc.Entries = entries
		return nil
	})
	g.Go(func() error {
		manifest, ok, err := fetchOptional(func() (models.Manifest, error) {
			return s.fetchManifest(gctx, ref)
		})
		if err != nil {
			note("fetching "+manifestPath, err)
			return nil
		}
		if ok {
			rc.Manifest = &manifest
		}
		return nil
	})
	_ = g.Wait() // goroutines only report via notes

	rc.FetchNote = strings.Join(notes, "; ")
	return rc
}

// fetchManifest pulls and decodes package.json.
func (s *readmeService) fetchManifest(ctx context.Context, ref models.RepoRef) (models.Manifest, error) {
	raw, err := s.gh.GetFile(ctx, ref, manifestPath)
	if err != nil {
		return models.Manifest{}, err
	}
	var m models.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return models.Manifest{}, fmt.Errorf("parsing %s: %w", manifestPath, err)
	}
	return m, nil
}

// fetchOptional runs fetch and reports a not-found result as plain absence
// rather than an error. Any other failure passes through.
func fetchOptional[T any](fetch func() (T, error)) (val T, ok bool, err error) {
	val, err = fetch()
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			var zero T
			return zero, false, nil
		}
		var zero T
		return zero, false, err
	}
	return val, true, nil
}
