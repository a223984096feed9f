package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FrancescoXX/readme-generator/internal/models"
)

// Caps keep the prompt bounded on large repositories.
const (
	maxDependencies = 10
	maxRootEntries  = 30
)

// truncationMark signals that a list was cut off.
const truncationMark = "…"

// RepoContext holds whatever the fan-out managed to fetch. Any field may be
// zero; the fragment builders skip what is missing.
type RepoContext struct {
	Ref       models.RepoRef
	Repo      *models.Repository
	Languages models.Languages
	Entries   []models.DirEntry
	Manifest  *models.Manifest

	// FetchNote describes non-fatal upstream failures. It never reaches the
	// prompt; it is attached to the error if generation also fails.
	FetchNote string
}

// fragment is one line of the assembled context: emit render(rc) only when
// when(rc) holds. Keeping condition and formatter separate makes each line
// independently testable.
type fragment struct {
	when   func(rc RepoContext) bool
	render func(rc RepoContext) string
}

// fragments is the fixed emission order of the context block.
var fragments = []fragment{
	{
		when:   func(rc RepoContext) bool { return rc.Repo != nil && rc.Repo.Description != "" },
		render: func(rc RepoContext) string { return "Description: " + rc.Repo.Description },
	},
	{
		when:   func(rc RepoContext) bool { return rc.Repo != nil && rc.Repo.Language != "" },
		render: func(rc RepoContext) string { return "Primary language: " + rc.Repo.Language },
	},
	{
		when:   func(rc RepoContext) bool { return len(rc.Languages) > 0 },
		render: func(rc RepoContext) string { return "Languages (bytes of code): " + formatLanguages(rc.Languages) },
	},
	{
		when:   func(rc RepoContext) bool { return len(rc.Entries) > 0 },
		render: func(rc RepoContext) string { return "Root directory: " + formatEntries(rc.Entries) },
	},
	{
		when:   func(rc RepoContext) bool { return rc.Manifest != nil && rc.Manifest.Name != "" },
		render: func(rc RepoContext) string { return "Package name: " + rc.Manifest.Name },
	},
	{
		when:   func(rc RepoContext) bool { return rc.Manifest != nil && len(rc.Manifest.Dependencies) > 0 },
		render: func(rc RepoContext) string { return "Dependencies: " + formatNames(rc.Manifest.Dependencies) },
	},
	{
		when:   func(rc RepoContext) bool { return rc.Manifest != nil && len(rc.Manifest.Scripts) > 0 },
		render: func(rc RepoContext) string { return "Scripts: " + formatNames(rc.Manifest.Scripts) },
	},
	{
		when:   func(rc RepoContext) bool { return rc.Repo != nil && len(rc.Repo.Topics) > 0 },
		render: func(rc RepoContext) string { return "Topics: " + strings.Join(rc.Repo.Topics, ", ") },
	},
	{
		when:   func(rc RepoContext) bool { return rc.Repo != nil && rc.Repo.License != nil && rc.Repo.License.Name != "" },
		render: func(rc RepoContext) string { return "License: " + rc.Repo.License.Name },
	},
	{
		when:   func(rc RepoContext) bool { return rc.Repo != nil && rc.Repo.Homepage != "" },
		render: func(rc RepoContext) string { return "Homepage: " + rc.Repo.Homepage },
	},
	{
		when: func(rc RepoContext) bool { return rc.Repo != nil && (rc.Repo.Stars > 0 || rc.Repo.Forks > 0) },
		render: func(rc RepoContext) string {
			return fmt.Sprintf("Stars: %d, Forks: %d", rc.Repo.Stars, rc.Repo.Forks)
		},
	},
}

// BuildContext assembles the context block: one line per present fragment,
// in fixed order. Missing data is omitted, never replaced by a placeholder.
func BuildContext(rc RepoContext) string {
	var lines []string
	lines = append(lines, "Repository: "+rc.Ref.FullName())
	for _, f := range fragments {
		if f.when(rc) {
			lines = append(lines, f.render(rc))
		}
	}
	return strings.Join(lines, "\n")
}

// formatLanguages renders the byte breakdown, largest first. Ties break
// alphabetically so output is deterministic.
func formatLanguages(langs models.Languages) string {
	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if langs[names[i]] != langs[names[j]] {
			return langs[names[i]] > langs[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%d)", name, langs[name])
	}
	return strings.Join(parts, ", ")
}

// formatEntries renders the root listing, directories marked with a
// trailing slash, capped at maxRootEntries.
func formatEntries(entries []models.DirEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if e.Type == "dir" {
			name += "/"
		}
		parts = append(parts, name)
	}
	if len(parts) > maxRootEntries {
		parts = append(parts[:maxRootEntries], truncationMark)
	}
	return strings.Join(parts, ", ")
}

// formatNames renders sorted map keys, capped at maxDependencies names
// followed by a truncation mark.
func formatNames(m map[string]string) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > maxDependencies {
		names = append(names[:maxDependencies], truncationMark)
	}
	return strings.Join(names, ", ")
}
