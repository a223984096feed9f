package service

import (
	"regexp"

	"github.com/FrancescoXX/readme-generator/internal/models"
)

// repoURLPattern accepts https://github.com/<owner>/<name>, with an optional
// scheme, "www." prefix, ".git" suffix and trailing slash. The domain match
// is case-insensitive; owner and name keep their original case.
var repoURLPattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?github\.com/([^/\s]+?)/([^/\s]+?)(?:\.git)?/?$`)

// ParseRepoURL extracts the owner/name pair from a github.com URL.
// Unrecognised URLs yield ErrInvalidRepoURL.
func ParseRepoURL(rawURL string) (models.RepoRef, error) {
	m := repoURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return models.RepoRef{}, ErrInvalidRepoURL
	}
	return models.RepoRef{Owner: m[1], Name: m[2]}, nil
}
