package models

// RepoRef identifies a repository by its owner and name, as parsed from a
// github.com URL (e.g. "https://github.com/acme/widget" → {acme, widget}).
type RepoRef struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// FullName returns the canonical "owner/name" path.
func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Name
}

// Repository captures the metadata fields we care about from
// GET /repos/{owner}/{repo}.
type Repository struct {
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	Language      string   `json:"language"`
	DefaultBranch string   `json:"default_branch"`
	Stars         int      `json:"stargazers_count"`
	Forks         int      `json:"forks_count"`
	Topics        []string `json:"topics"`
	Homepage      string   `json:"homepage"`
	License       *License `json:"license"`
}

// License is the nested license object on a repository record.
type License struct {
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

// Languages maps language name to total bytes of code, as returned by
// GET /repos/{owner}/{repo}/languages.
type Languages map[string]int64

// DirEntry is one entry of a directory listing from the contents API.
type DirEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"` // "file" | "dir" | "symlink" | "submodule"
	Size int64  `json:"size"`
}

// FileContent is a single file fetched via the contents API. Content is
// Base64-encoded when Encoding is "base64".
type FileContent struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
}

// Manifest is a decoded package.json. Only the fields the context builder
// cares about are kept.
type Manifest struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}
