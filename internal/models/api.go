package models

// GenerateReadmeRequest is the payload for POST /api/v1/readme.
type GenerateReadmeRequest struct {
	RepoURL string `json:"repoUrl"`
}

// GenerateReadmeResponse is the success body: the generated Markdown,
// returned verbatim from the model.
type GenerateReadmeResponse struct {
	Readme string `json:"readme"`
}

// PreviewRequest is the payload for POST /api/v1/preview.
type PreviewRequest struct {
	Markdown string `json:"markdown"`
}

// PreviewResponse carries the rendered HTML for the client preview pane.
type PreviewResponse struct {
	HTML string `json:"html"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
