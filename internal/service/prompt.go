package service

import "strings"

// BuildPrompt combines the fixed instructions with the assembled context.
// The instructions pin the output shape: pure Markdown, starting with a
// top-level heading, no conversational wrapper.
func BuildPrompt(rc RepoContext) string {
	var sb strings.Builder
	sb.WriteString("You are an expert technical writer. Write a complete, professional README.md for the repository described below.\n\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString("- Output Markdown only. No explanations, no preamble, no code fence around the document.\n")
	sb.WriteString("- Begin directly with a single top-level heading naming the project.\n")
	sb.WriteString("- Include, where the information supports them: a short description, a features list, installation steps, usage examples, and a license section.\n")
	sb.WriteString("- Do not invent facts that contradict the information below; prefer omitting a section over guessing.\n")
	sb.WriteString("\nRepository information:\n")
	sb.WriteString(BuildContext(rc))
	sb.WriteString("\n")
	return sb.String()
}
