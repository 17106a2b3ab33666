// Package search provides fuzzy matching over the prompt library for the
// search surface of the UI.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/promptbox/promptbox/internal/domain"
)

// PromptResult is a prompt match, best matches first.
type PromptResult struct {
	Prompt domain.Prompt
	Score  int
}

// FolderResult is a folder match, best matches first.
type FolderResult struct {
	Folder domain.Folder
	Score  int
}

type promptSource []domain.Prompt

func (s promptSource) Len() int { return len(s) }

// String builds the haystack a prompt is matched against: title, shortcut,
// tags, and content.
func (s promptSource) String(i int) string {
	p := s[i]
	parts := []string{p.Title, p.Shortcut}
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Content)
	return strings.Join(parts, " ")
}

type folderSource []domain.Folder

func (s folderSource) Len() int           { return len(s) }
func (s folderSource) String(i int) string { return s[i].Name }

// Prompts ranks prompts against the query.
func Prompts(prompts []domain.Prompt, query string) []PromptResult {
	matches := fuzzy.FindFrom(query, promptSource(prompts))
	out := make([]PromptResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, PromptResult{Prompt: prompts[m.Index], Score: m.Score})
	}
	return out
}

// Folders ranks folders against the query.
func Folders(folders []domain.Folder, query string) []FolderResult {
	matches := fuzzy.FindFrom(query, folderSource(folders))
	out := make([]FolderResult, 0, len(matches))
	for _, m := range matches {
		out = append(out, FolderResult{Folder: folders[m.Index], Score: m.Score})
	}
	return out
}
