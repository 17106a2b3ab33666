package store

import (
	"encoding/json"
	"fmt"

	"github.com/promptbox/promptbox/internal/domain"
)

// Export returns a deep copy of the full collection.
func (s *Store) Export() domain.Collection {
	return s.data.Clone()
}

// ExportJSON returns the collection as a pretty-printed JSON document, the
// format written to promptbox-data.json.
func (s *Store) ExportJSON() ([]byte, error) {
	out, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize data: %w", err)
	}
	return out, nil
}

// importDocument mirrors domain.Collection with pointer slices so that a
// payload missing either array is detectable.
type importDocument struct {
	Folders *[]domain.Folder `json:"folders"`
	Prompts *[]domain.Prompt `json:"prompts"`
}

// Import replaces the entire collection with the given JSON payload. The
// payload is validated first; a malformed document is rejected without
// touching the committed state.
func (s *Store) Import(payload []byte) error {
	var doc importDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("import payload is not valid JSON: %w", err)
	}
	if doc.Folders == nil {
		return domain.ValidationError{Field: "folders", Reason: "array is missing"}
	}
	if doc.Prompts == nil {
		return domain.ValidationError{Field: "prompts", Reason: "array is missing"}
	}

	next := domain.Collection{Folders: *doc.Folders, Prompts: *doc.Prompts}

	folderIDs := make(map[string]bool, len(next.Folders))
	for i, f := range next.Folders {
		if err := s.check(f); err != nil {
			return fmt.Errorf("folder %d: %w", i, err)
		}
		if folderIDs[f.ID] {
			return domain.ValidationError{Field: "folders", Reason: fmt.Sprintf("duplicate id %q", f.ID)}
		}
		folderIDs[f.ID] = true
	}
	promptIDs := make(map[string]bool, len(next.Prompts))
	for i, p := range next.Prompts {
		if err := s.check(p); err != nil {
			return fmt.Errorf("prompt %d: %w", i, err)
		}
		if promptIDs[p.ID] {
			return domain.ValidationError{Field: "prompts", Reason: fmt.Sprintf("duplicate id %q", p.ID)}
		}
		promptIDs[p.ID] = true
	}

	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Info("imported collection",
		"folders", len(next.Folders), "prompts", len(next.Prompts))
	return nil
}
