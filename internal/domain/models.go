package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FavoritesFolderID is the fixed identifier of the built-in Favorites folder.
const FavoritesFolderID = "favorites"

// Folder groups prompts. System folders (Favorites) cannot be deleted and
// their IsSystem flag cannot be changed after creation.
type Folder struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"notblank"`
	Color    string `json:"color,omitempty"`
	Icon     string `json:"icon,omitempty"`
	ParentID string `json:"parentId,omitempty"`
	IsSystem bool   `json:"isSystem,omitempty"`
}

// Variable is a declared placeholder of a prompt. Its name is matched against
// {{name}} occurrences in the prompt content; DefaultValue is used when no
// override is supplied at render time.
type Variable struct {
	Name         string `json:"name" validate:"required"`
	DefaultValue string `json:"defaultValue"`
	IsEditable   bool   `json:"isEditable"`
}

// Prompt is a reusable text snippet. Content may contain {{name}} placeholders;
// the declared Variables are authored explicitly and are not reconciled against
// what Content textually contains.
type Prompt struct {
	ID        string     `json:"id" validate:"required"`
	Title     string     `json:"title" validate:"notblank"`
	Content   string     `json:"content" validate:"notblank"`
	FolderID  string     `json:"folderId,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Variables []Variable `json:"variables,omitempty"`
	Shortcut  string     `json:"shortcut,omitempty"`
	Favorite  bool       `json:"favorite"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy of the prompt.
func (p Prompt) Clone() Prompt {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	if p.Variables != nil {
		out.Variables = append([]Variable(nil), p.Variables...)
	}
	return out
}

// Collection is the full folder/prompt dataset. It is both the persistence
// format and the import/export file format.
type Collection struct {
	Folders []Folder `json:"folders"`
	Prompts []Prompt `json:"prompts"`
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	out := Collection{Folders: append([]Folder(nil), c.Folders...)}
	if c.Prompts != nil {
		out.Prompts = make([]Prompt, 0, len(c.Prompts))
		for _, p := range c.Prompts {
			out.Prompts = append(out.Prompts, p.Clone())
		}
	}
	return out
}

// NewFolderID returns a fresh unique folder identifier.
func NewFolderID() string {
	return fmt.Sprintf("folder-%s", uuid.NewString())
}

// NewPromptID returns a fresh unique prompt identifier.
func NewPromptID() string {
	return fmt.Sprintf("prompt-%s", uuid.NewString())
}
