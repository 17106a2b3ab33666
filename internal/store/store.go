// Package store owns the authoritative folder/prompt collection. Every
// mutation replaces the in-memory snapshot and writes the full collection
// through to the persistence sink before returning.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/promptbox/promptbox/internal/domain"
	"github.com/promptbox/promptbox/internal/storage"
)

// Store is the single source of truth for folders and prompts. It is not safe
// for concurrent use; construct it once and pass it by handle.
type Store struct {
	sink     storage.Sink
	now      func() time.Time
	folderID func() string
	promptID func() string
	validate *validator.Validate
	logger   *slog.Logger

	data domain.Collection
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerators overrides the folder and prompt id sources.
func WithIDGenerators(folderID, promptID func() string) Option {
	return func(s *Store) { s.folderID, s.promptID = folderID, promptID }
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New hydrates a store from the sink, seeding the starter dataset when the
// sink holds no data yet.
func New(sink storage.Sink, opts ...Option) (*Store, error) {
	s := &Store{
		sink:     sink,
		now:      time.Now,
		folderID: domain.NewFolderID,
		promptID: domain.NewPromptID,
		validate: newValidator(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok, err := sink.Get(storage.DataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	if !ok {
		seeded := s.seedCollection()
		if err := s.commit(seeded); err != nil {
			return nil, err
		}
		s.logger.Info("seeded default dataset",
			"folders", len(seeded.Folders), "prompts", len(seeded.Prompts))
		return s, nil
	}

	var data domain.Collection
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("stored data is corrupt: %w", err)
	}
	s.data = data
	return s, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// "required" accepts whitespace-only strings; names and titles must not.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// check runs struct validation and converts the first failure into a
// domain.ValidationError.
func (s *Store) check(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		reason := "is required"
		if fe.Tag() == "notblank" {
			reason = "must not be blank"
		}
		return domain.ValidationError{Field: strings.ToLower(fe.Field()), Reason: reason}
	}
	return err
}

// commit persists the snapshot and only then makes it current. A failed write
// leaves the previous snapshot untouched.
func (s *Store) commit(next domain.Collection) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}
	if err := s.sink.Set(storage.DataKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist data: %w", err)
	}
	s.data = next
	s.logger.Debug("persisted collection",
		"folders", len(next.Folders), "prompts", len(next.Prompts))
	return nil
}

// NewFolder holds the caller-supplied fields of a folder to create.
type NewFolder struct {
	Name     string
	Color    string
	Icon     string
	ParentID string
}

// FolderUpdate carries partial folder changes; nil fields are left unchanged.
// IsSystem is deliberately absent: it cannot be changed after creation.
type FolderUpdate struct {
	Name     *string
	Color    *string
	Icon     *string
	ParentID *string
}

// NewPrompt holds the caller-supplied fields of a prompt to create.
type NewPrompt struct {
	Title     string
	Content   string
	FolderID  string
	Tags      []string
	Variables []domain.Variable
	Shortcut  string
}

// PromptUpdate carries partial prompt changes; nil fields are left unchanged.
type PromptUpdate struct {
	Title     *string
	Content   *string
	FolderID  *string
	Tags      *[]string
	Variables *[]domain.Variable
	Shortcut  *string
	Favorite  *bool
}

// AddFolder creates a folder with a fresh id.
func (s *Store) AddFolder(f NewFolder) (domain.Folder, error) {
	folder := domain.Folder{
		ID:       s.folderID(),
		Name:     f.Name,
		Color:    f.Color,
		Icon:     f.Icon,
		ParentID: f.ParentID,
	}
	if err := s.check(folder); err != nil {
		return domain.Folder{}, err
	}
	next := s.data.Clone()
	next.Folders = append(next.Folders, folder)
	if err := s.commit(next); err != nil {
		return domain.Folder{}, err
	}
	return folder, nil
}

// UpdateFolder merges the given fields into the folder with the given id.
func (s *Store) UpdateFolder(id string, upd FolderUpdate) (domain.Folder, error) {
	next := s.data.Clone()
	idx := -1
	for i, f := range next.Folders {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Folder{}, domain.NotFoundError{Kind: "folder", ID: id}
	}
	folder := next.Folders[idx]
	if upd.Name != nil {
		folder.Name = *upd.Name
	}
	if upd.Color != nil {
		folder.Color = *upd.Color
	}
	if upd.Icon != nil {
		folder.Icon = *upd.Icon
	}
	if upd.ParentID != nil {
		folder.ParentID = *upd.ParentID
	}
	if err := s.check(folder); err != nil {
		return domain.Folder{}, err
	}
	next.Folders[idx] = folder
	if err := s.commit(next); err != nil {
		return domain.Folder{}, err
	}
	return folder, nil
}

// DeleteFolder removes a folder and every prompt it owns. Deleting a system
// folder (or an unknown id) is a silent no-op.
func (s *Store) DeleteFolder(id string) error {
	var target *domain.Folder
	for i := range s.data.Folders {
		if s.data.Folders[i].ID == id {
			target = &s.data.Folders[i]
			break
		}
	}
	if target == nil {
		return nil
	}
	if target.IsSystem {
		s.logger.Debug("refused to delete system folder", "id", id)
		return nil
	}

	next := s.data.Clone()
	folders := next.Folders[:0]
	for _, f := range next.Folders {
		if f.ID != id {
			folders = append(folders, f)
		}
	}
	next.Folders = folders
	prompts := next.Prompts[:0]
	for _, p := range next.Prompts {
		if p.FolderID != id {
			prompts = append(prompts, p)
		}
	}
	next.Prompts = prompts
	return s.commit(next)
}

// AddPrompt creates a prompt with a fresh id and current timestamps.
func (s *Store) AddPrompt(p NewPrompt) (domain.Prompt, error) {
	now := s.now()
	prompt := domain.Prompt{
		ID:        s.promptID(),
		Title:     p.Title,
		Content:   p.Content,
		FolderID:  p.FolderID,
		Tags:      append([]string(nil), p.Tags...),
		Variables: append([]domain.Variable(nil), p.Variables...),
		Shortcut:  p.Shortcut,
		Favorite:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.check(prompt); err != nil {
		return domain.Prompt{}, err
	}
	next := s.data.Clone()
	next.Prompts = append(next.Prompts, prompt)
	if err := s.commit(next); err != nil {
		return domain.Prompt{}, err
	}
	return prompt.Clone(), nil
}

// UpdatePrompt merges the given fields into the prompt with the given id and
// bumps UpdatedAt. Setting Favorite to true relocates the prompt into the
// Favorites folder, matching toggle semantics.
func (s *Store) UpdatePrompt(id string, upd PromptUpdate) (domain.Prompt, error) {
	next := s.data.Clone()
	idx := -1
	for i, p := range next.Prompts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Prompt{}, domain.NotFoundError{Kind: "prompt", ID: id}
	}
	prompt := next.Prompts[idx]
	if upd.Title != nil {
		prompt.Title = *upd.Title
	}
	if upd.Content != nil {
		prompt.Content = *upd.Content
	}
	if upd.FolderID != nil {
		prompt.FolderID = *upd.FolderID
	}
	if upd.Tags != nil {
		prompt.Tags = append([]string(nil), (*upd.Tags)...)
	}
	if upd.Variables != nil {
		prompt.Variables = append([]domain.Variable(nil), (*upd.Variables)...)
	}
	if upd.Shortcut != nil {
		prompt.Shortcut = *upd.Shortcut
	}
	if upd.Favorite != nil {
		prompt.Favorite = *upd.Favorite
		if prompt.Favorite {
			prompt.FolderID = domain.FavoritesFolderID
		}
	}
	if now := s.now(); now.After(prompt.UpdatedAt) {
		prompt.UpdatedAt = now
	}
	if err := s.check(prompt); err != nil {
		return domain.Prompt{}, err
	}
	next.Prompts[idx] = prompt
	if err := s.commit(next); err != nil {
		return domain.Prompt{}, err
	}
	return prompt.Clone(), nil
}

// DeletePrompt removes a prompt. Unknown ids are a silent no-op.
func (s *Store) DeletePrompt(id string) error {
	next := s.data.Clone()
	prompts := next.Prompts[:0]
	for _, p := range next.Prompts {
		if p.ID != id {
			prompts = append(prompts, p)
		}
	}
	next.Prompts = prompts
	return s.commit(next)
}

// ToggleFavorite flips a prompt's favorite flag. Favoriting moves the prompt
// into the Favorites folder; unfavoriting leaves the folder as-is.
func (s *Store) ToggleFavorite(id string) (domain.Prompt, error) {
	next := s.data.Clone()
	idx := -1
	for i, p := range next.Prompts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Prompt{}, domain.NotFoundError{Kind: "prompt", ID: id}
	}
	prompt := next.Prompts[idx]
	prompt.Favorite = !prompt.Favorite
	if prompt.Favorite {
		prompt.FolderID = domain.FavoritesFolderID
	}
	next.Prompts[idx] = prompt
	if err := s.commit(next); err != nil {
		return domain.Prompt{}, err
	}
	return prompt.Clone(), nil
}

// UpdateVariableDefault rewrites the default value of one declared variable.
// A missing prompt or variable name is a silent no-op.
func (s *Store) UpdateVariableDefault(promptID, variableName, newDefault string) error {
	next := s.data.Clone()
	for i, p := range next.Prompts {
		if p.ID != promptID {
			continue
		}
		for j, v := range p.Variables {
			if v.Name == variableName {
				next.Prompts[i].Variables[j].DefaultValue = newDefault
				return s.commit(next)
			}
		}
		return nil
	}
	return nil
}

// Folders returns a copy of all folders in insertion order.
func (s *Store) Folders() []domain.Folder {
	return append([]domain.Folder(nil), s.data.Folders...)
}

// Prompts returns deep copies of all prompts in insertion order.
func (s *Store) Prompts() []domain.Prompt {
	out := make([]domain.Prompt, 0, len(s.data.Prompts))
	for _, p := range s.data.Prompts {
		out = append(out, p.Clone())
	}
	return out
}

// GetFolder returns the folder with the given id.
func (s *Store) GetFolder(id string) (domain.Folder, bool) {
	for _, f := range s.data.Folders {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Folder{}, false
}

// GetPrompt returns a copy of the prompt with the given id.
func (s *Store) GetPrompt(id string) (domain.Prompt, bool) {
	for _, p := range s.data.Prompts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Prompt{}, false
}

// PromptsInFolder returns deep copies of the prompts owned by a folder.
func (s *Store) PromptsInFolder(folderID string) []domain.Prompt {
	var out []domain.Prompt
	for _, p := range s.data.Prompts {
		if p.FolderID == folderID {
			out = append(out, p.Clone())
		}
	}
	return out
}

// FindPromptByPartialID resolves a prompt from a full id or an unambiguous id
// prefix (with or without the "prompt-" prefix).
func (s *Store) FindPromptByPartialID(partial string) (domain.Prompt, error) {
	var matches []domain.Prompt
	for _, p := range s.data.Prompts {
		if p.ID == partial {
			return p.Clone(), nil
		}
		if strings.HasPrefix(p.ID, partial) ||
			strings.HasPrefix(strings.TrimPrefix(p.ID, "prompt-"), partial) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Prompt{}, domain.NotFoundError{Kind: "prompt", ID: partial}
	case 1:
		return matches[0].Clone(), nil
	default:
		return domain.Prompt{}, fmt.Errorf("prompt id %q is ambiguous (%d matches)", partial, len(matches))
	}
}

// FindPrompt resolves a prompt from a full id, its shortcut, or an unambiguous
// id prefix. Shortcuts have no uniqueness guarantee; the first match wins.
func (s *Store) FindPrompt(ref string) (domain.Prompt, error) {
	for _, p := range s.data.Prompts {
		if p.Shortcut != "" && p.Shortcut == ref {
			return p.Clone(), nil
		}
	}
	return s.FindPromptByPartialID(ref)
}

// FindFolder resolves a folder from a full id, an unambiguous id prefix, or an
// exact (case-insensitive) name.
func (s *Store) FindFolder(ref string) (domain.Folder, error) {
	var matches []domain.Folder
	for _, f := range s.data.Folders {
		if f.ID == ref || strings.EqualFold(f.Name, ref) {
			return f, nil
		}
		if strings.HasPrefix(f.ID, ref) ||
			strings.HasPrefix(strings.TrimPrefix(f.ID, "folder-"), ref) {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Folder{}, domain.NotFoundError{Kind: "folder", ID: ref}
	case 1:
		return matches[0], nil
	default:
		return domain.Folder{}, fmt.Errorf("folder %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// ClearUserData erases the persisted state. The in-memory collection survives
// until the next construction.
func (s *Store) ClearUserData() error {
	if err := s.sink.Remove(storage.DataKey); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	s.logger.Info("cleared persisted data")
	return nil
}
