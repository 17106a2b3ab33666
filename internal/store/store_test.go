package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptbox/promptbox/internal/domain"
	"github.com/promptbox/promptbox/internal/storage"
)

type memSink struct {
	m map[string]string
}

func newMemSink() *memSink { return &memSink{m: make(map[string]string)} }

func (s *memSink) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memSink) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *memSink) Remove(key string) error {
	delete(s.m, key)
	return nil
}

// fakeClock advances one second per call so UpdatedAt strictly increases.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(t *testing.T) (*Store, *memSink) {
	t.Helper()
	sink := newMemSink()
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s, err := New(sink, WithClock(clock.Now))
	require.NoError(t, err)
	return s, sink
}

func TestNew_SeedsWhenSinkEmpty(t *testing.T) {
	s, sink := newTestStore(t)

	fav, ok := s.GetFolder(domain.FavoritesFolderID)
	require.True(t, ok)
	assert.True(t, fav.IsSystem)
	assert.Equal(t, "Favorites", fav.Name)
	assert.NotEmpty(t, s.Prompts())

	// Seeding is write-through: the sink already holds the document.
	_, ok, err := sink.Get(storage.DataKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNew_HydratesFromSink(t *testing.T) {
	sink := newMemSink()
	doc := `{"folders":[{"id":"f1","name":"Work"}],"prompts":[]}`
	require.NoError(t, sink.Set(storage.DataKey, doc))

	s, err := New(sink)
	require.NoError(t, err)

	folders := s.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, "Work", folders[0].Name)
	assert.Empty(t, s.Prompts())
}

func TestNew_RejectsCorruptSink(t *testing.T) {
	sink := newMemSink()
	require.NoError(t, sink.Set(storage.DataKey, "{not json"))

	_, err := New(sink)
	assert.Error(t, err)
}

func TestAddFolder(t *testing.T) {
	s, _ := newTestStore(t)

	f, err := s.AddFolder(NewFolder{Name: "Work", Color: "#111111", Icon: "W"})
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.False(t, f.IsSystem)

	got, ok := s.GetFolder(f.ID)
	require.True(t, ok)
	assert.Equal(t, f, got)
}

func TestAddFolder_BlankNameRejected(t *testing.T) {
	s, _ := newTestStore(t)
	before := len(s.Folders())

	_, err := s.AddFolder(NewFolder{Name: "   "})
	assert.True(t, domain.IsValidationError(err))
	assert.Len(t, s.Folders(), before, "failed create must not extend the collection")
}

func TestIDs_UniqueAcrossCreations(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for _, f := range s.Folders() {
		seen[f.ID] = true
	}
	for _, p := range s.Prompts() {
		seen[p.ID] = true
	}
	for i := 0; i < 20; i++ {
		f, err := s.AddFolder(NewFolder{Name: "F"})
		require.NoError(t, err)
		require.False(t, seen[f.ID])
		seen[f.ID] = true

		p, err := s.AddPrompt(NewPrompt{Title: "T", Content: "c"})
		require.NoError(t, err)
		require.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestUpdateFolder(t *testing.T) {
	s, _ := newTestStore(t)
	f, err := s.AddFolder(NewFolder{Name: "Work"})
	require.NoError(t, err)

	name := "Projects"
	got, err := s.UpdateFolder(f.ID, FolderUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Projects", got.Name)
	assert.Equal(t, f.Color, got.Color)

	_, err = s.UpdateFolder("nope", FolderUpdate{Name: &name})
	assert.True(t, domain.IsNotFoundError(err))

	blank := " "
	_, err = s.UpdateFolder(f.ID, FolderUpdate{Name: &blank})
	assert.True(t, domain.IsValidationError(err))
}

func TestDeleteFolder_SystemFolderIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	folders := s.Folders()
	prompts := s.Prompts()

	require.NoError(t, s.DeleteFolder(domain.FavoritesFolderID))

	assert.Equal(t, folders, s.Folders())
	assert.Equal(t, prompts, s.Prompts())
}

func TestDeleteFolder_CascadesToOwnedPrompts(t *testing.T) {
	s, _ := newTestStore(t)
	work, err := s.AddFolder(NewFolder{Name: "Work"})
	require.NoError(t, err)
	other, err := s.AddFolder(NewFolder{Name: "Other"})
	require.NoError(t, err)

	inWork, err := s.AddPrompt(NewPrompt{Title: "A", Content: "a", FolderID: work.ID})
	require.NoError(t, err)
	inOther, err := s.AddPrompt(NewPrompt{Title: "B", Content: "b", FolderID: other.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteFolder(work.ID))

	_, ok := s.GetFolder(work.ID)
	assert.False(t, ok)
	_, ok = s.GetPrompt(inWork.ID)
	assert.False(t, ok)
	_, ok = s.GetPrompt(inOther.ID)
	assert.True(t, ok)
	assert.Empty(t, s.PromptsInFolder(work.ID))
}

func TestAddPrompt_Validation(t *testing.T) {
	s, _ := newTestStore(t)
	before := len(s.Prompts())

	_, err := s.AddPrompt(NewPrompt{Title: "", Content: "c"})
	assert.True(t, domain.IsValidationError(err))
	_, err = s.AddPrompt(NewPrompt{Title: "t", Content: "  "})
	assert.True(t, domain.IsValidationError(err))
	assert.Len(t, s.Prompts(), before)
}

func TestAddPrompt_SetsTimestampsAndDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.AddPrompt(NewPrompt{Title: "X", Content: "c"})
	require.NoError(t, err)
	assert.False(t, p.Favorite)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestUpdatePrompt_AdvancesUpdatedAtOnly(t *testing.T) {
	s, _ := newTestStore(t)
	p, err := s.AddPrompt(NewPrompt{Title: "X", Content: "c"})
	require.NoError(t, err)

	title := "Y"
	got, err := s.UpdatePrompt(p.ID, PromptUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Y", got.Title)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(p.UpdatedAt))

	_, err = s.UpdatePrompt("nope", PromptUpdate{Title: &title})
	assert.True(t, domain.IsNotFoundError(err))
}

func TestUpdatePrompt_FavoriteRelocates(t *testing.T) {
	s, _ := newTestStore(t)
	work, err := s.AddFolder(NewFolder{Name: "Work"})
	require.NoError(t, err)
	p, err := s.AddPrompt(NewPrompt{Title: "X", Content: "c", FolderID: work.ID})
	require.NoError(t, err)

	fav := true
	got, err := s.UpdatePrompt(p.ID, PromptUpdate{Favorite: &fav})
	require.NoError(t, err)
	assert.True(t, got.Favorite)
	assert.Equal(t, domain.FavoritesFolderID, got.FolderID)
}

func TestToggleFavorite(t *testing.T) {
	s, _ := newTestStore(t)
	work, err := s.AddFolder(NewFolder{Name: "Work"})
	require.NoError(t, err)
	p, err := s.AddPrompt(NewPrompt{Title: "X", Content: "c", FolderID: work.ID})
	require.NoError(t, err)

	got, err := s.ToggleFavorite(p.ID)
	require.NoError(t, err)
	assert.True(t, got.Favorite)
	assert.Equal(t, domain.FavoritesFolderID, got.FolderID)

	// Toggling twice restores the flag; the original folder is not restored.
	got, err = s.ToggleFavorite(p.ID)
	require.NoError(t, err)
	assert.False(t, got.Favorite)
	assert.Equal(t, domain.FavoritesFolderID, got.FolderID)

	_, err = s.ToggleFavorite("nope")
	assert.True(t, domain.IsNotFoundError(err))
}

func TestUpdateVariableDefault(t *testing.T) {
	s, _ := newTestStore(t)
	p, err := s.AddPrompt(NewPrompt{
		Title:   "X",
		Content: "{{a}}",
		Variables: []domain.Variable{
			{Name: "a", DefaultValue: "1", IsEditable: true},
		},
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateVariableDefault(p.ID, "a", "2"))
	got, ok := s.GetPrompt(p.ID)
	require.True(t, ok)
	assert.Equal(t, "2", got.Variables[0].DefaultValue)

	// Missing prompt or variable name is a silent no-op.
	require.NoError(t, s.UpdateVariableDefault("nope", "a", "3"))
	require.NoError(t, s.UpdateVariableDefault(p.ID, "b", "3"))
	got, _ = s.GetPrompt(p.ID)
	assert.Equal(t, "2", got.Variables[0].DefaultValue)
}

func TestDeletePrompt(t *testing.T) {
	s, _ := newTestStore(t)
	p, err := s.AddPrompt(NewPrompt{Title: "X", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, s.DeletePrompt(p.ID))
	_, ok := s.GetPrompt(p.ID)
	assert.False(t, ok)

	require.NoError(t, s.DeletePrompt("nope"))
}

func TestMutations_AreWriteThrough(t *testing.T) {
	s, sink := newTestStore(t)

	p, err := s.AddPrompt(NewPrompt{Title: "X", Content: "c"})
	require.NoError(t, err)

	raw, ok, err := sink.Get(storage.DataKey)
	require.NoError(t, err)
	require.True(t, ok)

	var persisted domain.Collection
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	found := false
	for _, pp := range persisted.Prompts {
		if pp.ID == p.ID {
			found = true
		}
	}
	assert.True(t, found, "mutation must be persisted before it returns")
}

func TestImportExport_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	payload := domain.Collection{
		Folders: []domain.Folder{
			{ID: "favorites", Name: "Favorites", IsSystem: true},
			{ID: "f1", Name: "Work", Color: "#123456"},
		},
		Prompts: []domain.Prompt{
			{
				ID:       "p1",
				Title:    "Hello",
				Content:  "Hi {{name}}",
				FolderID: "f1",
				Tags:     []string{"a", "b"},
				Variables: []domain.Variable{
					{Name: "name", DefaultValue: "Friend", IsEditable: true},
				},
				Shortcut:  "/hi",
				Favorite:  true,
				CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
				UpdatedAt: time.Date(2025, 1, 3, 3, 4, 5, 0, time.UTC),
			},
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	require.NoError(t, s.Import(raw))
	assert.Equal(t, payload, s.Export())
}

func TestImport_RejectsMalformedPayloads(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Export()

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{oops"},
		{"missing folders", `{"prompts":[]}`},
		{"missing prompts", `{"folders":[]}`},
		{"blank folder name", `{"folders":[{"id":"f1","name":" "}],"prompts":[]}`},
		{"folder without id", `{"folders":[{"name":"X"}],"prompts":[]}`},
		{"prompt without content", `{"folders":[],"prompts":[{"id":"p1","title":"X"}]}`},
		{"duplicate folder ids", `{"folders":[{"id":"f1","name":"A"},{"id":"f1","name":"B"}],"prompts":[]}`},
		{"duplicate prompt ids", `{"folders":[],"prompts":[{"id":"p1","title":"A","content":"a"},{"id":"p1","title":"B","content":"b"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Import([]byte(tt.payload))
			assert.Error(t, err)
			assert.Equal(t, before, s.Export(), "rejected import must not touch state")
		})
	}
}

func TestClearUserData(t *testing.T) {
	s, sink := newTestStore(t)

	require.NoError(t, s.ClearUserData())
	_, ok, err := sink.Get(storage.DataKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// In-memory state survives until the next construction.
	assert.NotEmpty(t, s.Folders())
}

func TestFindPromptByPartialID(t *testing.T) {
	sink := newMemSink()
	ids := []string{"prompt-seed", "prompt-aaa111", "prompt-aab222"}
	i := 0
	s, err := New(sink,
		WithIDGenerators(domain.NewFolderID, func() string { id := ids[i]; i++; return id }))
	require.NoError(t, err)
	require.NoError(t, s.DeletePrompt("prompt-seed"))

	_, err = s.AddPrompt(NewPrompt{Title: "A", Content: "a"})
	require.NoError(t, err)
	_, err = s.AddPrompt(NewPrompt{Title: "B", Content: "b"})
	require.NoError(t, err)

	got, err := s.FindPromptByPartialID("aab")
	require.NoError(t, err)
	assert.Equal(t, "prompt-aab222", got.ID)

	got, err = s.FindPromptByPartialID("prompt-aaa111")
	require.NoError(t, err)
	assert.Equal(t, "prompt-aaa111", got.ID)

	_, err = s.FindPromptByPartialID("aa")
	assert.Error(t, err, "ambiguous prefix must be rejected")

	_, err = s.FindPromptByPartialID("zzz")
	assert.True(t, domain.IsNotFoundError(err))
}

func TestFindFolder(t *testing.T) {
	s, _ := newTestStore(t)
	work, err := s.AddFolder(NewFolder{Name: "Work"})
	require.NoError(t, err)

	got, err := s.FindFolder(work.ID)
	require.NoError(t, err)
	assert.Equal(t, work.ID, got.ID)

	got, err = s.FindFolder("work")
	require.NoError(t, err)
	assert.Equal(t, work.ID, got.ID)

	_, err = s.FindFolder("no-such-folder")
	assert.True(t, domain.IsNotFoundError(err))
}

// The end-to-end scenario: create a folder, add a templated prompt into it,
// delete the folder, and confirm the prompt went with it.
func TestScenario_FolderLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	work, err := s.AddFolder(NewFolder{Name: "Work"})
	require.NoError(t, err)

	_, err = s.AddPrompt(NewPrompt{
		Title:     "X",
		Content:   "{{a}}",
		FolderID:  work.ID,
		Variables: []domain.Variable{{Name: "a", DefaultValue: "1"}},
	})
	require.NoError(t, err)
	require.Len(t, s.PromptsInFolder(work.ID), 1)

	require.NoError(t, s.DeleteFolder(work.ID))
	assert.Empty(t, s.PromptsInFolder(work.ID))
}
