package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptbox/promptbox/internal/domain"
)

func titles(prompts []domain.Prompt) []string {
	out := make([]string, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, p.Title)
	}
	return out
}

func TestSortPrompts_ByName(t *testing.T) {
	in := []domain.Prompt{
		{ID: "1", Title: "Banana"},
		{ID: "2", Title: "apple"},
		{ID: "3", Title: "Cherry"},
	}

	asc := SortPrompts(in, SortByName, Ascending)
	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, titles(asc))

	desc := SortPrompts(in, SortByName, Descending)
	assert.Equal(t, []string{"Cherry", "Banana", "apple"}, titles(desc))

	// Input order is untouched.
	assert.Equal(t, []string{"Banana", "apple", "Cherry"}, titles(in))
}

func TestSortPrompts_ByDate_NewestFirstAtAsc(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	in := []domain.Prompt{
		{ID: "old", Title: "old", UpdatedAt: base},
		{ID: "new", Title: "new", UpdatedAt: base.Add(time.Hour)},
		{ID: "mid", Title: "mid", UpdatedAt: base.Add(time.Minute)},
	}

	asc := SortPrompts(in, SortByDate, Ascending)
	assert.Equal(t, []string{"new", "mid", "old"}, titles(asc))

	desc := SortPrompts(in, SortByDate, Descending)
	assert.Equal(t, []string{"old", "mid", "new"}, titles(desc))
}

func TestSortPrompts_ByFavorites(t *testing.T) {
	in := []domain.Prompt{
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b", Favorite: true},
		{ID: "3", Title: "c"},
		{ID: "4", Title: "d", Favorite: true},
	}

	got := SortPrompts(in, SortByFavorites, Ascending)
	assert.Equal(t, []string{"b", "d", "a", "c"}, titles(got), "stable within equal keys")
}

func TestSortPrompts_TiesKeepInputOrder(t *testing.T) {
	ts := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	in := []domain.Prompt{
		{ID: "1", Title: "same", UpdatedAt: ts},
		{ID: "2", Title: "same", UpdatedAt: ts},
		{ID: "3", Title: "same", UpdatedAt: ts},
	}
	for _, st := range []SortType{SortByName, SortByDate, SortByFavorites} {
		got := SortPrompts(in, st, Ascending)
		require.Len(t, got, 3)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
		assert.Equal(t, "3", got[2].ID)
	}
}

func TestSortFolders_ByName(t *testing.T) {
	in := []domain.Folder{
		{ID: "1", Name: "Social"},
		{ID: "2", Name: "email"},
		{ID: "3", Name: "Archive"},
	}

	got := SortFolders(in, SortByName, Ascending)
	assert.Equal(t, "Archive", got[0].Name)
	assert.Equal(t, "email", got[1].Name)
	assert.Equal(t, "Social", got[2].Name)

	// Folders have no update time or favorite flag; those keys keep order.
	got = SortFolders(in, SortByDate, Ascending)
	assert.Equal(t, "Social", got[0].Name)
}

func TestParseSort(t *testing.T) {
	st, err := ParseSortType("date")
	require.NoError(t, err)
	assert.Equal(t, SortByDate, st)
	_, err = ParseSortType("size")
	assert.Error(t, err)

	dir, err := ParseSortDirection("desc")
	require.NoError(t, err)
	assert.Equal(t, Descending, dir)
	_, err = ParseSortDirection("up")
	assert.Error(t, err)
}
