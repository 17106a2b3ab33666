package store

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/promptbox/promptbox/internal/domain"
)

// SortType selects the comparison key.
type SortType string

const (
	SortByName      SortType = "name"
	SortByDate      SortType = "date"
	SortByFavorites SortType = "favorites"
)

// SortDirection inverts the comparator uniformly; the date key already orders
// newest-first at "asc".
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortType validates a sort type string from flags or config.
func ParseSortType(s string) (SortType, error) {
	switch SortType(s) {
	case SortByName, SortByDate, SortByFavorites:
		return SortType(s), nil
	}
	return "", fmt.Errorf("invalid sort type %q (want name, date, or favorites)", s)
}

// ParseSortDirection validates a sort direction string from flags or config.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case Ascending, Descending:
		return SortDirection(s), nil
	}
	return "", fmt.Errorf("invalid sort direction %q (want asc or desc)", s)
}

// SortPrompts returns a new stably-sorted sequence; the input is not mutated.
func SortPrompts(items []domain.Prompt, st SortType, dir SortDirection) []domain.Prompt {
	out := append([]domain.Prompt(nil), items...)
	c := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b domain.Prompt) int {
		var r int
		switch st {
		case SortByName:
			r = c.CompareString(a.Title, b.Title)
		case SortByDate:
			r = b.UpdatedAt.Compare(a.UpdatedAt)
		case SortByFavorites:
			r = boolToInt(b.Favorite) - boolToInt(a.Favorite)
		}
		return applyDirection(r, dir)
	})
	return out
}

// SortFolders returns a new stably-sorted sequence. Folders carry no update
// time or favorite flag, so only the name key reorders them.
func SortFolders(items []domain.Folder, st SortType, dir SortDirection) []domain.Folder {
	out := append([]domain.Folder(nil), items...)
	c := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b domain.Folder) int {
		var r int
		if st == SortByName {
			r = c.CompareString(a.Name, b.Name)
		}
		return applyDirection(r, dir)
	})
	return out
}

func applyDirection(r int, dir SortDirection) int {
	if dir == Descending {
		return -r
	}
	return r
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
