// Package format holds small display helpers shared by the CLI commands.
package format

import "strings"

// ShortID strips the kind prefix from an id and truncates it for table
// display; the short form is accepted back as a partial id.
func ShortID(id string) string {
	for _, prefix := range []string{"prompt-", "folder-"} {
		if rest := strings.TrimPrefix(id, prefix); rest != id {
			id = rest
			break
		}
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// FirstLine returns s up to the first newline.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Mark renders a boolean as a table cell.
func Mark(b bool) string {
	if b {
		return "*"
	}
	return ""
}
