// Package template fills {{name}} placeholders in prompt content.
package template

import (
	"regexp"

	"github.com/promptbox/promptbox/internal/domain"
)

// A placeholder is {{ followed by one or more non-brace characters and }}.
var placeholderRe = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Placeholders returns the distinct placeholder names in content, in order of
// first occurrence.
func Placeholders(content string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Render substitutes every {{name}} occurrence of a declared variable with
// overrides[name], falling back to the variable's default value. Placeholders
// without a declared variable pass through literally. Substitution is a single
// pass over the original content, so a substituted value that itself looks
// like a placeholder is never re-substituted.
func Render(content string, variables []domain.Variable, overrides map[string]string) string {
	if len(variables) == 0 {
		return content
	}
	values := make(map[string]string, len(variables))
	for _, v := range variables {
		if override, ok := overrides[v.Name]; ok {
			values[v.Name] = override
		} else {
			values[v.Name] = v.DefaultValue
		}
	}
	return placeholderRe.ReplaceAllStringFunc(content, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}
