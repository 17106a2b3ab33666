package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptbox/promptbox/internal/domain"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"none", "plain text", nil},
		{"single", "Hi {{name}}", []string{"name"}},
		{"distinct in order", "{{b}} {{a}} {{b}}", []string{"b", "a"}},
		{"spaces allowed in name", "{{first name}}", []string{"first name"}},
		{"unterminated ignored", "{{open and {{x}}", []string{"x"}},
		{"empty braces ignored", "{{}}", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Placeholders(tt.content))
		})
	}
}

func TestRender_OverridesAndDefaults(t *testing.T) {
	content := "Hi {{name}}, re {{subject}}"
	vars := []domain.Variable{
		{Name: "name", DefaultValue: "Friend"},
		{Name: "subject", DefaultValue: "stuff"},
	}

	got := Render(content, vars, map[string]string{"name": "Ann"})
	assert.Equal(t, "Hi Ann, re stuff", got)
}

func TestRender_UnknownPlaceholderStaysLiteral(t *testing.T) {
	got := Render("{{unknown}}", nil, nil)
	assert.Equal(t, "{{unknown}}", got)

	got = Render("{{unknown}} and {{a}}", []domain.Variable{{Name: "a", DefaultValue: "1"}}, nil)
	assert.Equal(t, "{{unknown}} and 1", got)
}

func TestRender_MultipleOccurrences(t *testing.T) {
	vars := []domain.Variable{{Name: "x", DefaultValue: "7"}}
	got := Render("{{x}}+{{x}}={{x}}{{x}}", vars, nil)
	assert.Equal(t, "7+7=77", got)
}

func TestRender_NoResubstitution(t *testing.T) {
	// A value that textually equals another placeholder must come through
	// literally, not get substituted in turn.
	vars := []domain.Variable{
		{Name: "name", DefaultValue: "Friend"},
		{Name: "subject", DefaultValue: "stuff"},
	}
	got := Render("Hi {{name}}", vars, map[string]string{"name": "{{subject}}"})
	assert.Equal(t, "Hi {{subject}}", got)
}

func TestRender_OverrideForUndeclaredNameIgnored(t *testing.T) {
	got := Render("{{a}} {{b}}", []domain.Variable{{Name: "a", DefaultValue: "1"}},
		map[string]string{"b": "2"})
	assert.Equal(t, "1 {{b}}", got)
}

func TestRender_EmptyOverrideWins(t *testing.T) {
	vars := []domain.Variable{{Name: "a", DefaultValue: "default"}}
	got := Render("[{{a}}]", vars, map[string]string{"a": ""})
	assert.Equal(t, "[]", got)
}
