// Package fill is the interactive variable-fill dialog: one input per
// declared variable with a live preview of the rendered prompt.
package fill

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptbox/promptbox/internal/domain"
	"github.com/promptbox/promptbox/internal/template"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			MarginTop(1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
)

// Model is the bubbletea model for the fill dialog.
type Model struct {
	prompt   domain.Prompt
	inputs   []textinput.Model
	focused  int
	canceled bool
	width    int
}

// New builds a dialog for the prompt's declared variables.
func New(p domain.Prompt) Model {
	inputs := make([]textinput.Model, len(p.Variables))
	for i, v := range p.Variables {
		ti := textinput.New()
		ti.Placeholder = v.DefaultValue
		ti.Prompt = "> "
		ti.Width = 48
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return Model{prompt: p, inputs: inputs, width: 72}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if m.focused == len(m.inputs)-1 {
				return m, tea.Quit
			}
			m.setFocus(m.focused + 1)
			return m, nil
		case "tab", "down":
			m.setFocus((m.focused + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focused - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Fill variables for %q", m.prompt.Title)))
	b.WriteString("\n")

	for i, v := range m.prompt.Variables {
		b.WriteString(labelStyle.Render(fmt.Sprintf("{{%s}}", v.Name)))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	preview := template.Render(m.prompt.Content, m.prompt.Variables, m.Values())
	maxWidth := m.width - 4
	if maxWidth < 20 {
		maxWidth = 20
	}
	b.WriteString(previewStyle.Width(maxWidth).Render(preview))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: next/confirm • tab: cycle • esc: cancel"))

	return b.String()
}

// Values returns the overrides typed so far; untouched inputs fall back to
// the variable defaults at render time.
func (m Model) Values() map[string]string {
	out := make(map[string]string)
	for i, v := range m.prompt.Variables {
		if value := m.inputs[i].Value(); value != "" {
			out[v.Name] = value
		}
	}
	return out
}

// Canceled reports whether the dialog was dismissed without confirming.
func (m Model) Canceled() bool {
	return m.canceled
}

// Run shows the dialog and returns the chosen overrides. Prompts without
// declared variables skip the dialog entirely.
func Run(p domain.Prompt) (map[string]string, bool, error) {
	if len(p.Variables) == 0 {
		return map[string]string{}, false, nil
	}
	final, err := tea.NewProgram(New(p)).Run()
	if err != nil {
		return nil, false, fmt.Errorf("fill dialog failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, false, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Values(), m.canceled, nil
}
