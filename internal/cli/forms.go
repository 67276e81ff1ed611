package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
)

// aipmHuhTheme returns a huh theme using the existing Gruvbox palette.
func aipmHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// answersForm builds a huh form with one input per clarifying question.
// Answers land in the values slice at matching indexes.
func answersForm(questions []string, values []string) *huh.Form {
	fields := make([]huh.Field, len(questions))
	for i, q := range questions {
		fields[i] = huh.NewInput().
			Title(q).
			Placeholder("(leave blank to skip)").
			Value(&values[i])
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(aipmHuhTheme()).
		WithShowHelp(false)
}
