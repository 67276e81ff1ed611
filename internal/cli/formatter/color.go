package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zaydor/ai-project-manager/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ProjectStatusBadge returns a colored status label for a project.
func ProjectStatusBadge(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectIntake:
		return StyleYellow.Render("intake")
	case domain.ProjectPlanned:
		return StyleBlue.Render("planned")
	case domain.ProjectScheduled:
		return StyleGreen.Render("scheduled")
	case domain.ProjectArchived:
		return StyleDim.Render("archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// TaskStatusBadge returns a colored status label for a task.
func TaskStatusBadge(status domain.TaskStatus) string {
	switch status {
	case domain.TaskTodo:
		return StyleYellow.Render("todo")
	case domain.TaskInProgress:
		return StyleBlue.Render("in progress")
	case domain.TaskDone:
		return StyleGreen.Render("done")
	case domain.TaskArchived:
		return StyleDim.Render("archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
