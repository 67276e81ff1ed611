package formatter

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type spinnerDoneMsg struct{ err error }

type spinnerModel struct {
	spinner spinner.Model
	message string
	err     error
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StylePurple
	return spinnerModel{spinner: s, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		// The spinner is not interactive; swallow keys.
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	return "  " + m.spinner.View() + Dim(m.message) + "\n"
}

// WithSpinner runs fn while an animated spinner shows message. When
// interactive is false (no TTY) fn runs without any terminal output.
func WithSpinner(message string, interactive bool, fn func() error) error {
	if !interactive {
		return fn()
	}

	program := tea.NewProgram(newSpinnerModel(message))
	go func() {
		program.Send(spinnerDoneMsg{err: fn()})
	}()

	final, err := program.Run()
	if err != nil {
		return err
	}
	return final.(spinnerModel).err
}
