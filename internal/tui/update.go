package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.inputWidth()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Only animate while a request is outstanding
	case spinner.TickMsg:
		if !m.controller.Snapshot().IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SubmitMsg:
		return m.submit(msg.Query)

	case ToggleThemeMsg:
		m.toggleTheme()
		return m, nil

	case ProfileFetchedMsg:
		m.controller.Resolve(msg.Response)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.controller.Close()
		return m, tea.Quit

	case "ctrl+t":
		return m, toggleThemeCmd()

	case "enter":
		query := m.input.Value()
		next, cmd := m.submit(query)
		if cmd != nil {
			next.input.Reset()
		}
		return next, cmd

	case "esc":
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands query to the controller. Blank queries produce no command.
func (m Model) submit(query string) (Model, tea.Cmd) {
	req, ok := m.controller.Submit(query)
	if !ok {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, fetchProfileCmd(req, m.fetcher))
}

func (m *Model) toggleTheme() {
	m.theme.Toggle()
	m.applyTheme()
}
