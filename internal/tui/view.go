package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	width := m.contentWidth()

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(width),
		m.renderSearch(width),
		m.renderBody(width),
		m.renderHelp(),
	)

	return m.styles.App.Render(content)
}

// renderHeader renders the title and the theme toggle
func (m Model) renderHeader(width int) string {
	title := m.styles.Title.Render("devfinder")
	toggle := m.styles.Toggle.Render(m.theme.Label() + " " + m.theme.Icon())

	gap := width - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), toggle)
}

// renderSearch renders the input box with its search button
func (m Model) renderSearch(width int) string {
	button := m.styles.Button.Render("Search")
	row := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", button)
	return m.styles.SearchBox.Width(blockWidth(m.styles.SearchBox, width)).Render(row)
}

// renderBody renders exactly one of the loading, error or profile views
func (m Model) renderBody(width int) string {
	state := m.controller.Snapshot()

	switch {
	case state.IsLoading():
		return m.renderLoading(width)
	case state.Failed():
		return m.renderError(width, state.Message)
	default:
		return RenderCard(m.Card(), m.styles, width)
	}
}

func (m Model) renderLoading(width int) string {
	line := m.spinner.View() + " " + m.styles.Link.Render("Loading profile...")
	box := m.styles.Card.Width(blockWidth(m.styles.Card, width))
	return box.Render(lipgloss.PlaceHorizontal(width-box.GetHorizontalFrameSize(), lipgloss.Center, line))
}

func (m Model) renderError(width int, message string) string {
	box := m.styles.Card.Width(blockWidth(m.styles.Card, width))
	inner := width - box.GetHorizontalFrameSize()
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		m.styles.ErrorIcon.Width(inner).Render("😕"),
		m.styles.Error.Width(inner).Render(message+"!"),
	)
	return box.Render(body)
}

func (m Model) renderHelp() string {
	return m.styles.Help.Render("enter search • ctrl+t theme • esc clear • ctrl+c quit")
}
