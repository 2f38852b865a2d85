package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/devfinder/internal/github"
	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
)

// fetchProfileCmd runs req off the event loop and reports back with a
// ProfileFetchedMsg. Cancelled requests still report; the controller drops them.
func fetchProfileCmd(req lookup.Request, fetcher github.ProfileFetcher) tea.Cmd {
	return func() tea.Msg {
		return ProfileFetchedMsg{Response: lookup.Execute(req, fetcher)}
	}
}

// submitCmd emits a SubmitMsg for query.
func submitCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return SubmitMsg{Query: query}
	}
}

// toggleThemeCmd emits a ToggleThemeMsg.
func toggleThemeCmd() tea.Cmd {
	return func() tea.Msg {
		return ToggleThemeMsg{}
	}
}
