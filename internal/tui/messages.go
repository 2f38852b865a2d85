package tui

import "github.com/alexisbeaulieu97/devfinder/internal/lookup"

// SubmitMsg asks the model to look up Query as if it had been typed.
type SubmitMsg struct {
	Query string
}

// ProfileFetchedMsg carries the outcome of one profile request.
type ProfileFetchedMsg struct {
	Response lookup.Response
}

// ToggleThemeMsg flips the display mode.
type ToggleThemeMsg struct{}
