// Package tui is the interactive profile search screen.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/devfinder/internal/github"
	"github.com/alexisbeaulieu97/devfinder/internal/lookup"
	"github.com/alexisbeaulieu97/devfinder/internal/presenter"
	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// maxContentWidth keeps the card readable on wide terminals.
	maxContentWidth = 72

	inputPlaceholder = "Search GitHub username..."
)

// Options configures a Model.
type Options struct {
	Fetcher      github.ProfileFetcher
	Controller   *lookup.Controller
	Theme        theme.Mode
	Dates        presenter.Options
	InitialQuery string
}

// Model is the Bubble Tea model of the search screen. The lookup controller
// is the only owner of request state; the model renders its snapshots.
type Model struct {
	// Core
	controller *lookup.Controller
	fetcher    github.ProfileFetcher
	dates      presenter.Options

	// Presentation
	theme  theme.Switch
	styles Styles

	// Components
	input   textinput.Model
	spinner spinner.Model

	initialQuery string

	// Dimensions
	width  int
	height int
}

// NewModel creates the search screen.
func NewModel(opts Options) Model {
	controller := opts.Controller
	if controller == nil {
		controller = lookup.NewController(lookup.Options{})
	}

	dates := opts.Dates
	if dates.Layout == "" && dates.Locale == "" {
		dates = presenter.DefaultOptions()
	}

	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 39
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		controller:   controller,
		fetcher:      opts.Fetcher,
		dates:        dates,
		theme:        theme.NewSwitch(opts.Theme),
		input:        ti,
		spinner:      s,
		initialQuery: opts.InitialQuery,
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.input.Width = m.inputWidth()
	m.applyTheme()

	return m
}

// Init starts the cursor blink and, when configured, the first lookup.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initialQuery != "" {
		cmds = append(cmds, submitCmd(m.initialQuery))
	}
	return tea.Batch(cmds...)
}

// State returns the current lookup snapshot.
func (m Model) State() lookup.State {
	return m.controller.Snapshot()
}

// ThemeMode returns the active display mode.
func (m Model) ThemeMode() theme.Mode {
	return m.theme.Mode()
}

// Query returns the text currently typed in the search box.
func (m Model) Query() string {
	return m.input.Value()
}

// Card returns the card for the current state: the fetched record on
// success and the placeholder otherwise.
func (m Model) Card() presenter.Card {
	state := m.controller.Snapshot()
	if state.Succeeded() {
		return presenter.Present(state.Profile, m.dates)
	}
	return presenter.Placeholder(m.dates)
}

func (m *Model) applyTheme() {
	m.styles = NewStyles(nil, m.theme.Palette())

	m.spinner.Style = m.styles.Spinner
	m.input.PromptStyle = m.styles.Prompt
	m.input.TextStyle = m.styles.Title.UnsetBold()
	m.input.PlaceholderStyle = m.styles.Link
	m.input.Cursor.Style = m.styles.Prompt
}

// inputWidth leaves room for the prompt, box border and search button.
func (m *Model) inputWidth() int {
	return m.contentWidth() - 16
}

func (m *Model) contentWidth() int {
	w := m.width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}
