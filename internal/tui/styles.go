package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devfinder/internal/theme"
)

// Styles is the full set of lipgloss styles for one palette.
type Styles struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Toggle    lipgloss.Style
	SearchBox lipgloss.Style
	Prompt    lipgloss.Style
	Button    lipgloss.Style

	Card      lipgloss.Style
	Name      lipgloss.Style
	Handle    lipgloss.Style
	Avatar    lipgloss.Style
	Joined    lipgloss.Style
	Bio       lipgloss.Style
	Stats     lipgloss.Style
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	Link        lipgloss.Style
	Unavailable lipgloss.Style

	Error     lipgloss.Style
	ErrorIcon lipgloss.Style
	Spinner   lipgloss.Style
	Help      lipgloss.Style

	palette theme.Palette
}

// NewStyles derives every style from p. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer, p theme.Palette) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	base := r.NewStyle()

	return Styles{
		App: base.
			Background(p.Background).
			Padding(1, 2),

		Title: base.
			Bold(true).
			Foreground(p.Heading),

		Toggle: base.
			Bold(true).
			Foreground(p.Text),

		SearchBox: base.
			Background(p.Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			MarginTop(1),

		Prompt: base.
			Foreground(p.Accent),

		Button: base.
			Bold(true).
			Foreground(p.OnAccent).
			Background(p.Accent).
			Padding(0, 2),

		Card: base.
			Background(p.Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 3).
			MarginTop(1),

		Name: base.
			Bold(true).
			Foreground(p.Heading),

		Handle: base.
			Foreground(p.Accent),

		Avatar: base.
			Foreground(p.Unavailable).
			Italic(true),

		Joined: base.
			Foreground(p.Text),

		Bio: base.
			Foreground(p.Text).
			MarginTop(1),

		Stats: base.
			Background(p.Background).
			Padding(0, 2).
			MarginTop(1),

		StatLabel: base.
			Foreground(p.Text),

		StatValue: base.
			Bold(true).
			Foreground(p.Heading),

		Link: base.
			Foreground(p.Text),

		Unavailable: base.
			Foreground(p.Unavailable),

		Error: base.
			Bold(true).
			Italic(true).
			Foreground(p.Danger).
			Align(lipgloss.Center),

		ErrorIcon: base.
			Align(lipgloss.Center),

		Spinner: base.
			Foreground(p.Accent),

		Help: base.
			Foreground(p.Unavailable).
			MarginTop(1),

		palette: p,
	}
}

// Palette returns the colours the styles were built from.
func (s Styles) Palette() theme.Palette {
	return s.palette
}

// blockWidth converts an outer width into the value lipgloss expects for
// Style.Width, which excludes borders and margins.
func blockWidth(s lipgloss.Style, outer int) int {
	w := outer - s.GetHorizontalMargins() - s.GetHorizontalBorderSize()
	if w < 1 {
		return 1
	}
	return w
}
