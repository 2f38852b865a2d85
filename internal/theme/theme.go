// Package theme holds the binary light/dark display mode and the colours
// each mode renders with.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the display mode.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggled returns the opposite mode.
func (m Mode) Toggled() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q (expected light or dark)", s)
	}
}

// Palette describes the semantic colour slots of one mode.
type Palette struct {
	Background  lipgloss.Color
	Surface     lipgloss.Color
	Heading     lipgloss.Color
	Text        lipgloss.Color
	Accent      lipgloss.Color
	OnAccent    lipgloss.Color
	Unavailable lipgloss.Color
	Danger      lipgloss.Color
	Border      lipgloss.Color
}

// LightPalette mirrors the light web palette.
func LightPalette() Palette {
	return Palette{
		Background:  lipgloss.Color("#f6f8ff"),
		Surface:     lipgloss.Color("#ffffff"),
		Heading:     lipgloss.Color("#1e2a47"),
		Text:        lipgloss.Color("#697cb4"),
		Accent:      lipgloss.Color("#0079ff"),
		OnAccent:    lipgloss.Color("#ffffff"),
		Unavailable: lipgloss.Color("#bbb3ca"),
		Danger:      lipgloss.Color("#dc2626"),
		Border:      lipgloss.Color("#bfdbfe"),
	}
}

// DarkPalette mirrors the dark web palette.
func DarkPalette() Palette {
	return Palette{
		Background:  lipgloss.Color("#141d2f"),
		Surface:     lipgloss.Color("#1e2a47"),
		Heading:     lipgloss.Color("#ffffff"),
		Text:        lipgloss.Color("#ffffff"),
		Accent:      lipgloss.Color("#0079ff"),
		OnAccent:    lipgloss.Color("#ffffff"),
		Unavailable: lipgloss.Color("#bbb3ca"),
		Danger:      lipgloss.Color("#dc2626"),
		Border:      lipgloss.Color("#111827"),
	}
}

// PaletteFor returns the palette of mode.
func PaletteFor(mode Mode) Palette {
	if mode == Dark {
		return DarkPalette()
	}
	return LightPalette()
}

// Switch owns the current mode. It is a value type so it can live inside a
// Bubble Tea model.
type Switch struct {
	mode Mode
}

// NewSwitch starts in mode.
func NewSwitch(mode Mode) Switch {
	return Switch{mode: mode}
}

// Toggle flips between Light and Dark.
func (s *Switch) Toggle() {
	s.mode = s.mode.Toggled()
}

// Mode returns the current mode.
func (s Switch) Mode() Mode {
	return s.mode
}

// Dark reports whether the dark mode is active.
func (s Switch) Dark() bool {
	return s.mode == Dark
}

// Label names the mode a toggle would switch to, as shown on the toggle control.
func (s Switch) Label() string {
	if s.mode == Dark {
		return "Light"
	}
	return "Dark"
}

// Icon is the glyph shown beside the label.
func (s Switch) Icon() string {
	if s.mode == Dark {
		return "☀"
	}
	return "☾"
}

// Palette returns the colours of the current mode.
func (s Switch) Palette() Palette {
	return PaletteFor(s.mode)
}
