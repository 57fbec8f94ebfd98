// Package styles holds the colour palette and lipgloss styles of the panes.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // window tabs, playing song
	Secondary lipgloss.Color // gradient end of the title

	FgBase  lipgloss.Color
	FgMuted lipgloss.Color

	BgCursor lipgloss.Color
	BgBar    lipgloss.Color

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Playing   lipgloss.Style
	Cursor    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Bar       lipgloss.Style
	Error     lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:  lipgloss.Color("#c0c0c0"),
	FgMuted: lipgloss.Color("#808080"),

	BgCursor: lipgloss.Color("#303030"),
	BgBar:    lipgloss.Color("#202020"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:  base,
		Muted: lipgloss.NewStyle().Foreground(t.FgMuted),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Tab: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),
		Bar: lipgloss.NewStyle().
			Background(t.BgBar).
			Foreground(t.FgBase),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
