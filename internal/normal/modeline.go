package normal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ModeLine returns the status line rendered after the last dispatch.
func (m *Mode) ModeLine() string {
	return m.modeLine
}

// Refresh re-renders the status line, for changes that did not come from a
// key (resize, daemon status).
func (m *Mode) Refresh() {
	m.displayModeLine()
}

func (m *Mode) displayModeLine() {
	m.modeLine = m.renderModeLine()
}

// renderModeLine lays out "<state>...   <cur>/<total> -- <scroll>". The
// position only shows with a non-empty playlist and the scroll marker only
// once the playlist outgrows the screen.
func (m *Mode) renderModeLine() string {
	var b strings.Builder

	scroll := 0.0
	if m.playlist.Size() > 0 {
		w := m.screen.ActiveWindow()
		line, size := w.CurrentLine(), w.ContentSize()
		if size > 1 {
			scroll = float64(line) / float64(size-1)
		}
		scroll += .005
		fmt.Fprintf(&b, "%d/%d -- ", line+1, size+1)
	}

	if m.playlist.Size() > m.screen.MaxRows()-1 {
		switch {
		case scroll <= .010:
			b.WriteString("Top ")
		case scroll >= 1.0:
			b.WriteString("Bot ")
		default:
			fmt.Fprintf(&b, "%2d%%", int(scroll*100))
		}
	}

	state := m.client.CurrentState() + "..."
	if err := m.client.LastError(); err != nil {
		state = err.Error()
	}
	position := b.String()

	pad := m.screen.MaxColumns() - runewidth.StringWidth(state) - runewidth.StringWidth(position)
	return state + strings.Repeat(" ", max(pad, 0)) + position
}
