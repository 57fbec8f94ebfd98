package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/vimpd/internal/ui/render"
	"github.com/llehouerou/vimpd/internal/ui/styles"
)

// chromeRows is the tab bar plus the mode line.
const chromeRows = 2

const appName = "vimpd"

// Screen owns the main windows and routes cursor commands to the active one.
type Screen struct {
	windows     [NumWindows]Window
	active      WindowID
	width       int
	height      int
	invalidated bool
}

// New creates a screen over the four main windows, starting on the playlist.
func New(lib, brw, pl, help Window) *Screen {
	return &Screen{
		windows: [NumWindows]Window{
			Library:  lib,
			Browse:   brw,
			Playlist: pl,
			Help:     help,
		},
		active: Playlist,
	}
}

// Resize records the terminal size and resizes every window.
func (s *Screen) Resize(width, height int) {
	s.width = width
	s.height = height
	for _, w := range s.windows {
		w.Resize(s.rows())
	}
}

// Sync clamps every window's cursor after content changed underneath it.
func (s *Screen) Sync() {
	for _, w := range s.windows {
		w.Sync()
	}
}

func (s *Screen) rows() int {
	return max(s.height-chromeRows, 1)
}

// MaxRows is the terminal height.
func (s *Screen) MaxRows() int { return s.height }

// MaxColumns is the terminal width.
func (s *Screen) MaxColumns() int { return s.width }

// Window returns the window with id, or nil.
func (s *Screen) Window(id WindowID) Window {
	if id < 0 || int(id) >= NumWindows {
		return nil
	}
	return s.windows[id]
}

// ActiveWindow returns the window receiving commands.
func (s *Screen) ActiveWindow() Window {
	return s.windows[s.active]
}

// GetActiveWindow returns the id of the active window.
func (s *Screen) GetActiveWindow() WindowID {
	return s.active
}

// SetActiveWindow activates id. Unknown ids are ignored.
func (s *Screen) SetActiveWindow(id WindowID) {
	if id < 0 || int(id) >= NumWindows {
		return
	}
	s.active = id
}

// StepActiveWindow moves to the next or previous window, wrapping around.
func (s *Screen) StepActiveWindow(skip Skip) {
	switch skip {
	case Next:
		s.active = (s.active + 1) % NumWindows
	case Previous:
		s.active = (s.active + NumWindows - 1) % NumWindows
	}
}

// VisibleWindows is the number of windows that can be activated.
func (s *Screen) VisibleWindows() int {
	return NumWindows
}

// Scroll moves the active window's cursor by count lines or pages.
func (s *Screen) Scroll(size Size, dir Direction, count uint32) {
	n := int(count)
	if size == Page {
		n *= s.rows()
	}
	if dir == Up {
		n = -n
	}
	s.ActiveWindow().Scroll(n)
}

// ScrollTo moves the active window's cursor to a named location.
func (s *Screen) ScrollTo(loc Location) {
	w := s.ActiveWindow()
	switch loc {
	case Top:
		w.ScrollTo(0)
	case Centre:
		w.ScrollTo((w.ContentSize() - 1) / 2)
	case Bottom:
		w.ScrollTo(w.ContentSize() - 1)
	case Current:
		if p := w.Playing(); p >= 0 {
			w.ScrollTo(p)
		}
	}
}

// ScrollToLine moves to the 1-based line for Specific, or to loc otherwise.
func (s *Screen) ScrollToLine(loc Location, line uint32) {
	if loc != Specific {
		s.ScrollTo(loc)
		return
	}
	s.ActiveWindow().ScrollTo(int(line) - 1)
}

// Select moves the cursor onto a visible row; count counts rows inward.
func (s *Screen) Select(pos Position, count uint32) {
	s.ActiveWindow().Select(pos.anchor(), int(count))
}

// AlignTo scrolls so the cursor line sits at loc. A non-zero 1-based line
// moves the cursor there first.
func (s *Screen) AlignTo(loc Location, line uint32) {
	w := s.ActiveWindow()
	if line > 0 {
		w.ScrollTo(int(line) - 1)
	}
	w.Align(loc.anchor())
}

// Invalidate requests a full repaint.
func (s *Screen) Invalidate() {
	s.invalidated = true
}

// TakeInvalidated reports and clears a pending repaint request.
func (s *Screen) TakeInvalidated() bool {
	v := s.invalidated
	s.invalidated = false
	return v
}

// View renders the tab bar and the active window, without the mode line.
func (s *Screen) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	st := styles.T().S()

	var b strings.Builder
	b.WriteString(s.tabBar())
	b.WriteByte('\n')

	w := s.ActiveWindow()
	size := w.ContentSize()
	rows := s.rows()
	start, end := w.Cursor().VisibleRange(size, rows)
	for i := start; i < end; i++ {
		text := render.Line(w.Line(i), s.width)
		switch {
		case i == w.CurrentLine():
			text = st.Cursor.Width(s.width).Render(text)
		case i == w.Playing():
			text = st.Playing.Render(text)
		default:
			text = st.Base.Render(text)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	for i := end - start; i < rows; i++ {
		b.WriteString(st.Muted.Render("~"))
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *Screen) tabBar() string {
	st := styles.T().S()
	t := styles.T()

	parts := []string{styles.Gradient(appName, t.Primary, t.Secondary)}
	for id, w := range s.windows {
		label := fmt.Sprintf("%d:%s", id+1, w.Title())
		if WindowID(id) == s.active {
			parts = append(parts, st.ActiveTab.Render(label))
		} else {
			parts = append(parts, st.Tab.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return ansi.Truncate(bar, s.width, "")
}
