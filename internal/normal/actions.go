package normal

import (
	"github.com/llehouerou/vimpd/internal/keymap"
	"github.com/llehouerou/vimpd/internal/playlist"
	"github.com/llehouerou/vimpd/internal/ui/screen"
)

// actions maps every bindable command to its implementation. Variants of a
// shared algorithm close over their parameter here.
func (m *Mode) actions() map[keymap.Action]Action {
	a := map[keymap.Action]Action{
		keymap.ActionRepeat:      m.repeatLastAction,
		keymap.ActionClearScreen: m.clearScreen,

		keymap.ActionPause:  m.pause,
		keymap.ActionRandom: m.random,
		keymap.ActionStop:   m.stop,

		keymap.ActionSkipSongNext:     m.skipSong(screen.Next),
		keymap.ActionSkipSongPrevious: m.skipSong(screen.Previous),
		keymap.ActionSkipArtistNext:   m.skipArtist(screen.Next),
		keymap.ActionSkipArtistPrev:   m.skipArtist(screen.Previous),
		keymap.ActionSkipAlbumNext:    m.skipAlbum(screen.Next),
		keymap.ActionSkipAlbumPrev:    m.skipAlbum(screen.Previous),

		keymap.ActionSelectFirst:  m.selectRow(screen.First),
		keymap.ActionSelectMiddle: m.selectRow(screen.Middle),
		keymap.ActionSelectLast:   m.selectRow(screen.Last),

		keymap.ActionDelete:    m.deleteSong(playlist.Single),
		keymap.ActionDeleteAll: m.deleteSong(playlist.All),
		keymap.ActionAdd:       m.addSong(playlist.Single),
		keymap.ActionAddAll:    m.addSong(playlist.All),
		keymap.ActionPaste:     m.pasteBuffer,

		keymap.ActionLeft:    m.left,
		keymap.ActionRight:   m.right,
		keymap.ActionConfirm: m.confirm,

		keymap.ActionSearchNext:     m.searchResult(screen.Next),
		keymap.ActionSearchPrevious: m.searchResult(screen.Previous),

		keymap.ActionScrollLineUp:     m.scroll(screen.Line, screen.Up),
		keymap.ActionScrollLineDown:   m.scroll(screen.Line, screen.Down),
		keymap.ActionScrollPageUp:     m.scroll(screen.Page, screen.Up),
		keymap.ActionScrollPageDown:   m.scroll(screen.Page, screen.Down),
		keymap.ActionScrollTop:        m.scrollTo(screen.Top),
		keymap.ActionScrollCurrent:    m.scrollTo(screen.Current),
		keymap.ActionScrollBottom:     m.scrollTo(screen.Bottom),
		keymap.ActionScrollLineBottom: m.scrollToLine(screen.Bottom),
		keymap.ActionScrollLineTop:    m.scrollToLine(screen.Top),

		keymap.ActionExpand:   m.expand,
		keymap.ActionCollapse: m.collapse,

		keymap.ActionWindowNext:     m.setActiveWindow(screen.Next, 0),
		keymap.ActionWindowPrevious: m.setActiveWindow(screen.Previous, 0),

		keymap.ActionAlignCentre: m.alignTo(screen.Centre),
		keymap.ActionAlignTop:    m.alignTo(screen.Top),
		keymap.ActionAlignBottom: m.alignTo(screen.Bottom),
	}
	for i, name := range keymap.WindowActions {
		a[name] = m.setActiveWindow(screen.Absolute, screen.WindowID(i))
	}
	return a
}

func (m *Mode) clearScreen(uint32) bool {
	m.player.ClearScreen()
	return true
}

func (m *Mode) pause(uint32) bool {
	m.player.Pause()
	return true
}

func (m *Mode) random(uint32) bool {
	m.player.ToggleRandom()
	return true
}

func (m *Mode) stop(uint32) bool {
	m.player.Stop()
	return true
}

func (m *Mode) left(count uint32) bool {
	m.screen.ActiveWindow().Left(count)
	return true
}

func (m *Mode) right(count uint32) bool {
	m.screen.ActiveWindow().Right(count)
	return true
}

func (m *Mode) confirm(uint32) bool {
	m.screen.ActiveWindow().Confirm()
	return true
}

// expand and collapse only make sense on the library tree.
func (m *Mode) expand(uint32) bool {
	if m.screen.GetActiveWindow() == screen.Library {
		m.library.Expand(m.screen.ActiveWindow().CurrentLine())
	}
	return true
}

func (m *Mode) collapse(uint32) bool {
	if m.screen.GetActiveWindow() == screen.Library {
		w := m.screen.ActiveWindow()
		w.ScrollTo(m.library.CollapseAt(w.CurrentLine()))
	}
	return true
}

func (m *Mode) skipSong(skip screen.Skip) Action {
	return func(count uint32) bool {
		m.player.SkipSong(skip, count)
		return true
	}
}

func (m *Mode) skipAlbum(skip screen.Skip) Action {
	return func(count uint32) bool {
		m.player.SkipAlbum(skip, count)
		return true
	}
}

func (m *Mode) skipArtist(skip screen.Skip) Action {
	return func(count uint32) bool {
		m.player.SkipArtist(skip, count)
		return true
	}
}

func (m *Mode) selectRow(pos screen.Position) Action {
	return func(count uint32) bool {
		m.screen.Select(pos, count)
		return true
	}
}

func (m *Mode) searchResult(skip screen.Skip) Action {
	return func(count uint32) bool {
		return m.search.SearchResult(skip, count)
	}
}

func (m *Mode) scroll(size screen.Size, dir screen.Direction) Action {
	return func(count uint32) bool {
		m.screen.Scroll(size, dir, count)
		return true
	}
}

// scrollTo ignores the count.
func (m *Mode) scrollTo(loc screen.Location) Action {
	return func(uint32) bool {
		m.screen.ScrollTo(loc)
		return true
	}
}

// scrollToLine jumps to the typed line, or to fallback without a count.
func (m *Mode) scrollToLine(fallback screen.Location) Action {
	return func(line uint32) bool {
		if !m.wasSpecificCount {
			m.screen.ScrollTo(fallback)
			return true
		}
		m.screen.ScrollToLine(screen.Specific, line)
		return true
	}
}

// alignTo aligns the typed line, or the cursor line without a count.
func (m *Mode) alignTo(loc screen.Location) Action {
	return func(line uint32) bool {
		if !m.wasSpecificCount {
			line = 0
		}
		m.screen.AlignTo(loc, line)
		return true
	}
}

// setActiveWindow switches panes. With a typed count, next jumps to window
// count and previous steps back count times.
func (m *Mode) setActiveWindow(skip screen.Skip, id screen.WindowID) Action {
	return func(count uint32) bool {
		switch {
		case skip == screen.Absolute:
			m.screen.SetActiveWindow(id)
		case skip == screen.Next && m.wasSpecificCount:
			m.screen.SetActiveWindow(screen.WindowID(count - 1))
		case skip == screen.Previous && m.wasSpecificCount:
			n := m.screen.VisibleWindows()
			if n <= 0 {
				return true
			}
			for range count % uint32(n) {
				m.screen.StepActiveWindow(skip)
			}
		default:
			m.screen.StepActiveWindow(skip)
		}
		return true
	}
}
