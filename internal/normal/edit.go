package normal

import (
	"github.com/llehouerou/vimpd/internal/playlist"
	"github.com/llehouerou/vimpd/internal/ui/screen"
)

// The daemon owns the queue. Local edits are applied only once the daemon
// accepted the matching command; a refused command leaves both untouched.

// addSong queues count items starting at the cursor. Source panes advance
// past what was added.
func (m *Mode) addSong(scope playlist.Scope) Action {
	return func(count uint32) bool {
		active := m.screen.GetActiveWindow()
		cur := m.screen.ActiveWindow().CurrentLine()

		for i := range int(count) {
			switch {
			case active == screen.Library || scope == playlist.All:
				m.library.AddToPlaylist(scope, m.client, cur+i)
			case active == screen.Browse:
				m.browse.AddToPlaylist(m.client, cur+i)
			}
		}

		if active != screen.Playlist {
			m.screen.ActiveWindow().Scroll(int(count))
		}
		return true
	}
}

// deleteSong removes songs from the playlist into the paste buffer. On the
// browse pane each item is looked up in the playlist first.
func (m *Mode) deleteSong(scope playlist.Scope) Action {
	return func(count uint32) bool {
		active := m.screen.GetActiveWindow()
		if active != screen.Playlist && active != screen.Browse && scope != playlist.All {
			return true
		}

		w := m.screen.ActiveWindow()
		cur := w.CurrentLine()

		m.buffer.Clear()

		switch scope {
		case playlist.Single:
			for i := range int(count) {
				index := cur
				if active == screen.Browse {
					index = m.browseIndex(cur + i)
					w.Scroll(1)
				}
				m.deleteAt(index)
			}
		case playlist.All:
			m.buffer.Clear()
			if err := m.client.Clear(); err != nil {
				logger.Warn("clear refused", "err", err)
				break
			}
			m.playlist.Clear()
		}

		if active != screen.Browse {
			w.ScrollTo(cur)
		}
		return true
	}
}

// browseIndex maps a browse row to its playlist position, or -1.
func (m *Mode) browseIndex(row int) int {
	song, ok := m.browse.Get(row)
	if !ok {
		return -1
	}
	return m.playlist.Index(song)
}

func (m *Mode) deleteAt(index int) {
	if index < 0 || index >= m.playlist.Size() {
		return
	}
	if err := m.client.Delete(index); err != nil {
		logger.Warn("delete refused", "index", index, "err", err)
		return
	}
	m.buffer.Add(m.playlist.Remove(index, 1)...)
}

// pasteBuffer inserts count copies of the buffer at the cursor, in order.
func (m *Mode) pasteBuffer(count uint32) bool {
	cur := m.screen.ActiveWindow().CurrentLine()
	position := 0

	for range count {
		for j := range m.buffer.Size() {
			song, ok := m.buffer.Get(j)
			if !ok {
				continue
			}
			at := min(max(cur+position, 0), m.playlist.Size())
			if err := m.client.AddAt(song.URI, at); err != nil {
				logger.Warn("insert refused", "uri", song.URI, "pos", at, "err", err)
				continue
			}
			m.playlist.Add(song, at)
			position++
		}
	}
	return true
}
