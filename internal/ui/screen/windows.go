package screen

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/vimpd/internal/browse"
	"github.com/llehouerou/vimpd/internal/keymap"
	"github.com/llehouerou/vimpd/internal/library"
	"github.com/llehouerou/vimpd/internal/playlist"
)

// Player starts playback of a playlist position.
type Player interface {
	Play(pos int) error
}

// PlaylistWindow shows the daemon's play queue.
type PlaylistWindow struct {
	ScrollWindow
	queue   *playlist.Playlist
	player  Player
	playing int
}

// NewPlaylistWindow creates the playlist pane.
func NewPlaylistWindow(margin int, queue *playlist.Playlist, player Player) *PlaylistWindow {
	w := &PlaylistWindow{queue: queue, player: player, playing: -1}
	w.ScrollWindow = newScrollWindow(margin, queue.Size, w.render)
	return w
}

func (w *PlaylistWindow) Title() string { return "Playlist" }
func (w *PlaylistWindow) Playing() int  { return w.playing }

// SetPlaying records the daemon's current song position (-1 for none).
func (w *PlaylistWindow) SetPlaying(pos int) {
	w.playing = pos
}

// Confirm plays the song under the cursor.
func (w *PlaylistWindow) Confirm() {
	if w.queue.Size() == 0 {
		return
	}
	if err := w.player.Play(w.CurrentLine()); err != nil {
		logger.Warn("play refused", "pos", w.CurrentLine(), "err", err)
	}
}

func (w *PlaylistWindow) render(i int) string {
	s, ok := w.queue.Get(i)
	if !ok {
		return ""
	}
	line := fmt.Sprintf("%3d  %s", i+1, s.Display())
	if l := s.Length(); l != "" {
		line += " [" + l + "]"
	}
	return line
}

// LibraryWindow shows the artist/album/song tree.
type LibraryWindow struct {
	ScrollWindow
	lib    *library.Library
	remote playlist.Remote
}

// NewLibraryWindow creates the library pane.
func NewLibraryWindow(margin int, lib *library.Library, remote playlist.Remote) *LibraryWindow {
	w := &LibraryWindow{lib: lib, remote: remote}
	w.ScrollWindow = newScrollWindow(margin, lib.Size, lib.Line)
	return w
}

func (w *LibraryWindow) Title() string {
	return fmt.Sprintf("Library (%s artists, %s songs)",
		humanize.Comma(int64(w.lib.ArtistCount())),
		humanize.Comma(int64(w.lib.SongCount())))
}

// Left collapses count levels, keeping the cursor on the collapsed node.
func (w *LibraryWindow) Left(count uint32) {
	for range count {
		row := w.lib.CollapseAt(w.CurrentLine())
		if row == w.CurrentLine() {
			break
		}
		w.ScrollTo(row)
	}
}

// Right expands the node under the cursor, then walks into its first child
// for each extra count.
func (w *LibraryWindow) Right(count uint32) {
	for i := range count {
		level, ok := w.lib.Level(w.CurrentLine())
		if !ok || level == library.LevelSong {
			return
		}
		w.lib.Expand(w.CurrentLine())
		if i+1 < count {
			w.Scroll(1)
		}
	}
}

// Confirm toggles an artist or album, and queues a song.
func (w *LibraryWindow) Confirm() {
	line := w.CurrentLine()
	level, ok := w.lib.Level(line)
	if !ok {
		return
	}
	if level == library.LevelSong {
		w.lib.AddToPlaylist(playlist.Single, w.remote, line)
		return
	}
	before := w.lib.Size()
	w.lib.Expand(line)
	if w.lib.Size() == before {
		w.ScrollTo(w.lib.CollapseAt(line))
	}
}

// BrowseWindow shows every song as a flat list.
type BrowseWindow struct {
	ScrollWindow
	list   *browse.Browse
	remote playlist.Remote
}

// NewBrowseWindow creates the browse pane.
func NewBrowseWindow(margin int, list *browse.Browse, remote playlist.Remote) *BrowseWindow {
	w := &BrowseWindow{list: list, remote: remote}
	w.ScrollWindow = newScrollWindow(margin, list.Size, list.Line)
	return w
}

func (w *BrowseWindow) Title() string { return "Browse" }

// Confirm queues the song under the cursor.
func (w *BrowseWindow) Confirm() {
	w.list.AddToPlaylist(w.remote, w.CurrentLine())
}

// HelpWindow lists the key bindings of every table.
type HelpWindow struct {
	ScrollWindow
	lines []string
}

// NewHelpWindow creates the help pane from bindings.
func NewHelpWindow(margin int, bindings []keymap.Binding) *HelpWindow {
	w := &HelpWindow{lines: helpLines(bindings)}
	w.ScrollWindow = newScrollWindow(margin,
		func() int { return len(w.lines) },
		func(i int) string {
			if i < 0 || i >= len(w.lines) {
				return ""
			}
			return w.lines[i]
		})
	return w
}

func (w *HelpWindow) Title() string { return "Help" }

func helpLines(bindings []keymap.Binding) []string {
	r := keymap.NewResolver(bindings)
	var lines []string
	for t := range keymap.Table(keymap.NumTables) {
		var section []string
		seen := make(map[keymap.Action]bool)
		for _, b := range keymap.ByTable(bindings, t) {
			if seen[b.Action] {
				continue
			}
			seen[b.Action] = true
			keys := keymap.FormatKeys(r.KeysFor(b.Action))
			section = append(section, fmt.Sprintf("  %-20s %s", keys, b.Description))
		}
		if len(section) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "["+t.String()+"]")
		lines = append(lines, section...)
	}
	return lines
}
