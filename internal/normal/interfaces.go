package normal

import (
	"github.com/llehouerou/vimpd/internal/playlist"
	"github.com/llehouerou/vimpd/internal/ui/screen"
)

// Window is the pane receiving commands.
type Window interface {
	CurrentLine() int
	ContentSize() int
	Scroll(n int)
	ScrollTo(line int)
	Left(count uint32)
	Right(count uint32)
	Confirm()
}

// Screen hosts the panes and the viewport geometry.
type Screen interface {
	ActiveWindow() Window
	GetActiveWindow() screen.WindowID
	SetActiveWindow(id screen.WindowID)
	StepActiveWindow(skip screen.Skip)
	VisibleWindows() int
	Scroll(size screen.Size, dir screen.Direction, count uint32)
	ScrollTo(loc screen.Location)
	ScrollToLine(loc screen.Location, line uint32)
	Select(pos screen.Position, count uint32)
	AlignTo(loc screen.Location, line uint32)
	MaxRows() int
	MaxColumns() int
}

// Playlist is the local mirror of the daemon queue.
type Playlist interface {
	Size() int
	Get(index int) (playlist.Song, bool)
	Add(song playlist.Song, index int)
	Remove(index, n int) []playlist.Song
	Index(song playlist.Song) int
	Clear()
}

// PasteBuffer holds the songs removed by the last delete.
type PasteBuffer interface {
	Clear()
	Size() int
	Get(index int) (playlist.Song, bool)
	Add(songs ...playlist.Song)
}

// Client edits the daemon queue. Failures are recorded by the client and
// surfaced through LastError.
type Client interface {
	playlist.Remote
	CurrentState() string
	LastError() error
	ClearError()
}

// Library is the artist/album/song tree.
type Library interface {
	AddToPlaylist(scope playlist.Scope, remote playlist.Remote, index int)
	Expand(index int)
	CollapseAt(index int) int
}

// Browse is the flat song list.
type Browse interface {
	AddToPlaylist(remote playlist.Remote, index int)
	Get(index int) (playlist.Song, bool)
}

// Player controls the daemon's transport.
type Player interface {
	Pause()
	Stop()
	ToggleRandom()
	ClearScreen()
	SkipSong(skip screen.Skip, count uint32)
	SkipAlbum(skip screen.Skip, count uint32)
	SkipArtist(skip screen.Skip, count uint32)
}

// Search moves between matches of the last search pattern.
type Search interface {
	SearchResult(skip screen.Skip, count uint32) bool
}
