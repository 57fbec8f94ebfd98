// Package screen hosts the main windows (library, browse, playlist, help),
// tracks which one is active and renders them.
package screen

import "github.com/llehouerou/vimpd/internal/ui/cursor"

// WindowID indexes a main window. Absolute window selection uses these
// numbers (alt+1 selects 0).
type WindowID int

const (
	Library WindowID = iota
	Browse
	Playlist
	Help

	NumWindows = iota
)

func (w WindowID) String() string {
	switch w {
	case Library:
		return "library"
	case Browse:
		return "browse"
	case Playlist:
		return "playlist"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// ParseWindowID is the inverse of String. Unknown names return false.
func ParseWindowID(name string) (WindowID, bool) {
	for id := range WindowID(NumWindows) {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}

// Size is the unit of a relative scroll.
type Size int

const (
	Line Size = iota
	Page
)

// Direction of a relative scroll.
type Direction int

const (
	Up Direction = iota
	Down
)

// Location is a scroll or alignment target.
type Location int

const (
	Top Location = iota
	Centre
	Bottom
	Current  // the playing song
	Specific // an explicit 1-based line
)

// Skip selects how the active window changes.
type Skip int

const (
	Absolute Skip = iota
	Next
	Previous
)

// Position is a visible row used by selection.
type Position int

const (
	First Position = iota
	Middle
	Last
)

func (p Position) anchor() cursor.Anchor {
	switch p {
	case Middle:
		return cursor.Middle
	case Last:
		return cursor.Bottom
	default:
		return cursor.Top
	}
}

func (l Location) anchor() cursor.Anchor {
	switch l {
	case Centre:
		return cursor.Middle
	case Bottom:
		return cursor.Bottom
	default:
		return cursor.Top
	}
}
