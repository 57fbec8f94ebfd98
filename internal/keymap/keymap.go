package keymap

// Binding ties an action to its keys within one table.
type Binding struct {
	Action      Action
	Keys        []KeyCode
	Description string
	Table       Table
}

// Bindings is the default normal mode key map.
var Bindings = []Binding{
	{ActionRepeat, []KeyCode{KeyRepeat}, "Repeat last action", Default},
	{ActionClearScreen, []KeyCode{'c'}, "Redraw the screen", Default},

	// Player
	{ActionPause, []KeyCode{'p'}, "Pause/resume", Default},
	{ActionRandom, []KeyCode{'r'}, "Toggle random", Default},
	{ActionStop, []KeyCode{'s', KeyBackspace}, "Stop", Default},

	// Skipping
	{ActionSkipSongNext, []KeyCode{'>'}, "Next song", Default},
	{ActionSkipSongPrevious, []KeyCode{'<'}, "Previous song", Default},
	{ActionSkipArtistNext, []KeyCode{'w'}, "Next artist", Default},
	{ActionSkipArtistPrev, []KeyCode{'q'}, "Previous artist", Default},
	{ActionSkipAlbumNext, []KeyCode{'W'}, "Next album", Default},
	{ActionSkipAlbumPrev, []KeyCode{'Q'}, "Previous album", Default},

	// Selection
	{ActionSelectFirst, []KeyCode{'H'}, "Select first visible row", Default},
	{ActionSelectMiddle, []KeyCode{'M'}, "Select middle visible row", Default},
	{ActionSelectLast, []KeyCode{'L'}, "Select last visible row", Default},

	// Song collection edits
	{ActionDelete, []KeyCode{'d'}, "Delete song", Default},
	{ActionDeleteAll, []KeyCode{'D'}, "Delete all songs", Default},
	{ActionAdd, []KeyCode{'a'}, "Add song to playlist", Default},
	{ActionAddAll, []KeyCode{'A'}, "Add all songs to playlist", Default},
	{ActionPaste, []KeyCode{'P'}, "Paste deleted songs", Default},

	// Navigation
	{ActionLeft, []KeyCode{'h', KeyLeft}, "Left/collapse", Default},
	{ActionRight, []KeyCode{'l', KeyRight}, "Right/expand", Default},
	{ActionConfirm, []KeyCode{KeyNewline, KeyEnter}, "Confirm", Default},

	// Searching
	{ActionSearchNext, []KeyCode{'n'}, "Next search result", Default},
	{ActionSearchPrevious, []KeyCode{'N'}, "Previous search result", Default},

	// Scrolling
	{ActionScrollLineUp, []KeyCode{'k', KeyUp}, "Scroll up", Default},
	{ActionScrollLineDown, []KeyCode{'j', KeyDown}, "Scroll down", Default},
	{ActionScrollPageUp, []KeyCode{KeyPageUp, KeyCtrlU}, "Page up", Default},
	{ActionScrollPageDown, []KeyCode{KeyPageDown, KeyCtrlD}, "Page down", Default},
	{ActionScrollTop, []KeyCode{KeyHome}, "Go to top", Default},
	{ActionScrollCurrent, []KeyCode{'f'}, "Go to playing song", Default},
	{ActionScrollBottom, []KeyCode{KeyEnd}, "Go to bottom", Default},
	{ActionScrollLineBottom, []KeyCode{'G'}, "Go to line [count] or bottom", Default},

	// Library
	{ActionExpand, []KeyCode{'o'}, "Expand library node", Default},
	{ActionCollapse, []KeyCode{'u'}, "Collapse library node", Default},

	// Jumping
	{ActionScrollLineTop, []KeyCode{'g'}, "Go to line [count] or top", Jump},
	{ActionWindowNext, []KeyCode{'t'}, "Next window, or window [count]", Jump},
	{ActionWindowPrevious, []KeyCode{'T'}, "Previous window", Jump},

	// Alignment
	{ActionAlignCentre, []KeyCode{'.'}, "Align line to centre", Align},
	{ActionAlignTop, []KeyCode{KeyNewline}, "Align line to top", Align},
	{ActionAlignBottom, []KeyCode{'-'}, "Align line to bottom", Align},

	// Windows
	{ActionWindow1, []KeyCode{'1'}, "Window 1", Escape},
	{ActionWindow2, []KeyCode{'2'}, "Window 2", Escape},
	{ActionWindow3, []KeyCode{'3'}, "Window 3", Escape},
	{ActionWindow4, []KeyCode{'4'}, "Window 4", Escape},
	{ActionWindow5, []KeyCode{'5'}, "Window 5", Escape},
	{ActionWindow6, []KeyCode{'6'}, "Window 6", Escape},
	{ActionWindow7, []KeyCode{'7'}, "Window 7", Escape},
	{ActionWindow8, []KeyCode{'8'}, "Window 8", Escape},
	{ActionWindow9, []KeyCode{'9'}, "Window 9", Escape},
}

// ByTable returns the bindings of table t, in order.
func ByTable(bindings []Binding, t Table) []Binding {
	var result []Binding
	for _, b := range bindings {
		if b.Table == t {
			result = append(result, b)
		}
	}
	return result
}
