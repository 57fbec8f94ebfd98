package keymap

// Action names a bindable normal mode command.
type Action string

const (
	ActionRepeat      Action = "repeat"
	ActionClearScreen Action = "clear_screen"

	// Player
	ActionPause  Action = "pause"
	ActionRandom Action = "random"
	ActionStop   Action = "stop"

	// Skipping
	ActionSkipSongNext     Action = "skip_song_next"
	ActionSkipSongPrevious Action = "skip_song_previous"
	ActionSkipArtistNext   Action = "skip_artist_next"
	ActionSkipArtistPrev   Action = "skip_artist_previous"
	ActionSkipAlbumNext    Action = "skip_album_next"
	ActionSkipAlbumPrev    Action = "skip_album_previous"

	// Selection
	ActionSelectFirst  Action = "select_first"
	ActionSelectMiddle Action = "select_middle"
	ActionSelectLast   Action = "select_last"

	// Song collection edits
	ActionDelete    Action = "delete"
	ActionDeleteAll Action = "delete_all"
	ActionAdd       Action = "add"
	ActionAddAll    Action = "add_all"
	ActionPaste     Action = "paste"

	// Navigation
	ActionLeft    Action = "left"
	ActionRight   Action = "right"
	ActionConfirm Action = "confirm"

	// Searching
	ActionSearchNext     Action = "search_next"
	ActionSearchPrevious Action = "search_previous"

	// Scrolling
	ActionScrollLineUp     Action = "scroll_line_up"
	ActionScrollLineDown   Action = "scroll_line_down"
	ActionScrollPageUp     Action = "scroll_page_up"
	ActionScrollPageDown   Action = "scroll_page_down"
	ActionScrollTop        Action = "scroll_top"
	ActionScrollCurrent    Action = "scroll_current"
	ActionScrollBottom     Action = "scroll_bottom"
	ActionScrollLineBottom Action = "scroll_line_or_bottom" // G
	ActionScrollLineTop    Action = "scroll_line_or_top"    // gg

	// Library
	ActionExpand   Action = "expand"
	ActionCollapse Action = "collapse"

	// Windows
	ActionWindowNext     Action = "window_next"
	ActionWindowPrevious Action = "window_previous"
	ActionWindow1        Action = "window_1"
	ActionWindow2        Action = "window_2"
	ActionWindow3        Action = "window_3"
	ActionWindow4        Action = "window_4"
	ActionWindow5        Action = "window_5"
	ActionWindow6        Action = "window_6"
	ActionWindow7        Action = "window_7"
	ActionWindow8        Action = "window_8"
	ActionWindow9        Action = "window_9"

	// Alignment
	ActionAlignCentre Action = "align_centre"
	ActionAlignTop    Action = "align_top"
	ActionAlignBottom Action = "align_bottom"
)

// WindowActions lists the absolute window selections in window order.
var WindowActions = [...]Action{
	ActionWindow1, ActionWindow2, ActionWindow3,
	ActionWindow4, ActionWindow5, ActionWindow6,
	ActionWindow7, ActionWindow8, ActionWindow9,
}
