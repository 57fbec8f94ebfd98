// Package keymap defines key codes, the dispatch tables and the default
// bindings of normal mode.
package keymap

import (
	"fmt"
	"strconv"
)

// KeyCode identifies a physical key or a synthesized special key.
// Printable keys use their rune value.
type KeyCode uint32

// EscapeMarker flags a code that arrived through an escape (alt) sequence.
const EscapeMarker KeyCode = 1 << 31

// Control codes shared with the terminal.
const (
	KeyCtrlD   KeyCode = 4
	KeyNewline KeyCode = '\n'
	KeyCtrlU   KeyCode = 21
	KeyEscape  KeyCode = 27
)

// Synthesized special keys live above the Unicode range so they never
// collide with a rune.
const (
	KeyUp KeyCode = 0x110000 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyEnter
	KeyDelete
)

// Keys with a fixed role in the dispatcher.
const (
	KeyRepeat  KeyCode = '.'
	KeyCancel          = KeyEscape
	KeyConfirm         = KeyNewline
)

// Escaped reports whether the escape marker is set.
func (k KeyCode) Escaped() bool {
	return k&EscapeMarker != 0
}

// Strip returns the code without the escape marker.
func (k KeyCode) Strip() KeyCode {
	return k &^ EscapeMarker
}

// Digit returns the decimal value of '0'..'9'.
func (k KeyCode) Digit() (uint32, bool) {
	if k < '0' || k > '9' {
		return 0, false
	}
	return uint32(k - '0'), true
}

var specialNames = map[KeyCode]string{
	KeyCtrlD:     "<C-d>",
	KeyNewline:   "<CR>",
	KeyCtrlU:     "<C-u>",
	KeyEscape:    "<Esc>",
	KeyUp:        "<Up>",
	KeyDown:      "<Down>",
	KeyLeft:      "<Left>",
	KeyRight:     "<Right>",
	KeyPageUp:    "<PageUp>",
	KeyPageDown:  "<PageDown>",
	KeyHome:      "<Home>",
	KeyEnd:       "<End>",
	KeyBackspace: "<BS>",
	KeyEnter:     "<Enter>",
	KeyDelete:    "<Del>",
	' ':          "<Space>",
}

// String renders the key the way the help window shows it.
func (k KeyCode) String() string {
	if k.Escaped() {
		return "<A-" + trimBrackets(k.Strip().String()) + ">"
	}
	if name, ok := specialNames[k]; ok {
		return name
	}
	if k < ' ' {
		return fmt.Sprintf("<C-%c>", rune(k+'a'-1))
	}
	if k <= 0x10FFFF {
		return string(rune(k))
	}
	return "<" + strconv.FormatUint(uint64(k), 16) + ">"
}

func trimBrackets(s string) string {
	if len(s) > 2 && s[0] == '<' && s[len(s)-1] == '>' {
		return s[1 : len(s)-1]
	}
	return s
}
