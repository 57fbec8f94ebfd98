package keymap

import tea "github.com/charmbracelet/bubbletea"

// FromKeyMsg converts a bubbletea key event into a key code.
// Alt-modified keys carry the escape marker. Returns false for events that
// have no single-key equivalent (pastes, multi-rune input).
func FromKeyMsg(msg tea.KeyMsg) (KeyCode, bool) {
	if msg.Paste {
		return 0, false
	}

	var code KeyCode
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return 0, false
		}
		code = KeyCode(msg.Runes[0])
	case tea.KeySpace:
		code = ' '
	case tea.KeyEnter:
		code = KeyNewline
	case tea.KeyEsc:
		code = KeyEscape
	case tea.KeyBackspace:
		code = KeyBackspace
	case tea.KeyDelete:
		code = KeyDelete
	case tea.KeyUp:
		code = KeyUp
	case tea.KeyDown:
		code = KeyDown
	case tea.KeyLeft:
		code = KeyLeft
	case tea.KeyRight:
		code = KeyRight
	case tea.KeyPgUp:
		code = KeyPageUp
	case tea.KeyPgDown:
		code = KeyPageDown
	case tea.KeyHome:
		code = KeyHome
	case tea.KeyEnd:
		code = KeyEnd
	default:
		// Remaining control keys share their ASCII value.
		if msg.Type < 0 || msg.Type >= ' ' {
			return 0, false
		}
		code = KeyCode(msg.Type)
	}

	if msg.Alt {
		code |= EscapeMarker
	}
	return code, true
}
