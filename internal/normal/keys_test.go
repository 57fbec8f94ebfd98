package normal

import "github.com/llehouerou/vimpd/internal/keymap"

func keyOf(r rune) keymap.KeyCode {
	return keymap.KeyCode(r)
}

func alt(r rune) keymap.KeyCode {
	return keymap.KeyCode(r) | keymap.EscapeMarker
}
