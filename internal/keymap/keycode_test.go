package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyCode_EscapeMarker(t *testing.T) {
	k := KeyCode('5') | EscapeMarker

	assert.True(t, k.Escaped())
	assert.Equal(t, KeyCode('5'), k.Strip())
	assert.False(t, k.Strip().Escaped())
}

func TestKeyCode_Digit(t *testing.T) {
	for k := KeyCode('0'); k <= '9'; k++ {
		d, ok := k.Digit()
		assert.True(t, ok)
		assert.Equal(t, uint32(k-'0'), d)
	}

	_, ok := KeyCode('a').Digit()
	assert.False(t, ok)
	_, ok = (KeyCode('1') | EscapeMarker).Digit()
	assert.False(t, ok, "escape-marked digits are not digits")
}

func TestKeyCode_String(t *testing.T) {
	tests := []struct {
		key  KeyCode
		want string
	}{
		{'j', "j"},
		{'G', "G"},
		{' ', "<Space>"},
		{KeyNewline, "<CR>"},
		{KeyEscape, "<Esc>"},
		{KeyCtrlU, "<C-u>"},
		{KeyCode(1), "<C-a>"},
		{KeyPageDown, "<PageDown>"},
		{KeyCode('3') | EscapeMarker, "<A-3>"},
		{KeyUp | EscapeMarker, "<A-Up>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   KeyCode
		wantOK bool
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 'j', true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}}, '3', true},
		{"alt digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}, Alt: true}, '5' | EscapeMarker, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyNewline, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, KeyEscape, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, ' ', true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, KeyBackspace, true},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, KeyPageDown, true},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, KeyHome, true},
		{"arrow", tea.KeyMsg{Type: tea.KeyDown}, KeyDown, true},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, KeyCtrlU, true},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, KeyCtrlD, true},
		{"multi rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, 0, false},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Paste: true}, 0, false},
		{"function key", tea.KeyMsg{Type: tea.KeyF1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromKeyMsg(tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
