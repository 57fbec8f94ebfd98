// internal/app/keys.go
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vimpd/internal/app/handler"
	"github.com/llehouerou/vimpd/internal/keymap"
)

// keyMap holds the bindings handled outside the normal mode tables.
type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// handleKeyMsg routes a key through the handler chain.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	_, cmd := handler.Chain(msg,
		m.handleQuitKey,
		m.handleModeKey,
	)
	return cmd
}

func (m *Model) handleQuitKey(msg tea.KeyMsg) handler.Result {
	if !key.Matches(msg, m.keys.Quit) {
		return handler.NotHandled
	}
	m.leaveMode(0)
	if err := m.StateMgr.SaveNow(m.session()); err != nil {
		logger.Warn("saving session on quit", "err", err)
	}
	return handler.Handled(tea.Quit)
}

// handleModeKey feeds the key to normal mode. Until the mode is running only
// a key that starts it is accepted.
func (m *Model) handleModeKey(msg tea.KeyMsg) handler.Result {
	code, ok := keymap.FromKeyMsg(msg)
	if !ok {
		return handler.NotHandled
	}
	if !m.modeActive {
		if m.Mode.CausesModeToStart(code) {
			m.enterMode(code)
		}
		return handler.HandledNoCmd
	}

	m.Mode.Handle(code)
	m.SaveSession()
	return handler.Handled(m.repaintCmd())
}

func (m *Model) enterMode(code keymap.KeyCode) {
	if m.modeActive {
		return
	}
	m.Mode.Initialise(code)
	m.modeActive = true
}

func (m *Model) leaveMode(code keymap.KeyCode) {
	if !m.modeActive {
		return
	}
	m.Mode.Finalise(code)
	m.modeActive = false
}

// repaintCmd clears the terminal when an action asked for a full repaint.
func (m *Model) repaintCmd() tea.Cmd {
	if m.Screen.TakeInvalidated() {
		return tea.ClearScreen
	}
	return nil
}
