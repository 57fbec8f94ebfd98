// internal/app/persistence.go
package app

import (
	"github.com/llehouerou/vimpd/internal/state"
	"github.com/llehouerou/vimpd/internal/ui/screen"
)

// session snapshots what survives a restart.
func (m *Model) session() state.Session {
	lines := make(map[string]int, screen.NumWindows)
	for id := range screen.WindowID(screen.NumWindows) {
		lines[id.String()] = m.Screen.Window(id).CurrentLine()
	}
	return state.Session{
		ActiveWindow: m.Screen.GetActiveWindow().String(),
		Lines:        lines,
		PasteBuffer:  m.Buffer.Songs(),
	}
}

// SaveSession schedules a debounced save of the session.
func (m *Model) SaveSession() {
	m.StateMgr.Save(m.session())
}

// restoreSession applies the saved active window and paste buffer. Cursor
// lines wait for the daemon content in restoreLines.
func (m *Model) restoreSession() {
	s, err := m.StateMgr.Load()
	if err != nil {
		logger.Warn("loading session", "err", err)
		return
	}
	if s == nil {
		return
	}
	if id, ok := screen.ParseWindowID(s.ActiveWindow); ok {
		m.Screen.SetActiveWindow(id)
	}
	m.Buffer.Add(s.PasteBuffer...)
	m.pendingLines = s.Lines
}

func (m *Model) restoreLines() {
	for name, line := range m.pendingLines {
		if id, ok := screen.ParseWindowID(name); ok {
			m.Screen.Window(id).ScrollTo(line)
		}
	}
	m.pendingLines = nil
}
