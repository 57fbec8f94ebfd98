// Package state persists the UI session (active window, cursor lines and
// paste buffer) in a SQLite database so it survives restarts.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/vimpd/internal/errmsg"
)

const saveDebounce = 500 * time.Millisecond

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Session
	debounce  time.Duration
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return open(path)
}

func open(dsn string) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Manager{db: db, debounce: saveDebounce}, nil
}

// Close flushes a pending save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		if err := saveSession(m.db, *pending); err != nil {
			logger.Error("flush session", "err", err)
		}
	}

	return m.db.Close()
}

// Load returns the saved session, or nil on first run.
func (m *Manager) Load() (*Session, error) {
	s, err := loadSession(m.db)
	return s, errmsg.Wrap(errmsg.OpSessionLoad, err)
}

// Save schedules s to be written. Bursts of saves are coalesced into one
// write of the latest session.
func (m *Manager) Save(s Session) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			if err := saveSession(m.db, *pending); err != nil {
				logger.Error("save session", "err", errmsg.Wrap(errmsg.OpSessionSave, err))
			}
		}
	})
}

// SaveNow writes s immediately.
func (m *Manager) SaveNow(s Session) error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.pending = nil
	m.saveMu.Unlock()

	return errmsg.Wrap(errmsg.OpSessionSave, saveSession(m.db, s))
}
