package state

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/vimpd/internal/playlist"
)

// setupTestManager creates a manager over an in-memory SQLite database.
func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.db.Close() })
	return m
}

func testSession() Session {
	return Session{
		ActiveWindow: "library",
		Lines:        map[string]int{"library": 12, "playlist": 3},
		PasteBuffer: []playlist.Song{
			{URI: "a/1.flac", Artist: "Artist", Album: "Album", Title: "One", Track: 1, Duration: 183 * time.Second},
			{URI: "a/2.flac"},
		},
	}
}

func TestLoad_Empty(t *testing.T) {
	m := setupTestManager(t)

	s, err := m.Load()
	require.NoError(t, err)
	assert.Nil(t, s, "no session on first run")
}

func TestSaveNowAndLoad(t *testing.T) {
	m := setupTestManager(t)

	require.NoError(t, m.SaveNow(testSession()))

	s, err := m.Load()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, testSession(), *s)
}

func TestSaveNow_Overwrites(t *testing.T) {
	m := setupTestManager(t)

	require.NoError(t, m.SaveNow(testSession()))
	require.NoError(t, m.SaveNow(Session{
		ActiveWindow: "browse",
		Lines:        map[string]int{"browse": 1},
	}))

	s, err := m.Load()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "browse", s.ActiveWindow)
	assert.Equal(t, map[string]int{"browse": 1}, s.Lines)
	assert.Empty(t, s.PasteBuffer)
}

func TestSave_Debounced(t *testing.T) {
	m := setupTestManager(t)
	m.debounce = 10 * time.Millisecond

	m.Save(Session{ActiveWindow: "help", Lines: map[string]int{}})
	m.Save(testSession())

	require.Eventually(t, func() bool {
		s, err := m.Load()
		return err == nil && s != nil
	}, time.Second, 5*time.Millisecond)

	s, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "library", s.ActiveWindow, "only the latest session is written")
}

func TestClose_FlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	m, err := Open(path)
	require.NoError(t, err)
	m.debounce = time.Hour
	m.Save(testSession())
	require.NoError(t, m.Close())

	m, err = Open(path)
	require.NoError(t, err)
	defer m.Close()

	s, err := m.Load()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, testSession(), *s)
}

func TestWithTx_Rollback(t *testing.T) {
	m := setupTestManager(t)
	require.NoError(t, m.SaveNow(testSession()))

	// A duplicate position aborts the whole transaction.
	err := withTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`UPDATE session SET active_window = 'browse'`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO paste_buffer (position, uri) VALUES (0, 'dup')`)
		return err
	})
	require.Error(t, err)

	s, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "library", s.ActiveWindow)
}

func TestMock(t *testing.T) {
	m := NewMock()
	s, err := m.Load()
	require.NoError(t, err)
	assert.Nil(t, s)

	m.SetSession(&Session{ActiveWindow: "browse"})
	s, _ = m.Load()
	assert.Equal(t, "browse", s.ActiveWindow)

	m.Save(testSession())
	require.NoError(t, m.SaveNow(Session{}))
	assert.Len(t, m.Saves(), 2)

	require.NoError(t, m.Close())
	assert.True(t, m.IsClosed())
}
