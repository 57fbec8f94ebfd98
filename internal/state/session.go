package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/vimpd/internal/playlist"
)

// Session is the UI state restored at startup.
type Session struct {
	ActiveWindow string         // window name, e.g. "playlist"
	Lines        map[string]int // cursor line per window name
	PasteBuffer  []playlist.Song
}

func loadSession(db *sql.DB) (*Session, error) {
	var s Session
	err := db.QueryRow(`SELECT active_window FROM session WHERE id = 1`).Scan(&s.ActiveWindow)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}

	if s.Lines, err = loadLines(db); err != nil {
		return nil, err
	}
	if s.PasteBuffer, err = loadPasteBuffer(db); err != nil {
		return nil, err
	}
	return &s, nil
}

func loadLines(db *sql.DB) (map[string]int, error) {
	rows, err := db.Query(`SELECT window, line FROM window_lines`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make(map[string]int)
	for rows.Next() {
		var window string
		var line int
		if err := rows.Scan(&window, &line); err != nil {
			return nil, err
		}
		lines[window] = line
	}
	return lines, rows.Err()
}

func loadPasteBuffer(db *sql.DB) ([]playlist.Song, error) {
	rows, err := db.Query(`
		SELECT uri, artist, album, title, track, duration_ms
		FROM paste_buffer
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []playlist.Song
	for rows.Next() {
		var s playlist.Song
		var artist, album, title sql.NullString
		var track, durationMS sql.NullInt64

		if err := rows.Scan(&s.URI, &artist, &album, &title, &track, &durationMS); err != nil {
			return nil, err
		}

		s.Artist = nullString(artist)
		s.Album = nullString(album)
		s.Title = nullString(title)
		s.Track = int(nullInt64(track))
		s.Duration = time.Duration(nullInt64(durationMS)) * time.Millisecond
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

func saveSession(sqlDB *sql.DB, s Session) error {
	return withTx(sqlDB, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO session (id, active_window, saved_at)
			VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				active_window = excluded.active_window,
				saved_at = excluded.saved_at
		`, s.ActiveWindow, time.Now().Unix())
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`DELETE FROM window_lines`); err != nil {
			return err
		}
		for window, line := range s.Lines {
			if _, err := tx.Exec(`INSERT INTO window_lines (window, line) VALUES (?, ?)`, window, line); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(`DELETE FROM paste_buffer`); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`
			INSERT INTO paste_buffer (position, uri, artist, album, title, track, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, song := range s.PasteBuffer {
			_, err = stmt.Exec(i, song.URI, song.Artist, song.Album, song.Title, song.Track,
				song.Duration.Milliseconds())
			if err != nil {
				return err
			}
		}
		return nil
	})
}
