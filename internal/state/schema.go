package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			active_window TEXT NOT NULL,
			saved_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS window_lines (
			window TEXT PRIMARY KEY,
			line INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS paste_buffer (
			position INTEGER PRIMARY KEY,
			uri TEXT NOT NULL,
			artist TEXT,
			album TEXT,
			title TEXT,
			track INTEGER,
			duration_ms INTEGER
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
