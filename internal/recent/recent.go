// Package recent persists the list of recently opened files in a small
// SQLite database, together with the cursor position and language each
// file was last edited with.
package recent

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one remembered file.
type Entry struct {
	Path       string
	Language   string
	CursorPos  int
	LastOpened time.Time
}

type Store struct {
	conn *sql.DB
}

// New opens (or creates) the store at the given path.
func New(dbPath string) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %v", err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	s := &Store{conn: conn}
	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %v", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// initSchema creates the necessary tables if they don't exist
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS recent_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT UNIQUE NOT NULL,
		language TEXT NOT NULL DEFAULT '',
		cursor_pos INTEGER NOT NULL DEFAULT 0,
		last_opened DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_recent_files_last_opened ON recent_files(last_opened);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Add records a file as just opened, updating the existing row when the
// path is already known.
func (s *Store) Add(entry Entry) error {
	query := `
	INSERT INTO recent_files (path, language, cursor_pos, last_opened)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(path) DO UPDATE SET
		language = excluded.language,
		cursor_pos = excluded.cursor_pos,
		last_opened = CURRENT_TIMESTAMP
	`

	_, err := s.conn.Exec(query, entry.Path, entry.Language, entry.CursorPos)
	return err
}

// List returns the most recently opened files, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `
	SELECT path, language, cursor_pos, last_opened
	FROM recent_files
	ORDER BY last_opened DESC
	LIMIT ?
	`

	rows, err := s.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent files: %v", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Path, &entry.Language, &entry.CursorPos, &entry.LastOpened); err != nil {
			return nil, fmt.Errorf("failed to scan recent file row: %v", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent file rows: %v", err)
	}

	return entries, nil
}

// Lookup returns the remembered entry for a path, or false when the path
// has never been opened.
func (s *Store) Lookup(path string) (Entry, bool, error) {
	query := `
	SELECT path, language, cursor_pos, last_opened
	FROM recent_files
	WHERE path = ?
	`

	var entry Entry
	err := s.conn.QueryRow(query, path).Scan(&entry.Path, &entry.Language, &entry.CursorPos, &entry.LastOpened)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to load recent file %s: %v", path, err)
	}

	return entry, true, nil
}

// Remove forgets a path.
func (s *Store) Remove(path string) error {
	_, err := s.conn.Exec(`DELETE FROM recent_files WHERE path = ?`, path)
	return err
}

// Prune keeps only the newest keep entries.
func (s *Store) Prune(keep int) error {
	query := `
	DELETE FROM recent_files
	WHERE id NOT IN (
		SELECT id FROM recent_files ORDER BY last_opened DESC LIMIT ?
	)
	`

	_, err := s.conn.Exec(query, keep)
	if err != nil {
		return fmt.Errorf("failed to prune recent files: %v", err)
	}
	return nil
}

// Count returns the number of remembered files.
func (s *Store) Count() (int, error) {
	var count int
	err := s.conn.QueryRow(`SELECT COUNT(*) FROM recent_files`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent files: %v", err)
	}
	return count, nil
}
