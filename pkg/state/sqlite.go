package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	kindCollapsed = "collapsed"
	kindChecked   = "checked"
)

// SQLiteBackend stores tree state in a sqlite database under the data dir.
type SQLiteBackend struct {
	db      *sql.DB
	dataDir string
}

// NewSQLiteBackend opens (and creates if needed) dataDir/tree-state.db.
func NewSQLiteBackend(dataDir string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "tree-state.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	b := &SQLiteBackend{
		db:      db,
		dataDir: dataDir,
	}

	if err := b.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize state database: %w", err)
	}

	return b, nil
}

// init creates the database schema
func (b *SQLiteBackend) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tree_paths (
		scope TEXT NOT NULL,
		kind TEXT NOT NULL,
		path TEXT NOT NULL,
		PRIMARY KEY (scope, kind, path)
	);

	CREATE TABLE IF NOT EXISTS tree_selection (
		scope TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := b.db.Exec(schema)
	return err
}

// Load reads the state of scope. Unknown scopes yield an empty state.
func (b *SQLiteBackend) Load(scope string) (*State, error) {
	s := New()

	rows, err := b.db.Query(`SELECT kind, path FROM tree_paths WHERE scope = ?`, scope)
	if err != nil {
		return nil, fmt.Errorf("query tree paths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, path string
		if err := rows.Scan(&kind, &path); err != nil {
			return nil, fmt.Errorf("scan tree path: %w", err)
		}
		switch kind {
		case kindCollapsed:
			s.Collapsed[path] = struct{}{}
		case kindChecked:
			s.Checked[path] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Every saved scope has a selection row, possibly with an empty path.
	err = b.db.QueryRow(`SELECT path FROM tree_selection WHERE scope = ?`, scope).Scan(&s.Selected)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, fmt.Errorf("query selection: %w", err)
	default:
		s.saved = true
	}

	return s, nil
}

// Save replaces the stored state of scope with s.
func (b *SQLiteBackend) Save(scope string, s *State) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM tree_paths WHERE scope = ?`, scope); err != nil {
		return fmt.Errorf("clear tree paths: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tree_paths (scope, kind, path) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range s.CollapsedFolders() {
		if _, err := stmt.Exec(scope, kindCollapsed, p); err != nil {
			return fmt.Errorf("insert collapsed path: %w", err)
		}
	}
	for _, p := range s.CheckedFiles() {
		if _, err := stmt.Exec(scope, kindChecked, p); err != nil {
			return fmt.Errorf("insert checked path: %w", err)
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO tree_selection (scope, path, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`, scope, s.Selected)
	if err != nil {
		return fmt.Errorf("save selection: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.markSaved()
	return nil
}

// Scopes lists every scope with stored state.
func (b *SQLiteBackend) Scopes() ([]string, error) {
	rows, err := b.db.Query(`SELECT scope FROM tree_selection ORDER BY scope`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scopes []string
	for rows.Next() {
		var scope string
		if err := rows.Scan(&scope); err != nil {
			return nil, err
		}
		scopes = append(scopes, scope)
	}
	return scopes, rows.Err()
}

// Close closes the database connection
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
