package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SchemaVersion is the version of the evaluation log schema.
const SchemaVersion = "1"

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens or creates an evaluation log at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open history: %w", err)
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS evaluations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			expr TEXT NOT NULL,
			result TEXT NOT NULL,
			err TEXT NOT NULL,
			steps INTEGER NOT NULL,
			at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("couldn't create history tables: %w", err)
	}
	s := &SQLite{db: db}
	version, err := s.metadata("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}
	switch version {
	case "":
		if err := s.setMetadata("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
		// ok
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported history schema version %s (expected %s)", version, SchemaVersion)
	}
	return s, nil
}

// Add records an entry.
func (s *SQLite) Add(ctx context.Context, e Entry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.At.IsZero() {
		e.At = time.Now()
	}
	r, err := s.db.ExecContext(ctx,
		"INSERT INTO evaluations (expr, result, err, steps, at) VALUES (?, ?, ?, ?, ?)",
		e.Expr, e.Result, e.Err, e.Steps, e.At.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("couldn't record %q: %w", e.Expr, err)
	}
	return r.LastInsertId()
}

// Recent returns the latest entries, newest first.
func (s *SQLite) Recent(ctx context.Context, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, expr, result, err, steps, at FROM evaluations ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("couldn't read history: %w", err)
	}
	defer rows.Close()
	var r []Entry
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&e.ID, &e.Expr, &e.Result, &e.Err, &e.Steps, &at); err != nil {
			return nil, fmt.Errorf("couldn't read history: %w", err)
		}
		e.At = time.Unix(0, at)
		r = append(r, e)
	}
	return r, rows.Err()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// metadata retrieves a metadata value. Caller must hold the lock or be the
// constructor.
func (s *SQLite) metadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("couldn't read %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLite) setMetadata(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("couldn't set %s: %w", key, err)
	}
	return nil
}
