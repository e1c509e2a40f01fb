// Package history persists resolved shortcuts to a local SQLite database so
// recent resolutions can be recalled and re-used.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded resolution.
type Entry struct {
	ID        string    `json:"id"`
	Shortcut  string    `json:"shortcut"`
	Locale    string    `json:"locale"`
	Reference time.Time `json:"reference"`
	Resolved  time.Time `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS resolutions (
	id TEXT PRIMARY KEY,
	shortcut TEXT NOT NULL,
	locale TEXT NOT NULL,
	reference TEXT NOT NULL,
	resolved TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resolutions_created_at ON resolutions (created_at DESC);
`

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record inserts one resolution. A missing ID is filled in; CreatedAt
// defaults to now.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resolutions (id, shortcut, locale, reference, resolved, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Shortcut, e.Locale,
		e.Reference.UTC().Format(time.RFC3339),
		e.Resolved.UTC().Format(time.RFC3339),
		e.CreatedAt.Format(time.RFC3339))
	return e, err
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, shortcut, locale, reference, resolved, created_at
		FROM resolutions
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var reference, resolved, created string
		if err := rows.Scan(&e.ID, &e.Shortcut, &e.Locale, &reference, &resolved, &created); err != nil {
			return nil, err
		}
		e.Reference, _ = time.Parse(time.RFC3339, reference)
		e.Resolved, _ = time.Parse(time.RFC3339, resolved)
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear deletes every recorded resolution and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM resolutions`)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}
