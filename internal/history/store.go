// Package history persists launcher outcomes in a local SQLite database so
// recent submissions can be reviewed. History is write-only from the
// launcher's point of view; it never feeds back into ranking.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	"quickbar/internal/errors"
	"quickbar/internal/query"
)

// Entry is one recorded submission.
type Entry struct {
	Action    string
	Query     string
	ItemID    string
	ItemTitle string
	CreatedAt time.Time
}

// ItemCount pairs an item with how often it was submitted.
type ItemCount struct {
	ItemID    string
	ItemTitle string
	Count     int
}

// Store wraps the SQLite database holding submission history.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	action      TEXT NOT NULL,
	query       TEXT NOT NULL DEFAULT '',
	item_id     TEXT NOT NULL DEFAULT '',
	item_title  TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
CREATE INDEX IF NOT EXISTS idx_submissions_item_id ON submissions(item_id);
`

// Open creates the parent directory if needed, opens the database, and
// applies the schema.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	//nolint:gosec // G301: User data directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, errors.New(errors.CodeStorageFailed, "create history directory", err)
	}

	db, err := sql.Open("sqlite", buildDSN(dbPath))
	if err != nil {
		return nil, errors.New(errors.CodeStorageFailed, "open history db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.New(errors.CodeStorageFailed, "ping history db", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.New(errors.CodeStorageFailed, "apply history schema", err)
	}
	return &Store{db: db}, nil
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one outcome. Dismissed outcomes carry no information worth
// keeping and are skipped.
func (s *Store) Record(ctx context.Context, out query.Outcome) error {
	if out.Action == query.ActionDismissed {
		return nil
	}
	itemID, itemTitle := "", ""
	if out.Item != nil {
		itemID, itemTitle = out.Item.ID, out.Item.Title
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (action, query, item_id, item_title, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, out.Action.String(), out.Query, itemID, itemTitle, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.New(errors.CodeStorageFailed, "record submission", err)
	}
	return nil
}

// Recent returns the latest n submissions, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT action, query, item_id, item_title, created_at
		FROM submissions
		ORDER BY id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, errors.New(errors.CodeStorageFailed, "query recent submissions", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.Action, &e.Query, &e.ItemID, &e.ItemTitle, &createdAt); err != nil {
			return nil, errors.New(errors.CodeStorageFailed, "scan submission", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, errors.New(errors.CodeParseFailed, fmt.Sprintf("bad timestamp %q", createdAt), err)
		}
		e.CreatedAt = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// TopItems returns the n most frequently submitted items.
func (s *Store) TopItems(ctx context.Context, n int) ([]ItemCount, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_id, item_title, COUNT(*) AS uses
		FROM submissions
		WHERE item_id != ''
		GROUP BY item_id, item_title
		ORDER BY uses DESC, item_id
		LIMIT ?
	`, n)
	if err != nil {
		return nil, errors.New(errors.CodeStorageFailed, "query top items", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var counts []ItemCount
	for rows.Next() {
		var c ItemCount
		if err := rows.Scan(&c.ItemID, &c.ItemTitle, &c.Count); err != nil {
			return nil, errors.New(errors.CodeStorageFailed, "scan item count", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
