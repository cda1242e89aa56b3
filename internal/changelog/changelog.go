// Package changelog keeps a journal of zone writes and deletions in a local
// SQLite database.
//
// The journal is purely observational: operators use it to answer "what
// changed, when, and where did it land" — including whether a write fell
// back to the secondary directory or left a sidecar warning behind. A
// journal failure must never block the artifact write itself, so callers
// log Append errors and move on.
package changelog

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Actions recorded in the journal.
const (
	ActionWrite  = "write"
	ActionDelete = "delete"
)

// Entry is one journal row.
type Entry struct {
	ID        int64     `json:"id"`
	Domain    string    `json:"domain"`
	Action    string    `json:"action"`
	Location  string    `json:"location,omitempty"`
	Path      string    `json:"path,omitempty"`
	Warning   string    `json:"warning,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Log is the journal handle. Safe for concurrent use; database/sql
// serializes access to the single SQLite file.
type Log struct {
	db *sql.DB
}

// Open opens or creates the journal database at path and brings the schema
// up to date.
func Open(path string) (*Log, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open changelog database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate changelog schema: %w", err)
	}

	return &Log{db: db}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	drv, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// Append records e. A zero CreatedAt is stamped with the current UTC time.
func (l *Log) Append(e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := l.db.Exec(
		`INSERT INTO changelog (domain, action, location, path, warning, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Domain, e.Action, e.Location, e.Path, e.Warning,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append changelog entry: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		n = 50
	}
	rows, err := l.db.Query(
		`SELECT id, domain, action, location, path, warning, created_at
		 FROM changelog ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query changelog: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Domain, &e.Action, &e.Location, &e.Path, &e.Warning, &created); err != nil {
			return nil, fmt.Errorf("scan changelog entry: %w", err)
		}
		if ts, perr := time.Parse(time.RFC3339Nano, created); perr == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
