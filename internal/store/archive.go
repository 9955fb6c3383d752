// Package store provides a SQLite-backed archive for exported audit
// events. It is an export target like the CSV file: user-initiated,
// outside the engine's consistency boundary, never read back into
// session state.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sweepdesk/internal/audit"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Archive is a SQLite audit-event archive.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveEvents archives the given events in one transaction. Re-archiving
// an event ID it has seen before overwrites rather than duplicates, so
// exporting the same session twice is harmless. Returns the number of
// rows written.
func (a *Archive) SaveEvents(events []audit.Event) (int, error) {
	tx, err := a.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, ev := range events {
		_, err := tx.Exec(`INSERT OR REPLACE INTO audit_events
			(event_id, occurred_at, kind, details, archived_at)
			VALUES (?, ?, ?, ?, ?)`,
			ev.EventID(),
			ev.At().UTC().Format(time.RFC3339Nano),
			string(ev.Kind()),
			ev.Details(),
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("archiving event %s: %w", ev.EventID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(events), nil
}

// ArchivedEvent is one archived row.
type ArchivedEvent struct {
	ID      string
	At      time.Time
	Kind    string
	Details string
}

// Rows reads all archived events, newest first.
func (a *Archive) Rows() ([]ArchivedEvent, error) {
	rows, err := a.db.Query(`SELECT event_id, occurred_at, kind, details
		FROM audit_events ORDER BY occurred_at DESC, event_id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []ArchivedEvent
	for rows.Next() {
		var ev ArchivedEvent
		var at string
		if err := rows.Scan(&ev.ID, &at, &ev.Kind, &ev.Details); err != nil {
			return nil, err
		}
		ev.At, _ = time.Parse(time.RFC3339Nano, at)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Count reports the number of archived events.
func (a *Archive) Count() (int, error) {
	var n int
	err := a.db.QueryRow("SELECT COUNT(*) FROM audit_events").Scan(&n)
	return n, err
}
