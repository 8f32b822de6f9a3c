// Package sharedstore is the keyed store shared between the API process and
// the usage-monitor process. Both open the same SQLite file: the monitor
// writes the usage threshold record, the API writes manual usage entries, and
// the API reads both. Individual reads and writes are atomic at the storage
// layer; no cross-process coordination beyond that is assumed.
package sharedstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS usage_threshold (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	day        TEXT NOT NULL,
	max_hours  REAL NOT NULL DEFAULT 0,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS manual_usage (
	day      TEXT PRIMARY KEY,
	hours    REAL NOT NULL,
	saved_at TEXT NOT NULL
);
`

// Store manages the shared keyed records in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the shared SQLite file and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open shared store: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, fmt.Errorf("pragma busy_timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ThresholdRecord returns the monitor's shared record, or nil if the monitor
// has never written one.
func (s *Store) ThresholdRecord(ctx context.Context) (*domain.UsageThresholdRecord, error) {
	var rec domain.UsageThresholdRecord
	var updatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT day, max_hours, updated_at FROM usage_threshold WHERE id = 1`,
	).Scan(&rec.Day, &rec.MaxHoursCrossedToday, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		rec.UpdatedAt = t
	}
	return &rec, nil
}

// ResetThreshold points the shared record at day with zero hours. The monitor
// calls this at the start of each new monitoring interval (local midnight).
func (s *Store) ResetThreshold(ctx context.Context, day string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO usage_threshold (id, day, max_hours, updated_at)
		VALUES (1, ?, 0, ?)
		ON CONFLICT(id) DO UPDATE SET
			day = excluded.day,
			max_hours = 0,
			updated_at = excluded.updated_at`,
		day, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// RatchetThreshold raises the stored max-hours for day, but never lowers it:
// a smaller or out-of-order threshold event leaves the record untouched. It
// also never moves the record across days; rollover goes through
// ResetThreshold.
func (s *Store) RatchetThreshold(ctx context.Context, day string, hours float64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE usage_threshold
		SET max_hours = ?, updated_at = ?
		WHERE id = 1 AND day = ? AND max_hours < ?`,
		hours, time.Now().UTC().Format(time.RFC3339), day, hours,
	)
	return err
}

// ManualUsage returns the manually entered hours for day and whether an entry
// exists. Presence is decided by the key, never by comparing against zero: a
// saved 0.0 reads as (0, true, nil).
func (s *Store) ManualUsage(ctx context.Context, day string) (float64, bool, error) {
	var hours float64
	err := s.db.QueryRowContext(ctx,
		`SELECT hours FROM manual_usage WHERE day = ?`, day,
	).Scan(&hours)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return hours, true, nil
}

// SetManualUsage saves the manual entry for day. Each day's entry is
// write-once; a second save returns domain.ErrConflict.
func (s *Store) SetManualUsage(ctx context.Context, day string, hours float64) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO manual_usage (day, hours, saved_at)
		VALUES (?, ?, ?)`,
		day, hours, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrConflict
	}
	return nil
}
