// Package store keeps the calculation history for the lifetime of the process.
//
// The history lives in an in-memory SQLite database and is discarded when the
// store is closed.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/verte-zerg/rentcalc/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const memoryDSN = ":memory:"

// Store wraps SQLite access for history records.
type Store struct {
	db *sql.DB
}

// Open creates an empty in-memory history database.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, err
	}
	// Every new connection to :memory: is a separate, empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database, dropping all history.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			total REAL NOT NULL,
			per_person REAL NOT NULL,
			persons INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate history: %w", err)
		}
	}
	return nil
}

// Append stores a completed calculation and returns its row id.
func (s *Store) Append(ctx context.Context, rec model.HistoryRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO history (session_id, created_at, total, per_person, persons)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.SessionID,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.Total,
		rec.PerPerson,
		rec.Persons,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Count returns the number of records appended so far.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// List returns all records in insertion order.
func (s *Store) List(ctx context.Context) ([]model.HistoryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, created_at, total, per_person, persons
		 FROM history
		 ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.HistoryRecord
	for rows.Next() {
		var rec model.HistoryRecord
		var createdAt string
		if err := rows.Scan(&rec.SessionID, &createdAt, &rec.Total, &rec.PerPerson, &rec.Persons); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
