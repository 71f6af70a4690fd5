// Package store persists memory usage samples to a SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mlindgren/taskstat/internal/model"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	taken_at       INTEGER NOT NULL, -- unix nanoseconds
	pid            INTEGER NOT NULL,
	virtual_bytes  INTEGER NOT NULL,
	resident_bytes INTEGER NOT NULL,
	cpu_seconds    REAL    NOT NULL,
	open_fds       INTEGER NOT NULL,
	max_fds        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_samples_taken_at ON samples(taken_at);
`

// Store records memory usage samples in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one sample.
func (s *Store) Record(m model.MemStats) error {
	_, err := s.db.Exec(
		`INSERT INTO samples (taken_at, pid, virtual_bytes, resident_bytes, cpu_seconds, open_fds, max_fds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Timestamp.UnixNano(), m.PID,
		int64(m.VirtualBytes), int64(m.ResidentBytes),
		m.CPUSeconds, int64(m.OpenFDs), int64(m.MaxFDs),
	)
	if err != nil {
		return fmt.Errorf("insert sample: %w", err)
	}
	return nil
}

// Recent returns up to limit samples, newest first.
func (s *Store) Recent(limit int) ([]model.MemStats, error) {
	rows, err := s.db.Query(
		`SELECT taken_at, pid, virtual_bytes, resident_bytes, cpu_seconds, open_fds, max_fds
		 FROM samples ORDER BY taken_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var samples []model.MemStats
	for rows.Next() {
		var takenAt, vsize, rss, openFDs, maxFDs int64
		var m model.MemStats
		if err := rows.Scan(&takenAt, &m.PID, &vsize, &rss, &m.CPUSeconds, &openFDs, &maxFDs); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		m.Timestamp = time.Unix(0, takenAt)
		m.VirtualBytes = uint64(vsize)
		m.ResidentBytes = uint64(rss)
		m.OpenFDs = uint64(openFDs)
		m.MaxFDs = uint64(maxFDs)
		samples = append(samples, m)
	}
	return samples, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
