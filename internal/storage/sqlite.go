// Package storage keeps the run history of the current process in an
// in-memory SQLite database. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Nothing is written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrClosed is returned by every method after Close.
var ErrClosed = errors.New("storage: store is closed")

// Store manages the in-memory run history.
type Store struct {
	db     *sql.DB
	closed atomic.Bool
}

// Run is one finished session.
type Run struct {
	ID         int64
	Difficulty string
	Score      int
	Height     int
	Cause      string // "enemy" or "lava"
	Ticks      uint64
	NewRecord  bool
	Seed       int64
	CreatedAt  time.Time
}

// Stats contains aggregated statistics for one difficulty.
type Stats struct {
	Difficulty  string
	Runs        int
	BestScore   int
	AvgScore    float64
	TotalTicks  int64
	LavaDeaths  int
	EnemyDeaths int
	LastPlayed  time.Time
}

// OpenMemory creates a private in-memory database and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database; pin one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			height INTEGER NOT NULL,
			cause TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			new_record INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database. The history is gone afterwards.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// SaveRun records a finished session and returns its ID.
func (s *Store) SaveRun(run Run) (int64, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (difficulty, score, height, cause, ticks, new_record, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Difficulty, run.Score, run.Height, run.Cause, int64(run.Ticks), run.NewRecord, run.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, difficulty, score, height, cause, ticks, new_record, seed, created_at`

// TopRuns retrieves the best runs for a difficulty, or across all
// difficulties when difficulty is empty. Ties keep insertion order.
func (s *Store) TopRuns(difficulty string, limit int) ([]Run, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Score, &r.Height, &r.Cause,
			&ticks, &r.NewRecord, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score for a difficulty, or across all
// difficulties when difficulty is empty. Returns 0 if no runs exist.
func (s *Store) BestScore(difficulty string) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}

	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE ? = '' OR difficulty = ?",
		difficulty, difficulty,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// AllStats retrieves statistics for every difficulty that has runs.
func (s *Store) AllStats() (map[string]*Stats, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(ticks),
		        SUM(CASE WHEN cause = 'lava' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN cause = 'enemy' THEN 1 ELSE 0 END),
		        MAX(created_at)
		 FROM runs
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Runs, &st.BestScore, &st.AvgScore, &st.TotalTicks,
			&st.LavaDeaths, &st.EnemyDeaths, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Clear deletes every run.
func (s *Store) Clear() error {
	if s.closed.Load() {
		return ErrClosed
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
