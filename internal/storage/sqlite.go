// Package storage keeps a board of finished runs for the lifetime of the
// process. It uses an in-memory database through the pure-Go
// modernc.org/sqlite driver, so nothing is ever written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Board records finished runs.
type Board struct {
	db *sql.DB
}

// RunEntry is one finished run.
type RunEntry struct {
	ID        int64
	RunID     string
	Outcome   string // "won" or "lost"
	Score     int
	Kills     int
	Ticks     int64
	ElapsedMS int64
	CreatedAt time.Time
}

// Stats summarises the board.
type Stats struct {
	Runs int
	Wins int
	Best int
}

// OpenMemory creates an empty in-memory board.
func OpenMemory() (*Board, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	board := &Board{db: db}
	if err := board.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return board, nil
}

// migrate creates the schema.
func (b *Board) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, elapsed_ms ASC);
	`

	_, err := b.db.Exec(schema)
	return err
}

// Close closes the database, discarding the board.
func (b *Board) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// RecordRun stores a finished run. A missing RunID is generated.
// Returns the ID of the inserted record.
func (b *Board) RecordRun(e RunEntry) (int64, error) {
	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}
	result, err := b.db.Exec(
		`INSERT INTO runs (run_id, outcome, score, kills, ticks, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Outcome, e.Score, e.Kills, e.Ticks, e.ElapsedMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run %s: %w", e.RunID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs: highest score first, faster first on ties.
func (b *Board) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := b.db.Query(
		`SELECT id, run_id, outcome, score, kills, ticks, elapsed_ms, created_at
		 FROM runs
		 ORDER BY score DESC, elapsed_ms ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Outcome, &e.Score, &e.Kills, &e.Ticks, &e.ElapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Best returns the highest recorded score, or 0 for an empty board.
func (b *Board) Best() (int, error) {
	var score sql.NullInt64
	err := b.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns run and win counts plus the best score.
func (b *Board) Stats() (Stats, error) {
	var st Stats
	var best sql.NullInt64
	err := b.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0), MAX(score)
		 FROM runs`,
	).Scan(&st.Runs, &st.Wins, &best)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	if best.Valid {
		st.Best = int(best.Int64)
	}
	return st, nil
}

// Clear deletes every run.
func (b *Board) Clear() error {
	if _, err := b.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
