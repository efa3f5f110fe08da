// Package storage provides SQLite-based persistence for headless run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wizard-td/internal/autoplay"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry represents one recorded headless run.
type RunEntry struct {
	ID           int64
	RunID        string
	Strategy     string
	Preset       string
	Seed         int64
	WaveReached  int
	WavesCleared int
	Kills        int
	Leaks        int
	Gold         int
	GameOver     bool
	SimMs        int64
	CreatedAt    time.Time
}

// StrategyStats contains aggregated statistics for one strategy.
type StrategyStats struct {
	Strategy   string
	Runs       int
	BestWave   int
	AvgWave    float64
	TotalKills int64
	LastRun    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			strategy TEXT NOT NULL,
			preset TEXT NOT NULL DEFAULT 'normal',
			seed INTEGER NOT NULL DEFAULT 0,
			wave_reached INTEGER NOT NULL,
			waves_cleared INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			leaks INTEGER NOT NULL DEFAULT 0,
			gold INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0,
			sim_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(strategy, wave_reached DESC, kills DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(res autoplay.Result) (int64, error) {
	preset := res.Preset
	if preset == "" {
		preset = "normal"
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, strategy, preset, seed, wave_reached, waves_cleared, kills, leaks, gold, game_over, sim_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID,
		res.Strategy,
		preset,
		res.Seed,
		res.WaveReached,
		res.WavesCleared,
		res.Kills,
		res.Leaks,
		res.Gold,
		res.GameOver,
		int64(res.SimulatedMs),
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

const runColumns = `id, run_id, strategy, preset, seed, wave_reached, waves_cleared,
		        kills, leaks, gold, game_over, sim_ms, created_at`

// TopRuns retrieves the best N runs, ranked by wave reached, then kills,
// then fewest leaks. An empty strategy ranks across all strategies.
func (s *Store) TopRuns(strategy string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR strategy = ?
		 ORDER BY wave_reached DESC, kills DESC, leaks ASC, id ASC
		 LIMIT ?`,
		strategy, strategy, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunByID retrieves a run by its run ID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*RunEntry, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// BestWave returns the highest wave reached by the strategy.
// Returns 0 if no runs exist.
func (s *Store) BestWave(strategy string) (int, error) {
	var wave sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(wave_reached) FROM runs WHERE strategy = ?",
		strategy,
	).Scan(&wave)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best wave: %w", err)
	}

	if !wave.Valid {
		return 0, nil
	}

	return int(wave.Int64), nil
}

// ClearRuns deletes all runs for the given strategy.
func (s *Store) ClearRuns(strategy string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE strategy = ?", strategy)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// StrategyStats retrieves statistics for every strategy that has runs.
func (s *Store) StrategyStats() (map[string]*StrategyStats, error) {
	rows, err := s.db.Query(
		`SELECT strategy, COUNT(*), MAX(wave_reached), AVG(wave_reached), SUM(kills), MAX(created_at)
		 FROM runs
		 GROUP BY strategy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get strategy stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*StrategyStats)
	for rows.Next() {
		var st StrategyStats
		var lastRun any
		if err := rows.Scan(&st.Strategy, &st.Runs, &st.BestWave, &st.AvgWave, &st.TotalKills, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Strategy] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	err := row.Scan(
		&e.ID,
		&e.RunID,
		&e.Strategy,
		&e.Preset,
		&e.Seed,
		&e.WaveReached,
		&e.WavesCleared,
		&e.Kills,
		&e.Leaks,
		&e.Gold,
		&e.GameOver,
		&e.SimMs,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
