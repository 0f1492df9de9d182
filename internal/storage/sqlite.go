// Package storage provides SQLite-based persistence for completed puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only finished solves are recorded; an unfinished puzzle is never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the solve table lives unless --db says otherwise.
const DefaultPath = "~/.jigsaw/jigsaw.db"

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Solve is one completed puzzle.
type Solve struct {
	ID        string // UUID, assigned by SaveSolve when empty
	Picture   string
	Rows      int
	Cols      int
	Moves     int
	Duration  time.Duration
	Player    string // SSH user, empty for local play
	CreatedAt time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS solves (
			id TEXT PRIMARY KEY,
			picture TEXT NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_grid ON solves(grid_rows, grid_cols);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(grid_rows, grid_cols, duration_ms, moves);
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

// SaveSolve records a completed puzzle and returns its ID.
func (s *Store) SaveSolve(solve Solve) (string, error) {
	if solve.Rows <= 0 || solve.Cols <= 0 {
		return "", fmt.Errorf("storage: invalid grid %dx%d", solve.Rows, solve.Cols)
	}
	if solve.ID == "" {
		solve.ID = uuid.NewString()
	}

	var err error
	if solve.CreatedAt.IsZero() {
		_, err = s.db.Exec(
			`INSERT INTO solves (id, picture, grid_rows, grid_cols, moves, duration_ms, player)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			solve.ID, solve.Picture, solve.Rows, solve.Cols, solve.Moves,
			solve.Duration.Milliseconds(), solve.Player,
		)
	} else {
		_, err = s.db.Exec(
			`INSERT INTO solves (id, picture, grid_rows, grid_cols, moves, duration_ms, player, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			solve.ID, solve.Picture, solve.Rows, solve.Cols, solve.Moves,
			solve.Duration.Milliseconds(), solve.Player, solve.CreatedAt.UTC().Format(sqliteTime),
		)
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot save solve: %w", err)
	}

	return solve.ID, nil
}

const solveColumns = `id, picture, grid_rows, grid_cols, moves, duration_ms, player, created_at`

// BestSolves retrieves the fastest solves for a grid size.
// Ties are broken by fewer moves, then by the earlier solve.
func (s *Store) BestSolves(rows, cols, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.querySolves(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE grid_rows = ? AND grid_cols = ?
		 ORDER BY duration_ms ASC, moves ASC, created_at ASC
		 LIMIT ?`,
		rows, cols, limit,
	)
}

// RecentSolves retrieves the most recent solves of any grid size.
func (s *Store) RecentSolves(limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.querySolves(
		`SELECT `+solveColumns+`
		 FROM solves
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) querySolves(query string, args ...any) ([]Solve, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var (
			sv         Solve
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(&sv.ID, &sv.Picture, &sv.Rows, &sv.Cols, &sv.Moves, &durationMS, &sv.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sv.Duration = time.Duration(durationMS) * time.Millisecond
		sv.CreatedAt = parseTime(createdAt)
		solves = append(solves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// BestTime returns the fastest solve time for a grid size.
// The bool is false when the grid has never been solved.
func (s *Store) BestTime(rows, cols int) (time.Duration, bool, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM solves WHERE grid_rows = ? AND grid_cols = ?",
		rows, cols,
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, false, nil
	}
	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// ClearSolves deletes all solves for a grid size.
func (s *Store) ClearSolves(rows, cols int) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE grid_rows = ? AND grid_cols = ?", rows, cols)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// GridStats contains aggregated statistics for one grid size.
type GridStats struct {
	Rows        int
	Cols        int
	Solves      int
	BestTime    time.Duration
	AvgTime     time.Duration
	FewestMoves int
	LastSolved  time.Time
}

// GetGridStats retrieves aggregated statistics for a grid size.
func (s *Store) GetGridStats(rows, cols int) (*GridStats, error) {
	stats := &GridStats{Rows: rows, Cols: cols}

	var (
		best, fewest int64
		avg          float64
		lastSolved   any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(duration_ms), 0), COALESCE(AVG(duration_ms), 0),
		        COALESCE(MIN(moves), 0), MAX(created_at)
		 FROM solves WHERE grid_rows = ? AND grid_cols = ?`,
		rows, cols,
	).Scan(&stats.Solves, &best, &avg, &fewest, &lastSolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get grid stats: %w", err)
	}

	stats.BestTime = time.Duration(best) * time.Millisecond
	stats.AvgTime = time.Duration(avg * float64(time.Millisecond))
	stats.FewestMoves = int(fewest)
	stats.LastSolved = parseTime(lastSolved)
	return stats, nil
}

// GetAllGridStats retrieves statistics for every grid size that has been
// solved, smallest grid first.
func (s *Store) GetAllGridStats() ([]GridStats, error) {
	rows, err := s.db.Query(
		`SELECT grid_rows, grid_cols, COUNT(*), MIN(duration_ms), AVG(duration_ms), MIN(moves), MAX(created_at)
		 FROM solves
		 GROUP BY grid_rows, grid_cols
		 ORDER BY grid_rows * grid_cols, grid_rows`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all grid stats: %w", err)
	}
	defer rows.Close()

	var all []GridStats
	for rows.Next() {
		var (
			st           GridStats
			best, fewest int64
			avg          float64
			lastSolved   any
		)
		if err := rows.Scan(&st.Rows, &st.Cols, &st.Solves, &best, &avg, &fewest, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(best) * time.Millisecond
		st.AvgTime = time.Duration(avg * float64(time.Millisecond))
		st.FewestMoves = int(fewest)
		st.LastSolved = parseTime(lastSolved)
		all = append(all, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// SolveByID retrieves one solve. Returns ErrNotFound if it does not exist.
func (s *Store) SolveByID(id string) (*Solve, error) {
	solves, err := s.querySolves(`SELECT `+solveColumns+` FROM solves WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(solves) == 0 {
		return nil, ErrNotFound
	}
	return &solves[0], nil
}

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("storage: not found")

// parseTime handles both driver-decoded times and raw SQLite strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
