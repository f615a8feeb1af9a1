package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run summarizes one finished game.
type Run struct {
	ID         int64
	RunID      string // UUID, generated on save when empty
	GameID     string
	Player     string // Local user or SSH user
	Score      int
	Exits      int
	Crashes    int
	BestStreak int
	Ticks      int
	CreatedAt  time.Time
}

const runColumns = "id, run_id, game_id, player, score, exits, crashes, best_streak, ticks, created_at"

// SaveRun records a run and returns it with its IDs filled in. Run IDs are
// unique, so saving the same run twice fails.
func (s *Store) SaveRun(run Run) (Run, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, player, score, exits, crashes, best_streak, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.GameID, run.Player, run.Score,
		run.Exits, run.Crashes, run.BestStreak, run.Ticks,
	)
	if err != nil {
		return run, fmt.Errorf("storage: cannot save run: %w", err)
	}
	run.ID, err = res.LastInsertId()
	return run, err
}

// RunByID looks a run up by its UUID. A missing run is nil, not an error.
func (s *Store) RunByID(runID string) (*Run, error) {
	run, err := scanRun(s.db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns returns the latest runs, newest first. An empty gameID spans
// every mode; a non-positive limit means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		"SELECT "+runColumns+` FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collect(rows, scanRun)
}

func scanRun(r rowScanner) (Run, error) {
	var run Run
	var at any
	err := r.Scan(&run.ID, &run.RunID, &run.GameID, &run.Player, &run.Score,
		&run.Exits, &run.Crashes, &run.BestStreak, &run.Ticks, &at)
	run.CreatedAt = parseTime(at)
	return run, err
}
