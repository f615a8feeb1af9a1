package storage

import (
	"fmt"
	"time"
)

// ModeStats aggregates the history of one mode.
type ModeStats struct {
	GameID     string
	Games      int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	TotalExits int64 // From run history
	BestStreak int   // From run history
	LastPlayed time.Time
}

// Stats returns the aggregates of one mode. A mode that was never played
// has zero stats.
func (s *Store) Stats(gameID string) (ModeStats, error) {
	st := ModeStats{GameID: gameID}

	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&st.Games, &st.HighScore, &st.AvgScore, &st.TotalScore, &last)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(last)

	err = s.db.QueryRow(
		"SELECT COALESCE(SUM(exits), 0), COALESCE(MAX(best_streak), 0) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&st.TotalExits, &st.BestStreak)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	return st, nil
}

// AllStats returns score aggregates for every mode with at least one
// score, keyed by mode ID.
func (s *Store) AllStats() (map[string]ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	list, err := collect(rows, func(r rowScanner) (ModeStats, error) {
		var st ModeStats
		var last any
		err := r.Scan(&st.GameID, &st.Games, &st.HighScore, &st.AvgScore, &st.TotalScore, &last)
		st.LastPlayed = parseTime(last)
		return st, err
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string]ModeStats, len(list))
	for _, st := range list {
		out[st.GameID] = st
	}
	return out, nil
}
