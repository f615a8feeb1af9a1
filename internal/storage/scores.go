package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Score is one recorded final score.
type Score struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// SaveScore records a final score and returns its row ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns the best scores of a mode, highest first. Ties go to
// the earlier score. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]Score, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return collect(rows, func(r rowScanner) (Score, error) {
		var sc Score
		var at any
		err := r.Scan(&sc.ID, &sc.GameID, &sc.Score, &at)
		sc.CreatedAt = parseTime(at)
		return sc, err
	})
}

// HighScore returns the best score of a mode, or 0 before the first one.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes the scores and runs of one mode.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"scores", "runs"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}
