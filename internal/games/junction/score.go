package junction

import "github.com/vovakirdan/tui-junction/internal/config"

// Award describes the points given for one vehicle leaving the map.
type Award struct {
	Points    int
	Bonus     int
	Streak    int
	Milestone bool // Score just hit the milestone for the first time
}

// Scoreboard tracks score, exit streaks, crashes and end-of-game state.
type Scoreboard struct {
	cfg config.ScoringConfig

	score      int
	streak     int
	bestStreak int
	exits      int
	crashes    int

	lastExit float64
	hasExit  bool

	bonus      int
	bonusUntil float64

	milestoneHit bool
	gameOver     bool
}

// NewScoreboard creates a zeroed scoreboard.
func NewScoreboard(cfg config.ScoringConfig) *Scoreboard {
	return &Scoreboard{cfg: cfg}
}

// Reset clears all counters.
func (s *Scoreboard) Reset() {
	*s = Scoreboard{cfg: s.cfg}
}

// Exit records a vehicle leaving the map at now. Exits after game over are ignored.
func (s *Scoreboard) Exit(now float64) Award {
	if s.gameOver {
		return Award{}
	}

	if s.hasExit && now-s.lastExit < float64(s.cfg.StreakTimeoutMs) {
		s.streak++
	} else {
		s.streak = 1
	}
	s.lastExit = now
	s.hasExit = true
	s.exits++
	s.bestStreak = max(s.bestStreak, s.streak)

	bonus := 0
	if s.cfg.StreakBonusEvery > 0 {
		bonus = s.streak / s.cfg.StreakBonusEvery
	}
	points := s.cfg.ExitPoints + bonus
	s.score += points

	if bonus > 0 {
		s.bonus = bonus
		s.bonusUntil = now + float64(s.cfg.BonusDisplayMs)
	}

	return Award{Points: points, Bonus: bonus, Streak: s.streak, Milestone: s.checkMilestone()}
}

// Crash deducts the crash penalty and breaks the streak. It reports whether
// the score went negative, ending the game, and whether the milestone was hit.
func (s *Scoreboard) Crash(penalty int) (over, milestone bool) {
	if s.gameOver {
		return false, false
	}
	s.crashes++
	s.score -= penalty
	s.streak = 0
	milestone = s.checkMilestone()
	if s.score < 0 {
		s.gameOver = true
		return true, milestone
	}
	return false, milestone
}

func (s *Scoreboard) checkMilestone() bool {
	if s.milestoneHit || s.cfg.Milestone <= 0 || s.score != s.cfg.Milestone {
		return false
	}
	s.milestoneHit = true
	return true
}

// Score returns the current score.
func (s *Scoreboard) Score() int { return s.score }

// Streak returns the current exit streak.
func (s *Scoreboard) Streak() int { return s.streak }

// BestStreak returns the longest streak of the run.
func (s *Scoreboard) BestStreak() int { return s.bestStreak }

// Exits returns how many vehicles made it through.
func (s *Scoreboard) Exits() int { return s.exits }

// Crashes returns how many crashes happened.
func (s *Scoreboard) Crashes() int { return s.crashes }

// GameOver reports whether the score has dropped below zero.
func (s *Scoreboard) GameOver() bool { return s.gameOver }

// Bonus returns the streak bonus to display at now, or 0.
func (s *Scoreboard) Bonus(now float64) int {
	if now >= s.bonusUntil {
		return 0
	}
	return s.bonus
}
