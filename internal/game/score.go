package game

// ScoreKeeper converts game events into score deltas. The total is
// non-negative and monotonically non-decreasing within a session.
type ScoreKeeper struct {
	total int
}

// AddFood credits a food pickup: base points times the difficulty
// multiplier. Returns the delta applied.
func (s *ScoreKeeper) AddFood(foodPoints int, level Level) int {
	delta := foodPoints * level.Multiplier()
	s.total += delta
	return delta
}

// AddBonus credits a bonus pickup with its already-decayed reward.
// Returns the delta applied.
func (s *ScoreKeeper) AddBonus(reward int) int {
	s.total += reward
	return reward
}

// Total returns the session score.
func (s *ScoreKeeper) Total() int {
	return s.total
}

// Reset zeroes the score for a new session.
func (s *ScoreKeeper) Reset() {
	s.total = 0
}
