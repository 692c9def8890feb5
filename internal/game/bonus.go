package game

import (
	"math"
	"time"

	"github.com/mpetrov/gosnake/internal/config"
	"github.com/mpetrov/gosnake/internal/core"
)

// Bonus is the optional timed high-value pickup. It spawns after a run of
// apples and its reward decays from the moment it appears. The zero value is
// an inactive bonus.
type Bonus struct {
	Pos       core.Point
	Active    bool
	SpawnedAt time.Time
}

// Reward computes the score value of consuming the bonus at the given time.
// The reward decays linearly from MaxReward at spawn to MinReward once the
// decay window has fully elapsed, and never drops below MinReward. Only the
// spawn and consumption timestamps matter; nothing is re-evaluated between
// them.
func (b Bonus) Reward(now time.Time, cfg config.BonusConfig) int {
	elapsed := now.Sub(b.SpawnedAt).Seconds()
	frac := core.ClampF(elapsed/cfg.DecayWindowSecs, 0, 1)
	span := float64(cfg.MaxReward - cfg.MinReward)
	reward := int(math.Round(float64(cfg.MaxReward) - frac*span))
	return core.Max(cfg.MinReward, reward)
}
