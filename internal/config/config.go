// Package config provides YAML-based game configuration loading for the
// snake engine. Defaults reproduce the reference ruleset exactly.
package config

// Config contains all tunable parameters of the game.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Snake   SnakeConfig   `yaml:"snake"`
	Scoring ScoringConfig `yaml:"scoring"`
	Bonus   BonusConfig   `yaml:"bonus"`
	Speed   SpeedConfig   `yaml:"speed"`
}

// GridConfig defines the play field dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines snake parameters.
type SnakeConfig struct {
	StartLength int `yaml:"start_length"`
}

// ScoringConfig defines scoring parameters. Food points are multiplied by
// the selected difficulty level.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// BonusConfig defines the timed bonus item behavior. The reward decays
// linearly from MaxReward to MinReward over DecayWindowSecs.
type BonusConfig struct {
	AppleThreshold  int     `yaml:"apple_threshold"`
	DecayWindowSecs float64 `yaml:"decay_window_secs"`
	MaxReward       int     `yaml:"max_reward"`
	MinReward       int     `yaml:"min_reward"`
	GrowSegments    int     `yaml:"grow_segments"`
}

// SpeedConfig maps difficulty levels to gameplay ticks per second, plus the
// menu's own UI refresh rate (the menu never runs gameplay ticks).
type SpeedConfig struct {
	Level1      int `yaml:"level1"`
	Level2      int `yaml:"level2"`
	Level3      int `yaml:"level3"`
	MenuRefresh int `yaml:"menu_refresh"`
}

// TicksPerSecond returns the tick rate for a difficulty level (1-3).
// Unknown levels fall back to level 1.
func (s SpeedConfig) TicksPerSecond(level int) int {
	switch level {
	case 2:
		return s.Level2
	case 3:
		return s.Level3
	default:
		return s.Level1
	}
}
