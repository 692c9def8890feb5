package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 20x20 grid, length-3 snake,
// 10-point food, and a 50-to-5 bonus decaying over 5 seconds.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Snake: SnakeConfig{
			StartLength: 3,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Bonus: BonusConfig{
			AppleThreshold:  5,
			DecayWindowSecs: 5.0,
			MaxReward:       50,
			MinReward:       5,
			GrowSegments:    2,
		},
		Speed: SpeedConfig{
			Level1:      8,
			Level2:      10,
			Level3:      13,
			MenuRefresh: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
