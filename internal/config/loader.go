package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.gosnake/config.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	// Try user config directory. A missing file falls through to the next
	// source; a file that exists but is broken is an error, not something
	// to silently shadow with defaults.
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, validate(cfg)
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config configs/snake.yaml: %w", err)
		}
		return cfg, validate(cfg)
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gosnake", filename)
}

// validate rejects configurations the engine cannot run.
func validate(cfg Config) error {
	if cfg.Grid.Width < 5 || cfg.Grid.Height < 5 {
		return fmt.Errorf("config: grid %dx%d is too small (minimum 5x5)", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Snake.StartLength < 3 {
		return fmt.Errorf("config: snake start length %d is below the minimum of 3", cfg.Snake.StartLength)
	}
	if cfg.Snake.StartLength >= cfg.Grid.Width {
		return fmt.Errorf("config: snake start length %d does not fit a %d-wide grid", cfg.Snake.StartLength, cfg.Grid.Width)
	}
	if cfg.Bonus.DecayWindowSecs <= 0 {
		return fmt.Errorf("config: bonus decay window must be positive, got %v", cfg.Bonus.DecayWindowSecs)
	}
	if cfg.Bonus.MinReward > cfg.Bonus.MaxReward {
		return fmt.Errorf("config: bonus min reward %d exceeds max reward %d", cfg.Bonus.MinReward, cfg.Bonus.MaxReward)
	}
	for level := 1; level <= 3; level++ {
		if cfg.Speed.TicksPerSecond(level) <= 0 {
			return fmt.Errorf("config: tick rate for level %d must be positive", level)
		}
	}
	if cfg.Speed.MenuRefresh <= 0 {
		return fmt.Errorf("config: menu refresh rate must be positive, got %d", cfg.Speed.MenuRefresh)
	}
	return nil
}
