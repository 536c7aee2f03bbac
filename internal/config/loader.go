package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load fills out from the first config found for gameID.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded on top of out, so keys missing from a file keep the
// values out already holds.
func load(gameID, customPath string, out any) error {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err != nil {
				return fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return nil
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", filename)
	if data, err := os.ReadFile(localPath); err == nil {
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", localPath, err)
		}
		return nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), out); err != nil {
		return fmt.Errorf("failed to parse embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadBreakout loads and validates Breakout configuration.
// On error the returned config is the built-in default, so callers can
// report the error and keep going.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := load("breakout", customPath, &cfg); err != nil {
		return DefaultBreakoutConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultBreakoutConfig(), fmt.Errorf("breakout config: %w", err)
	}
	return cfg, nil
}

// LoadStarCatcher loads and validates Star Catcher configuration.
// On error the returned config is the built-in default.
func LoadStarCatcher(customPath string) (StarCatcherConfig, error) {
	cfg := DefaultStarCatcherConfig()
	if err := load("star_catcher", customPath, &cfg); err != nil {
		return DefaultStarCatcherConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultStarCatcherConfig(), fmt.Errorf("star catcher config: %w", err)
	}
	return cfg, nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Breakout has no progression, so fixed behaves like normal.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 15
		cfg.Paddle.Width = 80
		cfg.Ball.ServeSpeedX = 3
		cfg.Ball.ServeSpeedY = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 45
		cfg.Ball.ServeSpeedX = 5
		cfg.Ball.ServeSpeedY = 5
		cfg.Ball.SpinFactor = 6
	}
}

// ApplyStarCatcherPreset modifies the config based on a difficulty preset.
func ApplyStarCatcherPreset(cfg *StarCatcherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.MissesPerLife = 20
		cfg.Stars.InitialIntervalMs = 2600
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.MissesPerLife = 10
		cfg.Stars.InitialIntervalMs = 1800
		cfg.FallSpeed.Base = 2
		if cfg.FallSpeed.Max < cfg.FallSpeed.Base {
			cfg.FallSpeed.Max = cfg.FallSpeed.Base
		}
	case DifficultyFixed:
		cfg.FallSpeed.LevelsPerSpeedStep = 0
		cfg.Stars.IntervalReductionMs = 0
	}
}
