package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var b BreakoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML("breakout"), &b); err != nil {
		t.Fatalf("embedded breakout.yaml: %v", err)
	}
	if !reflect.DeepEqual(b, DefaultBreakoutConfig()) {
		t.Errorf("embedded breakout.yaml = %+v, expected %+v", b, DefaultBreakoutConfig())
	}

	var s StarCatcherConfig
	if err := yaml.Unmarshal(GetDefaultYAML("star_catcher"), &s); err != nil {
		t.Fatalf("embedded star_catcher.yaml: %v", err)
	}
	if !reflect.DeepEqual(s, DefaultStarCatcherConfig()) {
		t.Errorf("embedded star_catcher.yaml = %+v, expected %+v", s, DefaultStarCatcherConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Errorf("default breakout config invalid: %v", err)
	}
	if err := DefaultStarCatcherConfig().Validate(); err != nil {
		t.Errorf("default star catcher config invalid: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	data := []byte("gameplay:\n  lives: 4\nbricks:\n  rows: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Gameplay.Lives != 4 || cfg.Bricks.Rows != 2 {
		t.Errorf("overrides not applied: lives=%d rows=%d", cfg.Gameplay.Lives, cfg.Bricks.Rows)
	}
	if cfg.Paddle.Width != 60 {
		t.Errorf("missing keys should keep defaults, paddle width = %d", cfg.Paddle.Width)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadStarCatcher(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !reflect.DeepEqual(cfg, DefaultStarCatcherConfig()) {
		t.Error("failed load should return the defaults")
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero paddle width", func(c *BreakoutConfig) { c.Paddle.Width = 0 }},
		{"negative gap", func(c *BreakoutConfig) { c.Bricks.Gap = -1 }},
		{"title armed", func(c *BreakoutConfig) { c.Exit.Phases = []string{"title", "playing"} }},
		{"unknown phase", func(c *BreakoutConfig) { c.Exit.Phases = []string{"paused"} }},
		{"zero interval", func(c *BreakoutConfig) { c.Exit.IntervalMs = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	sc := DefaultStarCatcherConfig()
	sc.Stars.SpawnAreaFactor = 1.5
	if err := sc.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("spawn_area_factor 1.5: Validate() = %v, expected ErrInvalidConfig", err)
	}

	sc = DefaultStarCatcherConfig()
	sc.FallSpeed.Max = 0
	if err := sc.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("max below base: Validate() = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, []byte("exit:\n  phases: [title]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadBreakout error = %v, expected ErrInvalidConfig", err)
	}
}

func TestArmedPhases(t *testing.T) {
	phases, err := DefaultBreakoutConfig().Exit.ArmedPhases()
	if err != nil {
		t.Fatal(err)
	}
	expected := []core.Phase{core.PhasePlaying, core.PhaseGameOver, core.PhaseWin}
	if !reflect.DeepEqual(phases, expected) {
		t.Errorf("ArmedPhases() = %v, expected %v", phases, expected)
	}
}

func TestPresets(t *testing.T) {
	sc := DefaultStarCatcherConfig()
	ApplyStarCatcherPreset(&sc, DifficultyFixed)
	if sc.FallSpeed.LevelsPerSpeedStep != 0 || sc.Stars.IntervalReductionMs != 0 {
		t.Error("fixed preset should lock fall speed and spawn interval")
	}

	sc = DefaultStarCatcherConfig()
	ApplyStarCatcherPreset(&sc, DifficultyHard)
	if err := sc.Validate(); err != nil {
		t.Errorf("hard star catcher preset invalid: %v", err)
	}

	b := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&b, DifficultyEasy)
	if b.Gameplay.Lives != 15 {
		t.Errorf("easy lives = %d, expected 15", b.Gameplay.Lives)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("easy breakout preset invalid: %v", err)
	}

	if _, err := ParseDifficultyPreset("insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseDifficultyPreset(insane) = %v, expected ErrInvalidConfig", err)
	}
	if p, err := ParseDifficultyPreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficultyPreset(hard) = %v, %v", p, err)
	}
}
