// Package config provides YAML-based game configuration loading,
// difficulty presets and validation for the arcade.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
	Exit     ExitConfig       `yaml:"exit"`
}

// BreakoutPaddle defines paddle parameters for Breakout.
type BreakoutPaddle struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // pixels per frame
	BottomMargin int `yaml:"bottom_margin"` // gap between paddle and screen bottom
}

// BreakoutBall defines ball parameters for Breakout.
type BreakoutBall struct {
	Radius      int `yaml:"radius"`
	ServeSpeedX int `yaml:"serve_speed_x"` // horizontal speed at serve; sign is random
	ServeSpeedY int `yaml:"serve_speed_y"` // upward speed at serve
	SpinFactor  int `yaml:"spin_factor"`   // max horizontal speed after a paddle hit at the paddle edge
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Rows   int `yaml:"rows"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Gap    int `yaml:"gap"`
	Top    int `yaml:"top"` // y of the first row, below the HUD
}

// BreakoutGameplay defines counters and pacing for Breakout.
type BreakoutGameplay struct {
	Lives          int `yaml:"lives"`
	BrickPoints    int `yaml:"brick_points"`
	ServeDelayMs   int `yaml:"serve_delay_ms"`
	RespawnDelayMs int `yaml:"respawn_delay_ms"`
	ResultDelayMs  int `yaml:"result_delay_ms"` // game over / win screen before returning to title
	FrameMs        int `yaml:"frame_ms"`        // frame interval while playing
	IdleFrameMs    int `yaml:"idle_frame_ms"`   // frame interval on title and result screens
}

// StarCatcherConfig contains all configuration for the Star Catcher game.
type StarCatcherConfig struct {
	Player    StarPlayer    `yaml:"player"`
	Stars     StarSpawn     `yaml:"stars"`
	FallSpeed StarFallSpeed `yaml:"fall_speed"`
	Gameplay  StarGameplay  `yaml:"gameplay"`
	Exit      ExitConfig    `yaml:"exit"`
}

// StarPlayer defines the catcher ship.
type StarPlayer struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`
	BottomMargin int `yaml:"bottom_margin"`
}

// StarSpawn defines star size and spawn placement.
type StarSpawn struct {
	Size                       int     `yaml:"size"`
	SpawnAreaFactor            float64 `yaml:"spawn_area_factor"` // centred fraction of the width stars spawn in
	MinHorizontalSeparation    int     `yaml:"min_horizontal_separation"`
	MinVerticalStartSeparation int     `yaml:"min_vertical_start_separation"`
	ProximityDepth             int     `yaml:"proximity_depth"`
	SpawnAttempts              int     `yaml:"spawn_attempts"`
	InitialIntervalMs          int     `yaml:"initial_interval_ms"`
	IntervalReductionMs        int     `yaml:"interval_reduction_ms"` // per level
	MinIntervalMs              int     `yaml:"min_interval_ms"`
}

// StarFallSpeed defines how fast stars fall per level.
type StarFallSpeed struct {
	Base               int `yaml:"base"`
	Max                int `yaml:"max"`
	LevelsPerSpeedStep int `yaml:"levels_per_speed_step"` // 0 locks the speed at Base
}

// StarGameplay defines counters and pacing for Star Catcher.
type StarGameplay struct {
	Lives         int `yaml:"lives"`
	MissesPerLife int `yaml:"misses_per_life"`
	StarsPerLevel int `yaml:"stars_per_level"`
	PointsPerStar int `yaml:"points_per_star"` // multiplied by the level
	StartDelayMs  int `yaml:"start_delay_ms"`
	FrameMs       int `yaml:"frame_ms"`
}

// ExitConfig defines the double-click exit gesture.
type ExitConfig struct {
	IntervalMs int      `yaml:"interval_ms"`
	Phases     []string `yaml:"phases"` // phases in which the gesture is armed
}

// ArmedPhases parses Phases. The title phase is rejected: the gesture is
// never armed there.
func (e ExitConfig) ArmedPhases() ([]core.Phase, error) {
	phases := make([]core.Phase, 0, len(e.Phases))
	for _, name := range e.Phases {
		p, err := core.ParsePhase(name)
		if err != nil {
			return nil, fmt.Errorf("%w: exit.phases: %v", ErrInvalidConfig, err)
		}
		if p == core.PhaseTitle {
			return nil, fmt.Errorf("%w: exit.phases: title cannot be armed", ErrInvalidConfig)
		}
		phases = append(phases, p)
	}
	return phases, nil
}

// Validate checks the exit gesture settings.
func (e ExitConfig) Validate() error {
	if e.IntervalMs <= 0 {
		return fmt.Errorf("%w: exit.interval_ms must be positive, got %d", ErrInvalidConfig, e.IntervalMs)
	}
	_, err := e.ArmedPhases()
	return err
}

// field is a named integer setting.
type field struct {
	name  string
	value int
}

// positive returns an ErrInvalidConfig error naming the first field whose
// value is not positive.
func positive(fields ...field) error {
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// Validate checks that every size, counter and interval is usable.
func (c BreakoutConfig) Validate() error {
	if err := positive(
		field{"paddle.width", c.Paddle.Width},
		field{"paddle.height", c.Paddle.Height},
		field{"paddle.speed", c.Paddle.Speed},
		field{"ball.radius", c.Ball.Radius},
		field{"ball.serve_speed_y", c.Ball.ServeSpeedY},
		field{"bricks.rows", c.Bricks.Rows},
		field{"bricks.width", c.Bricks.Width},
		field{"bricks.height", c.Bricks.Height},
		field{"gameplay.lives", c.Gameplay.Lives},
		field{"gameplay.frame_ms", c.Gameplay.FrameMs},
		field{"gameplay.idle_frame_ms", c.Gameplay.IdleFrameMs},
	); err != nil {
		return err
	}
	if c.Ball.ServeSpeedX < 0 || c.Ball.SpinFactor < 0 || c.Bricks.Gap < 0 || c.Bricks.Top < 0 || c.Paddle.BottomMargin < 0 {
		return fmt.Errorf("%w: breakout sizes must not be negative", ErrInvalidConfig)
	}
	if c.Gameplay.BrickPoints < 0 || c.Gameplay.ServeDelayMs < 0 || c.Gameplay.RespawnDelayMs < 0 || c.Gameplay.ResultDelayMs < 0 {
		return fmt.Errorf("%w: breakout points and delays must not be negative", ErrInvalidConfig)
	}
	return c.Exit.Validate()
}

// Validate checks that every size, counter and interval is usable.
func (c StarCatcherConfig) Validate() error {
	if err := positive(
		field{"player.width", c.Player.Width},
		field{"player.height", c.Player.Height},
		field{"player.speed", c.Player.Speed},
		field{"stars.size", c.Stars.Size},
		field{"stars.spawn_attempts", c.Stars.SpawnAttempts},
		field{"stars.initial_interval_ms", c.Stars.InitialIntervalMs},
		field{"stars.min_interval_ms", c.Stars.MinIntervalMs},
		field{"fall_speed.base", c.FallSpeed.Base},
		field{"gameplay.lives", c.Gameplay.Lives},
		field{"gameplay.misses_per_life", c.Gameplay.MissesPerLife},
		field{"gameplay.stars_per_level", c.Gameplay.StarsPerLevel},
		field{"gameplay.frame_ms", c.Gameplay.FrameMs},
	); err != nil {
		return err
	}
	if c.Stars.SpawnAreaFactor <= 0 || c.Stars.SpawnAreaFactor > 1 {
		return fmt.Errorf("%w: stars.spawn_area_factor must be in (0, 1], got %g", ErrInvalidConfig, c.Stars.SpawnAreaFactor)
	}
	if c.FallSpeed.Max < c.FallSpeed.Base {
		return fmt.Errorf("%w: fall_speed.max %d is below base %d", ErrInvalidConfig, c.FallSpeed.Max, c.FallSpeed.Base)
	}
	if c.FallSpeed.LevelsPerSpeedStep < 0 || c.Stars.IntervalReductionMs < 0 || c.Gameplay.StartDelayMs < 0 ||
		c.Gameplay.PointsPerStar < 0 || c.Stars.MinHorizontalSeparation < 0 ||
		c.Stars.MinVerticalStartSeparation < 0 || c.Stars.ProximityDepth < 0 || c.Player.BottomMargin < 0 {
		return fmt.Errorf("%w: star catcher values must not be negative", ErrInvalidConfig)
	}
	return c.Exit.Validate()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset. The empty string
// means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}
