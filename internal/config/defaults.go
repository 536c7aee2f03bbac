package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/star_catcher.yaml
var defaultStarCatcherYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Paddle: BreakoutPaddle{
			Width:        60,
			Height:       10,
			Speed:        10,
			BottomMargin: 5,
		},
		Ball: BreakoutBall{
			Radius:      5,
			ServeSpeedX: 4,
			ServeSpeedY: 4,
			SpinFactor:  4,
		},
		Bricks: BreakoutBricks{
			Rows:   5,
			Width:  30,
			Height: 10,
			Gap:    2,
			Top:    20,
		},
		Gameplay: BreakoutGameplay{
			Lives:          10,
			BrickPoints:    10,
			ServeDelayMs:   500,
			RespawnDelayMs: 500,
			ResultDelayMs:  3000,
			FrameMs:        10,
			IdleFrameMs:    50,
		},
		Exit: ExitConfig{
			IntervalMs: 300,
			Phases:     []string{"playing", "game_over", "win"},
		},
	}
}

// DefaultStarCatcherConfig returns the default Star Catcher configuration.
func DefaultStarCatcherConfig() StarCatcherConfig {
	return StarCatcherConfig{
		Player: StarPlayer{
			Width:        20,
			Height:       15,
			Speed:        7,
			BottomMargin: 5,
		},
		Stars: StarSpawn{
			Size:                       8,
			SpawnAreaFactor:            0.60,
			MinHorizontalSeparation:    24, // 3 star sizes
			MinVerticalStartSeparation: 16, // 2 star sizes
			ProximityDepth:             40, // 5 star sizes
			SpawnAttempts:              10,
			InitialIntervalMs:          2200,
			IntervalReductionMs:        25,
			MinIntervalMs:              200,
		},
		FallSpeed: StarFallSpeed{
			Base:               1,
			Max:                4,
			LevelsPerSpeedStep: 3,
		},
		Gameplay: StarGameplay{
			Lives:         3,
			MissesPerLife: 15,
			StarsPerLevel: 5,
			PointsPerStar: 10,
			StartDelayMs:  200,
			FrameMs:       20,
		},
		Exit: ExitConfig{
			IntervalMs: 300,
			Phases:     []string{"playing", "game_over"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "star_catcher":
		return defaultStarCatcherYAML
	default:
		return nil
	}
}
