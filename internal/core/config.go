package core

import (
	"fmt"
	"time"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in pixels
	ScreenH int   // Screen height in pixels
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig for the 320×240 panel.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 320,
		ScreenH: 240,
		Seed:    0, // 0 means use current time in the loop
	}
}

// Phase is the top-level mode of a game.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseWin
)

var phaseNames = map[Phase]string{
	PhaseTitle:    "title",
	PhasePlaying:  "playing",
	PhaseGameOver: "game_over",
	PhaseWin:      "win",
}

// String returns the config name of the phase.
func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ParsePhase converts a config name such as "game_over" to a Phase.
func ParsePhase(s string) (Phase, error) {
	for p, name := range phaseNames {
		if name == s {
			return p, nil
		}
	}
	return PhaseTitle, fmt.Errorf("unknown phase %q", s)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the loop.
type GameState struct {
	Phase Phase
	Score int
	Lives int
	Level int
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// FrameInterval is how long the loop should sleep before the next
	// frame. It depends on the phase: the games redraw idle screens slower.
	FrameInterval time.Duration
}
