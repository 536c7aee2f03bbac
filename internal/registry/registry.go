// Package registry maps game IDs to factories. Game packages register
// themselves from init, so the launcher and the CLI only need a blank import
// to discover them.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// Game is the interface every arcade game implements.
// Games contain pure logic: no goroutines, no sleeping, no host dependencies.
// The loop handles input sampling, timing, and presenting frames.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns a human-readable name for display (e.g., "Breakout").
	Title() string

	// Reset puts the game in its title phase with fresh counters.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame. It feeds the exit gesture first,
	// then runs the current phase. The returned interval is how long the
	// loop should wait before the next frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. The game clears the display itself;
	// the loop presents it afterwards.
	Render(dst core.Display)

	// State returns the current phase and counters.
	State() core.GameState

	// WantsExit reports whether the exit gesture has been completed.
	WantsExit() bool
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance. Factories may read config files,
// so they only run when a game is actually started.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game under info.ID. It is meant to be called from a game
// package's init function and panics on an empty or duplicate ID.
func Register(info GameInfo, f Factory) {
	if info.ID == "" {
		panic("registry: empty game ID")
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		games = append(games, e.info)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Create builds a new instance of the game with the given ID. The error
// wraps ErrUnknownGame for unregistered IDs.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
