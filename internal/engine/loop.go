// Package engine runs a game against its display, buttons and clock:
// sample input, step, render, present, sleep.
package engine

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// DefaultFrameInterval is used when a game reports no interval.
const DefaultFrameInterval = 20 * time.Millisecond

// Devices are the collaborators a game loop runs against.
type Devices struct {
	Display core.Display
	Buttons core.Buttons
	Clock   core.Clock
}

// Host is what a backend runs on its devices: a single game loop or the
// launcher. It returns when it is done or ctx is cancelled.
type Host func(ctx context.Context, dev Devices) error

// Loop drives one game. It is not safe for concurrent use; all game state is
// touched from the goroutine calling Tick or Run.
type Loop struct {
	game    registry.Game
	dev     Devices
	sampler *core.Sampler
	logger  *log.Logger

	phase  core.Phase
	frames uint64
}

// NewLoop creates a loop for game. A nil logger discards output.
func NewLoop(game registry.Game, dev Devices, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:    game,
		dev:     dev,
		sampler: core.NewSampler(dev.Buttons),
		logger:  logger,
	}
}

// Start resets the game for the display size. A zero seed is replaced with
// a time-based one. Buttons already held are not reported as new presses.
func (l *Loop) Start(cfg core.RuntimeConfig) {
	cfg.ScreenW, cfg.ScreenH = l.dev.Display.Bounds()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	l.game.Reset(cfg)
	l.sampler.Prime()
	l.phase = l.game.State().Phase
	l.frames = 0

	l.logger.Debug("game started", "game", l.game.ID(), "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)
}

// Tick runs one iteration and returns how long to wait before the next one.
// done is true once the game has asked to exit; that frame is not drawn.
func (l *Loop) Tick() (interval time.Duration, done bool) {
	now := l.dev.Clock.NowMs()
	in := l.sampler.Sample(now)

	res := l.game.Step(in)
	if res.State.Phase != l.phase {
		l.logger.Debug("phase change",
			"game", l.game.ID(),
			"from", l.phase,
			"to", res.State.Phase,
			"score", res.State.Score,
			"lives", res.State.Lives,
		)
		l.phase = res.State.Phase
	}

	if l.game.WantsExit() {
		return 0, true
	}

	l.game.Render(l.dev.Display)
	l.dev.Display.Update()
	l.frames++

	interval = res.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return interval, false
}

// Frames returns how many frames have been presented since Start.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run ticks until the game exits or ctx is cancelled. The display is left
// cleared to black either way. It returns nil when the game exited and
// ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	defer l.clear()

	for {
		if err := ctx.Err(); err != nil {
			l.logger.Debug("loop cancelled", "game", l.game.ID(), "frames", l.frames)
			return err
		}

		interval, done := l.Tick()
		if done {
			l.logger.Debug("game exited", "game", l.game.ID(), "frames", l.frames, "score", l.game.State().Score)
			return nil
		}

		l.dev.Clock.Sleep(interval)
	}
}

// clear leaves the display black.
func (l *Loop) clear() {
	l.dev.Display.SetPen(core.Black)
	l.dev.Display.Clear()
	l.dev.Display.Update()
}
