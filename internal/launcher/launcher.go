// Package launcher is the on-device game menu: pick a game with Left/Right,
// start it with Confirm, come back when the game is exited.
package launcher

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/engine"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// Menu timing.
const (
	IdleInterval  = 50 * time.Millisecond
	StartingDelay = 500 * time.Millisecond
	ReturnDelay   = 500 * time.Millisecond
)

// Menu layout.
const (
	titleY      = 10
	titleScale  = 3
	itemScale   = 2
	itemTop     = 45
	itemHeight  = 16
	itemPadding = 8
	marginX     = 10
)

// Factory creates a game by ID.
type Factory func(id string) (registry.Game, error)

// Config configures a Launcher.
type Config struct {
	// Games are the menu entries. Empty lists every registered game.
	Games []registry.GameInfo

	// Create builds a game by ID. Nil uses registry.Create.
	Create Factory

	// Runtime is passed to each game's Reset.
	Runtime core.RuntimeConfig
}

// Launcher runs the game menu on a set of devices.
type Launcher struct {
	dev      engine.Devices
	games    []registry.GameInfo
	create   Factory
	runtime  core.RuntimeConfig
	logger   *log.Logger
	sampler  *core.Sampler
	selected int
}

// New creates a launcher. A nil logger discards output.
func New(dev engine.Devices, cfg Config, logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if len(cfg.Games) == 0 {
		cfg.Games = registry.List()
	}
	if cfg.Create == nil {
		cfg.Create = registry.Create
	}
	return &Launcher{
		dev:     dev,
		games:   cfg.Games,
		create:  cfg.Create,
		runtime: cfg.Runtime,
		logger:  logger,
		sampler: core.NewSampler(dev.Buttons),
	}
}

// Selected returns the highlighted menu index.
func (l *Launcher) Selected() int {
	return l.selected
}

// Run shows the menu until ctx is cancelled and returns ctx.Err().
func (l *Launcher) Run(ctx context.Context) error {
	l.sampler.Prime()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		in := l.sampler.Sample(l.dev.Clock.NowMs())
		id, launch := l.handle(in)
		l.drawMenu()

		if launch {
			l.launch(ctx, id)
			continue
		}
		l.dev.Clock.Sleep(IdleInterval)
	}
}

// handle moves the selection and reports which game to start, if any.
func (l *Launcher) handle(in core.InputFrame) (string, bool) {
	n := len(l.games)
	if n == 0 {
		return "", false
	}

	switch {
	case in.JustPressed(core.ButtonLeft):
		l.selected = (l.selected - 1 + n) % n
	case in.JustPressed(core.ButtonRight):
		l.selected = (l.selected + 1) % n
	case in.JustPressed(core.ButtonConfirm):
		return l.games[l.selected].ID, true
	}
	return "", false
}

// launch plays one game and returns to the menu.
func (l *Launcher) launch(ctx context.Context, id string) {
	l.logger.Info("launching game", "game", id)
	l.drawStarting()
	l.dev.Clock.Sleep(StartingDelay)

	err := l.play(ctx, id)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		l.logger.Error("game failed", "game", id, "error", err)
		l.showError(ctx, l.titleOf(id))
	} else {
		l.logger.Info("game exited", "game", id)
	}

	l.dev.Clock.Sleep(ReturnDelay)
	l.sampler.Prime()
}

// play runs the game loop, turning a panic into an error.
func (l *Launcher) play(ctx context.Context, id string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game %s panicked: %v", id, r)
		}
	}()

	game, err := l.create(id)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	loop := engine.NewLoop(game, l.dev, l.logger)
	loop.Start(l.runtime)
	return loop.Run(ctx)
}

// showError draws the error screen and waits for Confirm.
func (l *Launcher) showError(ctx context.Context, title string) {
	d := l.dev.Display
	d.SetPen(core.Black)
	d.Clear()
	d.SetPen(core.Red)
	d.Text("Error in game:", marginX, 30, itemScale)
	d.Text(title, marginX, 60, itemScale)
	d.SetPen(core.White)
	d.Text("Press A", marginX, 90, itemScale)
	d.Update()

	l.sampler.Prime()
	for ctx.Err() == nil {
		if l.sampler.Sample(l.dev.Clock.NowMs()).JustPressed(core.ButtonConfirm) {
			return
		}
		l.dev.Clock.Sleep(IdleInterval)
	}
}

func (l *Launcher) titleOf(id string) string {
	for _, g := range l.games {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

func (l *Launcher) drawMenu() {
	d := l.dev.Display
	w, h := d.Bounds()

	d.SetPen(core.Black)
	d.Clear()

	d.SetPen(core.Cyan)
	d.Text("Choose game", core.CenterTextX(d, "Choose game", titleScale), titleY, titleScale)

	if len(l.games) == 0 {
		d.SetPen(core.White)
		d.Text("No games", marginX, itemTop, itemScale)
	}

	for i, g := range l.games {
		y := itemTop + i*(itemHeight+itemPadding)
		if i == l.selected {
			d.SetPen(core.Yellow)
			d.Rectangle(5, y-4, w-10, itemHeight+itemPadding)
			d.SetPen(core.Black)
			d.Text("> "+g.Title, 15, y, itemScale)
			continue
		}
		d.SetPen(core.White)
		d.Text("  "+g.Title, 15, y, itemScale)
	}

	help := "B=Up, Y=Down, A=Start"
	d.SetPen(core.Green)
	d.Text(help, core.CenterTextX(d, help, 1), h-21, 1)

	d.Update()
}

func (l *Launcher) drawStarting() {
	d := l.dev.Display
	_, h := d.Bounds()

	d.SetPen(core.Black)
	d.Clear()
	d.SetPen(core.White)
	d.Text("Starting...", marginX, h/2-8, itemScale)
	d.Update()
}
