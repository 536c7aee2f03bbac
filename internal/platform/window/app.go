package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/engine"
)

// debugLineHeight is the line height of ebitenutil's debug font. Its
// glyphs are as wide as core.GlyphWidth.
const debugLineHeight = 16

// maxTextImages bounds the text image cache.
const maxTextImages = 64

// Options configures the window backend.
type Options struct {
	Width  int
	Height int
	Scale  int
	Title  string
}

// app implements ebiten.Game.
type app struct {
	opts    Options
	display *WindowDisplay
	buttons *Buttons
	done    <-chan struct{}

	frame *ebiten.Image
	texts map[string]*ebiten.Image
}

// Update implements ebiten.Game.
func (a *app) Update() error {
	a.buttons.Poll(ebiten.IsKeyPressed)

	select {
	case <-a.done:
		return ebiten.Termination
	default:
		return nil
	}
}

// Draw implements ebiten.Game.
func (a *app) Draw(screen *ebiten.Image) {
	f, ok := a.display.Latest()
	if !ok {
		return
	}

	if a.frame == nil {
		a.frame = ebiten.NewImage(f.Width, f.Height)
	}
	a.frame.WritePixels(f.RGBA())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(a.opts.Scale), float64(a.opts.Scale))
	screen.DrawImage(a.frame, op)

	for _, t := range f.Texts {
		a.drawText(screen, t)
	}
}

// drawText renders a run with the debug font, scaled to the run's width and
// tinted with its pen.
func (a *app) drawText(screen *ebiten.Image, t core.TextRun) {
	img, ok := a.texts[t.Text]
	if !ok {
		if len(a.texts) >= maxTextImages {
			for k, old := range a.texts {
				old.Deallocate()
				delete(a.texts, k)
			}
		}
		w := core.Max(t.Width()/t.Scale, 1)
		img = ebiten.NewImage(w, debugLineHeight)
		ebitenutil.DebugPrintAt(img, t.Text, 0, 0)
		a.texts[t.Text] = img
	}

	s := float64(t.Scale * a.opts.Scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(t.X*a.opts.Scale), float64(t.Y*a.opts.Scale))
	op.ColorScale.ScaleWithColor(t.Pen)
	screen.DrawImage(img, op)
}

// Layout implements ebiten.Game.
func (a *app) Layout(_, _ int) (int, int) {
	return a.opts.Width * a.opts.Scale, a.opts.Height * a.opts.Scale
}

// Run opens the window and runs host against it. Closing the window
// cancels the host; the host returning closes the window.
func Run(ctx context.Context, opts Options, host engine.Host) error {
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	display := NewWindowDisplay(opts.Width, opts.Height)
	buttons := NewButtons(DefaultKeys())
	done := make(chan struct{})

	var hostErr error
	go func() {
		defer close(done)
		hostErr = host(ctx, engine.Devices{
			Display: display,
			Buttons: buttons,
			Clock:   core.NewSystemClock(),
		})
	}()

	ebiten.SetWindowSize(opts.Width*opts.Scale, opts.Height*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)

	err := ebiten.RunGame(&app{
		opts:    opts,
		display: display,
		buttons: buttons,
		done:    done,
		texts:   make(map[string]*ebiten.Image),
	})
	cancel()
	<-done

	if err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	if hostErr != nil && !errors.Is(hostErr, context.Canceled) {
		return hostErr
	}
	return nil
}
