// Package window is the desktop backend: an ebiten window showing the
// logical display scaled up, with keyboard keys as the device buttons.
package window

import (
	"sync"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// WindowDisplay is a core.Display that draws into a Canvas and publishes
// a copy of each presented frame for the ebiten draw callback.
type WindowDisplay struct {
	*core.Canvas

	mu    sync.Mutex
	frame core.Frame
	ok    bool
}

// NewWindowDisplay creates a w×h pixel display.
func NewWindowDisplay(w, h int) *WindowDisplay {
	return &WindowDisplay{Canvas: core.NewCanvas(w, h)}
}

// Update presents the canvas.
func (d *WindowDisplay) Update() {
	d.Canvas.Update()
	f := d.Frame()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = f
	d.ok = true
}

// Latest returns the most recently presented frame, if any.
func (d *WindowDisplay) Latest() (core.Frame, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame, d.ok
}
