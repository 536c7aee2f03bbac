package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// FrameMsg carries one presented frame to the program.
type FrameMsg struct {
	// View is the styled frame, ready to print.
	View string

	// Text is the same frame without styling, used for screenshots.
	Text string
}

// TermDisplay is a core.Display that draws into a Canvas and sends each
// presented frame to a bubbletea program as half-block cells.
//
// The cell screen and style cache are only touched by Update, on the host
// goroutine; the program receives finished strings.
type TermDisplay struct {
	*core.Canvas

	screen *core.Screen
	styles styleCache

	mu   sync.Mutex
	cols int
	rows int
	send func(tea.Msg)
}

// NewTermDisplay creates a w×h pixel display shown on a cols×rows grid.
// send receives one FrameMsg per Update; it may be nil.
func NewTermDisplay(w, h, cols, rows int, send func(tea.Msg)) *TermDisplay {
	return &TermDisplay{
		Canvas: core.NewCanvas(w, h),
		screen: core.NewScreen(cols, rows),
		styles: make(styleCache),
		cols:   cols,
		rows:   rows,
		send:   send,
	}
}

// Resize changes the cell grid used from the next frame on.
func (d *TermDisplay) Resize(cols, rows int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cols, d.rows = cols, rows
}

// Grid returns the current cell grid size.
func (d *TermDisplay) Grid() (cols, rows int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cols, d.rows
}

// Update presents the canvas.
func (d *TermDisplay) Update() {
	d.Canvas.Update()

	d.mu.Lock()
	cols, rows, send := d.cols, d.rows, d.send
	d.mu.Unlock()

	d.screen.Resize(cols, rows)
	Rasterize(d.Frame(), d.screen)
	if send != nil {
		send(FrameMsg{
			View: RenderScreen(d.screen, d.styles),
			Text: d.screen.String(),
		})
	}
}

func (d *TermDisplay) setSender(send func(tea.Msg)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.send = send
}
