package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/engine"
)

// footerLines is the space kept below the frame for the help line.
const footerLines = 2

// hostDoneMsg reports that the host goroutine returned.
type hostDoneMsg struct {
	err error
}

// Options configures the terminal backend.
type Options struct {
	// Logical display size in pixels.
	Width  int
	Height int

	// Terminal size in cells, usually from term.GetSize.
	TermWidth  int
	TermHeight int

	// Hold is the key latch duration; zero uses DefaultHold.
	Hold time.Duration
}

// Model is the Bubble Tea model that shows frames produced by the host.
type Model struct {
	display *TermDisplay
	latch   *KeyLatch
	keys    KeyMap
	help    help.Model
	cancel  context.CancelFunc

	// shotDir is where ctrl+s writes screenshots.
	shotDir string
	status  string

	frame    FrameMsg
	width    int
	height   int
	hostErr  error
	quitting bool
}

// NewModel creates the viewer model. cancel stops the host.
func NewModel(display *TermDisplay, latch *KeyLatch, cancel context.CancelFunc) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		display: display,
		latch:   latch,
		keys:    DefaultKeyMap(),
		help:    h,
		cancel:  cancel,
		shotDir: filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w, h := m.display.Bounds()
		m.display.Resize(GridSize(w, h, msg.Width, msg.Height, footerLines))
		return m, nil

	case FrameMsg:
		m.frame = msg
		return m, nil

	case tea.BlurMsg:
		// Key releases are never reported, so nothing may stay held while
		// the terminal is not focused.
		m.latch.Release()
		return m, nil

	case hostDoneMsg:
		m.hostErr = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.latch.Press(b)
	}
	return m, nil
}

// saveScreenshot writes the last frame, without colors, to a timestamped
// file in shotDir.
func (m Model) saveScreenshot() (string, error) {
	if m.frame.Text == "" {
		return "", errors.New("no frame yet")
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("arcade_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.frame.Text+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the latest frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + m.status
	}
	if m.frame.View == "" {
		return "Loading...\n\n" + footer
	}
	return m.frame.View + "\n\n" + footer
}

// HostErr returns the error the host finished with, if any.
func (m Model) HostErr() error {
	return m.hostErr
}

// Run shows the terminal UI and runs host against it. It returns when the
// host finishes or the user quits; quitting is not an error.
func Run(ctx context.Context, opts Options, host engine.Host) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cols, rows := GridSize(opts.Width, opts.Height, opts.TermWidth, opts.TermHeight, footerLines)
	clock := core.NewSystemClock()
	latch := NewKeyLatch(clock, opts.Hold)
	display := NewTermDisplay(opts.Width, opts.Height, cols, rows, nil)

	p := tea.NewProgram(NewModel(display, latch, cancel), tea.WithAltScreen(), tea.WithReportFocus())
	display.setSender(p.Send)

	done := make(chan error, 1)
	go func() {
		err := host(ctx, engine.Devices{Display: display, Buttons: latch, Clock: clock})
		done <- err
		p.Send(hostDoneMsg{err: err})
	}()

	_, err := p.Run()
	cancel()
	hostErr := <-done

	if err != nil {
		return fmt.Errorf("run terminal program: %w", err)
	}
	if hostErr != nil && !errors.Is(hostErr, context.Canceled) {
		return hostErr
	}
	return nil
}
