// Package gesture recognizes button gestures that span several frames.
package gesture

import (
	"github.com/vovakirdan/pico-arcade/internal/core"
)

// DefaultInterval is the window, in milliseconds, in which the second press
// of a double-click must start.
const DefaultInterval = 300

// State is the recognizer state.
type State int

const (
	StateIdle State = iota
	StateFirstPress
	StateWaitingForSecond
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateFirstPress:
		return "FirstPress"
	case StateWaitingForSecond:
		return "WaitingForSecond"
	default:
		return "Unknown"
	}
}

// DoubleClick detects two presses of one button whose starts are less than
// Interval milliseconds apart. It is fed the button level once per frame.
type DoubleClick struct {
	Interval int

	state State
	t0    core.Ticks
}

// NewDoubleClick creates an idle detector. A non-positive interval selects
// DefaultInterval.
func NewDoubleClick(interval int) *DoubleClick {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &DoubleClick{Interval: interval}
}

// State returns the current recognizer state.
func (d *DoubleClick) State() State {
	return d.state
}

// Reset returns the detector to Idle.
func (d *DoubleClick) Reset() {
	d.state = StateIdle
	d.t0 = 0
}

// Update advances the recognizer with the button level sampled at now and
// reports whether a double-click completed on this frame.
func (d *DoubleClick) Update(pressed bool, now core.Ticks) bool {
	elapsed := core.TicksDiff(now, d.t0)

	switch d.state {
	case StateIdle:
		if pressed {
			d.state = StateFirstPress
			d.t0 = now
		}

	case StateFirstPress:
		if !pressed {
			if elapsed < d.Interval {
				d.state = StateWaitingForSecond
			} else {
				d.state = StateIdle
			}
		} else if elapsed >= d.Interval {
			// Held too long to be a click.
			d.state = StateIdle
		}

	case StateWaitingForSecond:
		if pressed {
			if elapsed < d.Interval {
				d.state = StateIdle
				return true
			}
			d.state = StateFirstPress
			d.t0 = now
		} else if elapsed >= d.Interval {
			d.state = StateIdle
		}
	}

	return false
}

// ExitGate runs a DoubleClick only in the phases where leaving the game is
// allowed. In the title phase the detector is always reset.
type ExitGate struct {
	detector *DoubleClick
	armed    map[core.Phase]bool
	fired    bool
}

// NewExitGate creates a gate armed in the given phases. PhaseTitle is never
// armed, even if listed.
func NewExitGate(interval int, phases []core.Phase) *ExitGate {
	armed := make(map[core.Phase]bool, len(phases))
	for _, p := range phases {
		if p != core.PhaseTitle {
			armed[p] = true
		}
	}
	return &ExitGate{
		detector: NewDoubleClick(interval),
		armed:    armed,
	}
}

// Armed reports whether the gate listens in phase p.
func (g *ExitGate) Armed(p core.Phase) bool {
	return g.armed[p]
}

// Observe feeds one frame of the exit button and reports whether the
// double-click completed. Once it has, Fired stays true until Reset.
func (g *ExitGate) Observe(phase core.Phase, pressed bool, now core.Ticks) bool {
	if phase == core.PhaseTitle {
		g.detector.Reset()
		return false
	}
	if !g.armed[phase] {
		return false
	}
	if g.detector.Update(pressed, now) {
		g.fired = true
		return true
	}
	return false
}

// Fired reports whether the gate has seen a double-click since the last Reset.
func (g *ExitGate) Fired() bool {
	return g.fired
}

// State returns the underlying detector state.
func (g *ExitGate) State() State {
	return g.detector.State()
}

// Reset clears the detector and the fired flag.
func (g *ExitGate) Reset() {
	g.detector.Reset()
	g.fired = false
}
