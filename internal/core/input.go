package core

// Button is a fixed input role. The board has four buttons and the games
// address them by role rather than by key.
type Button int

const (
	ButtonConfirm Button = iota // A: start, select, acknowledge
	ButtonLeft                  // B: move left, menu up
	ButtonRight                 // Y: move right, menu down
	ButtonExit                  // X: double-click to leave a game
	numButtons
)

// AllButtons lists every role in a stable order.
var AllButtons = []Button{ButtonConfirm, ButtonLeft, ButtonRight, ButtonExit}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonConfirm:
		return "Confirm"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Buttons reports the instantaneous level of each button.
// A pressed button reads true.
type Buttons interface {
	Pressed(b Button) bool
}

// InputFrame is the button state sampled once at the start of a frame.
type InputFrame struct {
	// Now is the clock reading taken with the sample.
	Now Ticks

	held [numButtons]bool
	edge [numButtons]bool
}

// NewInputFrame creates a frame at time now with nothing pressed.
func NewInputFrame(now Ticks) InputFrame {
	return InputFrame{Now: now}
}

// Held reports whether b is down this frame.
func (f InputFrame) Held(b Button) bool {
	if b < 0 || b >= numButtons {
		return false
	}
	return f.held[b]
}

// JustPressed reports whether b went down since the previous frame.
func (f InputFrame) JustPressed(b Button) bool {
	if b < 0 || b >= numButtons {
		return false
	}
	return f.edge[b]
}

// Hold marks b as down without an edge, as if it had been held since the
// previous frame.
func (f *InputFrame) Hold(b Button) {
	if b < 0 || b >= numButtons {
		return
	}
	f.held[b] = true
}

// Set marks b as pressed on this frame.
func (f *InputFrame) Set(b Button) {
	if b < 0 || b >= numButtons {
		return
	}
	f.held[b] = true
	f.edge[b] = true
}

// Sampler turns level-triggered Buttons into InputFrames with press edges.
type Sampler struct {
	buttons Buttons
	prev    [numButtons]bool
}

// NewSampler creates a sampler over buttons. Nothing counts as previously
// held, so a button already down on the first sample reports an edge.
func NewSampler(buttons Buttons) *Sampler {
	return &Sampler{buttons: buttons}
}

// Sample reads every button once and returns the frame for time now.
func (s *Sampler) Sample(now Ticks) InputFrame {
	f := NewInputFrame(now)
	for _, b := range AllButtons {
		down := s.buttons.Pressed(b)
		f.held[b] = down
		f.edge[b] = down && !s.prev[b]
		s.prev[b] = down
	}
	return f
}

// Prime records the current button levels without producing edges. Call it
// before handing input to a new screen so a press that is still held from
// the previous screen does not count again.
func (s *Sampler) Prime() {
	for _, b := range AllButtons {
		s.prev[b] = s.buttons.Pressed(b)
	}
}
