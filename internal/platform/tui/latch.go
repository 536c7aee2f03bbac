package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// DefaultHold is how long a key press keeps its button down.
const DefaultHold = 120 * time.Millisecond

// repeatGap separates key repeat from a fresh tap. Terminal auto-repeat
// arrives faster than this; a second press of a latched key that comes
// later is a new tap and gets a release edge first.
const repeatGap = 50

// KeyLatch turns key press events into held button state. Terminals never
// report releases, so a button counts as pressed for hold after its most
// recent key event and is released afterwards. Key repeat keeps a held key
// latched. A new tap while the key is still latched reads as released for
// exactly one poll, so fast double taps still give two press edges.
//
// Press is called from the UI goroutine and Pressed from the game loop.
type KeyLatch struct {
	mu    sync.Mutex
	clock core.Clock
	hold  int
	last  map[core.Button]core.Ticks
	tap   map[core.Button]bool
}

// NewKeyLatch creates a latch. A non-positive hold uses DefaultHold.
func NewKeyLatch(clock core.Clock, hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyLatch{
		clock: clock,
		hold:  int(hold.Milliseconds()),
		last:  make(map[core.Button]core.Ticks),
		tap:   make(map[core.Button]bool),
	}
}

// Press records a key event for b.
func (l *KeyLatch) Press(b core.Button) {
	now := l.clock.NowMs()

	l.mu.Lock()
	defer l.mu.Unlock()

	if at, ok := l.last[b]; ok {
		since := core.TicksDiff(now, at)
		if since < l.hold && since >= repeatGap {
			l.tap[b] = true
		}
	}
	l.last[b] = now
}

// Pressed implements core.Buttons.
func (l *KeyLatch) Pressed(b core.Button) bool {
	now := l.clock.NowMs()

	l.mu.Lock()
	defer l.mu.Unlock()

	at, ok := l.last[b]
	if !ok {
		return false
	}
	if core.TicksDiff(now, at) >= l.hold {
		delete(l.last, b)
		delete(l.tap, b)
		return false
	}
	if l.tap[b] {
		delete(l.tap, b)
		return false
	}
	return true
}

// Release drops every latched button.
func (l *KeyLatch) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.last)
	clear(l.tap)
}
