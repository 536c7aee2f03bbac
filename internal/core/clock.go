package core

import (
	"sync"
	"time"
)

// Ticks is a millisecond timestamp. It is 32 bits wide and wraps after about
// 49.7 days, like the board's ticks_ms counter; compare with TicksDiff.
type Ticks uint32

// TicksDiff returns a-b in milliseconds, correct across one wraparound as
// long as the true distance fits in an int32.
func TicksDiff(a, b Ticks) int {
	return int(int32(a - b))
}

// Clock is the time source a game loop runs against.
type Clock interface {
	NowMs() Ticks
	Sleep(d time.Duration)
}

// SystemClock reads monotonic wall time relative to its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose zero is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs returns milliseconds since the clock was created.
func (c *SystemClock) NowMs() Ticks {
	return Ticks(time.Since(c.start).Milliseconds())
}

// Sleep blocks for d.
func (c *SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// ManualClock is a Clock that only moves when told to. Sleep advances it
// instead of blocking, so loops driven by it run as fast as the CPU allows.
type ManualClock struct {
	mu  sync.Mutex
	now Ticks
}

// NewManualClock creates a manual clock starting at t.
func NewManualClock(t Ticks) *ManualClock {
	return &ManualClock{now: t}
}

// NowMs returns the current manual time.
func (c *ManualClock) NowMs() Ticks {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep advances the clock by d.
func (c *ManualClock) Sleep(d time.Duration) {
	c.Advance(d)
}

// Advance moves the clock forward by d, rounded down to whole milliseconds.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now += Ticks(d.Milliseconds())
	c.mu.Unlock()
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t Ticks) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
