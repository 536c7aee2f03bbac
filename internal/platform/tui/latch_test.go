package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/gesture"
)

func TestKeyLatchHold(t *testing.T) {
	clock := core.NewManualClock(1000)
	latch := NewKeyLatch(clock, 120*time.Millisecond)

	if latch.Pressed(core.ButtonExit) {
		t.Fatal("button pressed before any key event")
	}

	latch.Press(core.ButtonExit)

	tests := []struct {
		at       core.Ticks
		expected bool
	}{
		{1000, true},
		{1119, true},
		{1120, false},
		{1200, false},
	}

	for _, tt := range tests {
		clock.Set(tt.at)
		if got := latch.Pressed(core.ButtonExit); got != tt.expected {
			t.Errorf("Pressed at %d = %v, expected %v", tt.at, got, tt.expected)
		}
	}
}

func TestKeyLatchRepeatExtends(t *testing.T) {
	clock := core.NewManualClock(0)
	latch := NewKeyLatch(clock, 0)

	latch.Press(core.ButtonLeft)
	clock.Set(100)
	latch.Press(core.ButtonLeft)
	clock.Set(200)

	if !latch.Pressed(core.ButtonLeft) {
		t.Error("repeat should keep the button latched")
	}
	if latch.Pressed(core.ButtonRight) {
		t.Error("other buttons should stay released")
	}

	latch.Release()
	if latch.Pressed(core.ButtonLeft) {
		t.Error("Release should drop latched buttons")
	}
}

// A tapped key produces a release edge inside the double-click window,
// so two taps 200 ms apart are two presses.
func TestKeyLatchTapsGiveTwoEdges(t *testing.T) {
	clock := core.NewManualClock(0)
	latch := NewKeyLatch(clock, DefaultHold)
	sampler := core.NewSampler(latch)

	presses := 0
	for now := core.Ticks(0); now <= 300; now += 20 {
		clock.Set(now)
		if now == 0 || now == 200 {
			latch.Press(core.ButtonExit)
		}
		if sampler.Sample(now).JustPressed(core.ButtonExit) {
			presses++
		}
	}

	if presses != 2 {
		t.Errorf("presses = %d, expected 2", presses)
	}
}

func TestKeyLatchFastDoubleTapExits(t *testing.T) {
	tests := []struct {
		name string
		gap  core.Ticks
	}{
		{"60ms", 60},
		{"100ms", 100},
		{"110ms", 110},
		{"200ms", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := core.NewManualClock(0)
			latch := NewKeyLatch(clock, DefaultHold)
			sampler := core.NewSampler(latch)
			detector := gesture.NewDoubleClick(gesture.DefaultInterval)

			fired := false
			for now := core.Ticks(0); now <= 400; now += 10 {
				clock.Set(now)
				if now == 0 || now == tt.gap {
					latch.Press(core.ButtonExit)
				}
				in := sampler.Sample(now)
				if detector.Update(in.Held(core.ButtonExit), now) {
					fired = true
				}
			}

			if !fired {
				t.Errorf("taps %d ms apart should be a double click", tt.gap)
			}
		})
	}
}

func TestKeyLatchAutoRepeatIsOnePress(t *testing.T) {
	clock := core.NewManualClock(0)
	latch := NewKeyLatch(clock, DefaultHold)
	sampler := core.NewSampler(latch)
	detector := gesture.NewDoubleClick(gesture.DefaultInterval)

	presses := 0
	fired := false
	for now := core.Ticks(0); now <= 600; now += 10 {
		clock.Set(now)
		if now%30 == 0 {
			latch.Press(core.ButtonExit)
		}
		in := sampler.Sample(now)
		if in.JustPressed(core.ButtonExit) {
			presses++
		}
		if detector.Update(in.Held(core.ButtonExit), now) {
			fired = true
		}
	}

	if presses != 1 {
		t.Errorf("presses = %d, expected 1", presses)
	}
	if fired {
		t.Error("a held key should not count as a double click")
	}
}
