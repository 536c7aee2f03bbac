package core

import "testing"

type fakeButtons map[Button]bool

func (f fakeButtons) Pressed(b Button) bool { return f[b] }

func TestSamplerEdges(t *testing.T) {
	btn := fakeButtons{}
	s := NewSampler(btn)

	f := s.Sample(0)
	if f.Held(ButtonConfirm) || f.JustPressed(ButtonConfirm) {
		t.Error("nothing pressed yet")
	}

	btn[ButtonConfirm] = true
	f = s.Sample(10)
	if !f.Held(ButtonConfirm) || !f.JustPressed(ButtonConfirm) {
		t.Error("first sample after press should be held and just pressed")
	}
	if f.Now != 10 {
		t.Errorf("Now = %d, expected 10", f.Now)
	}

	f = s.Sample(20)
	if !f.Held(ButtonConfirm) || f.JustPressed(ButtonConfirm) {
		t.Error("second sample while held should not report an edge")
	}

	btn[ButtonConfirm] = false
	f = s.Sample(30)
	if f.Held(ButtonConfirm) {
		t.Error("released button should not be held")
	}

	btn[ButtonConfirm] = true
	f = s.Sample(40)
	if !f.JustPressed(ButtonConfirm) {
		t.Error("re-press should report an edge")
	}
}

func TestSamplerPrime(t *testing.T) {
	btn := fakeButtons{ButtonConfirm: true}
	s := NewSampler(btn)
	s.Prime()

	f := s.Sample(0)
	if f.JustPressed(ButtonConfirm) {
		t.Error("a press held across Prime should not report an edge")
	}
	if !f.Held(ButtonConfirm) {
		t.Error("button should still be held")
	}
}

func TestInputFrameSetHold(t *testing.T) {
	f := NewInputFrame(5)
	f.Set(ButtonLeft)
	f.Hold(ButtonRight)
	f.Set(Button(99))

	if !f.Held(ButtonLeft) || !f.JustPressed(ButtonLeft) {
		t.Error("Set should mark held and just pressed")
	}
	if !f.Held(ButtonRight) || f.JustPressed(ButtonRight) {
		t.Error("Hold should mark held only")
	}
	if f.Held(Button(99)) {
		t.Error("unknown button should never be held")
	}
}

func TestButtonString(t *testing.T) {
	if ButtonExit.String() != "Exit" {
		t.Errorf("ButtonExit.String() = %q", ButtonExit.String())
	}
	if Button(42).String() != "Unknown" {
		t.Errorf("Button(42).String() = %q", Button(42).String())
	}
}

func TestParsePhase(t *testing.T) {
	for _, p := range []Phase{PhaseTitle, PhasePlaying, PhaseGameOver, PhaseWin} {
		got, err := ParsePhase(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePhase(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePhase("paused"); err == nil {
		t.Error("ParsePhase(paused) should fail")
	}
}
