package starcatcher

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/core"
)

var testRuntime = core.RuntimeConfig{ScreenW: 320, ScreenH: 240, Seed: 99}

// input builds a frame at now with the given buttons freshly pressed.
func input(now core.Ticks, buttons ...core.Button) core.InputFrame {
	in := core.NewInputFrame(now)
	for _, b := range buttons {
		in.Set(b)
	}
	return in
}

// newPlayingGame returns a game started at 0 with its start hold over.
func newPlayingGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultStarCatcherConfig())
	g.Reset(testRuntime)
	g.Step(input(0, core.ButtonConfirm))
	if g.phase != core.PhasePlaying {
		t.Fatalf("phase after Confirm = %v, expected playing", g.phase)
	}
	g.Step(input(200))
	return g
}

func TestGameReset(t *testing.T) {
	g := NewWithConfig(config.DefaultStarCatcherConfig())
	g.Reset(testRuntime)

	if g.phase != core.PhaseTitle {
		t.Errorf("phase = %v, expected title", g.phase)
	}
	if g.lives != 3 || g.level != 1 || g.score != 0 {
		t.Errorf("lives, level, score = %d, %d, %d", g.lives, g.level, g.score)
	}
	if g.playerX != 150 || g.playerY != 220 {
		t.Errorf("player at (%d, %d), expected (150, 220)", g.playerX, g.playerY)
	}
}

func TestStartHold(t *testing.T) {
	g := NewWithConfig(config.DefaultStarCatcherConfig())
	g.Reset(testRuntime)
	g.Step(input(0, core.ButtonConfirm))

	in := core.NewInputFrame(100)
	in.Hold(core.ButtonLeft)
	g.Step(in)
	if g.playerX != 150 {
		t.Errorf("player moved during the start hold: X = %d", g.playerX)
	}

	in = core.NewInputFrame(200)
	in.Hold(core.ButtonLeft)
	g.Step(in)
	if g.playerX != 143 {
		t.Errorf("X = %d after the hold, expected 143", g.playerX)
	}
}

func TestMissBudget(t *testing.T) {
	g := newPlayingGame(t)

	now := core.Ticks(300)
	for i := 1; i <= 14; i++ {
		g.stars = append(g.stars[:0], Star{X: 20, Y: 239})
		g.Step(input(now))
		now += 20
		if g.misses != i {
			t.Fatalf("misses = %d after %d misses", g.misses, i)
		}
	}
	if g.lives != 3 {
		t.Fatalf("lives = %d after 14 misses, expected 3", g.lives)
	}

	g.stars = append(g.stars[:0], Star{X: 20, Y: 239})
	g.Step(input(now))
	if g.lives != 2 || g.misses != 0 {
		t.Errorf("after 15th miss: lives %d misses %d, expected 2 and 0", g.lives, g.misses)
	}
	if g.phase != core.PhasePlaying {
		t.Errorf("phase = %v, expected playing", g.phase)
	}
}

func TestGameOverWaitsForConfirm(t *testing.T) {
	g := newPlayingGame(t)
	g.lives = 1
	g.misses = 14
	g.stars = append(g.stars[:0], Star{X: 20, Y: 239})

	res := g.Step(input(1000))
	if res.State.Phase != core.PhaseGameOver {
		t.Fatalf("phase = %v, expected game_over", res.State.Phase)
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, expected 0", g.lives)
	}

	// Confirm during the hold is ignored
	g.Step(input(1100, core.ButtonConfirm))
	if g.phase != core.PhaseGameOver {
		t.Error("Confirm inside the hold should be ignored")
	}

	// No auto-return
	g.Step(input(60000))
	if g.phase != core.PhaseGameOver {
		t.Error("game over should wait for Confirm")
	}

	g.Step(input(60020, core.ButtonConfirm))
	if g.phase != core.PhaseTitle {
		t.Errorf("phase = %v after Confirm, expected title", g.phase)
	}
}

func TestCatchAndLevelUp(t *testing.T) {
	g := newPlayingGame(t)

	now := core.Ticks(300)
	for i := 0; i < 5; i++ {
		g.stars = append(g.stars[:0], Star{X: 160, Y: 226})
		g.Step(input(now))
		now += 20
	}

	if g.level != 2 || g.collected != 0 {
		t.Errorf("level %d collected %d, expected 2 and 0", g.level, g.collected)
	}
	if g.score != 50 {
		t.Errorf("score = %d, expected 50", g.score)
	}

	g.stars = append(g.stars[:0], Star{X: 160, Y: 226})
	g.Step(input(now))
	if g.score != 70 {
		t.Errorf("score = %d, expected 70 (level 2 catch)", g.score)
	}
}

func TestOnlyFirstCatchScores(t *testing.T) {
	g := newPlayingGame(t)
	g.stars = append(g.stars[:0], Star{X: 155, Y: 226}, Star{X: 165, Y: 226})

	g.Step(input(300))
	if g.score != 10 || g.collected != 1 {
		t.Errorf("score %d collected %d, expected 10 and 1", g.score, g.collected)
	}
	if len(g.stars) != 0 {
		t.Errorf("stars = %v, both overlapping stars should be removed", g.stars)
	}
}

func TestSpawnTimer(t *testing.T) {
	g := newPlayingGame(t)

	g.Step(input(2175))
	if len(g.stars) != 0 {
		t.Fatalf("star spawned at exactly the interval: %v", g.stars)
	}

	g.Step(input(2176))
	if len(g.stars) != 1 || g.stars[0].Y != -8 {
		t.Fatalf("stars = %v, expected one new star at Y=-8", g.stars)
	}
	if g.lastSpawn != 2176 {
		t.Errorf("lastSpawn = %d, expected 2176", g.lastSpawn)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	g := newPlayingGame(t)
	rng := rand.New(rand.NewSource(3))

	now := core.Ticks(200)
	for i := 0; i < 3000; i++ {
		now += 20
		in := core.NewInputFrame(now)
		switch rng.Intn(3) {
		case 0:
			in.Hold(core.ButtonLeft)
		case 1:
			in.Hold(core.ButtonRight)
		}
		g.Step(in)

		if g.playerX < 0 || g.playerX > 320-20 {
			t.Fatalf("frame %d: player X = %d out of bounds", i, g.playerX)
		}
	}
}

func TestShipWiderThanScreen(t *testing.T) {
	g := NewWithConfig(config.DefaultStarCatcherConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 12, ScreenH: 240, Seed: 1})
	g.Step(input(0, core.ButtonConfirm))
	g.Step(input(200))

	if box := g.PlayerBox(); box.X != 0 || box.W != 12 {
		t.Fatalf("player box = %+v, expected X=0 W=12", box)
	}

	now := core.Ticks(200)
	for _, b := range []core.Button{core.ButtonRight, core.ButtonLeft} {
		for i := 0; i < 5; i++ {
			now += 20
			in := core.NewInputFrame(now)
			in.Hold(b)
			g.Step(in)

			if g.playerX < 0 || g.playerX > 12-g.playerW {
				t.Fatalf("%v: player X = %d out of [0, %d]", b, g.playerX, 12-g.playerW)
			}
		}
	}
}

func TestExitGesture(t *testing.T) {
	g := NewWithConfig(config.DefaultStarCatcherConfig())
	g.Reset(testRuntime)

	g.Step(input(0, core.ButtonExit))
	g.Step(input(50))
	g.Step(input(100, core.ButtonExit))
	if g.WantsExit() {
		t.Error("double-click in title should not exit")
	}

	g = newPlayingGame(t)
	g.lives = 1
	g.misses = 14
	g.stars = append(g.stars[:0], Star{X: 20, Y: 239})
	g.Step(input(1000))

	g.Step(input(1100, core.ButtonExit))
	g.Step(input(1150))
	g.Step(input(1200, core.ButtonExit))
	if !g.WantsExit() {
		t.Error("double-click on the game over screen should exit")
	}
}

func TestFrameInterval(t *testing.T) {
	g := NewWithConfig(config.DefaultStarCatcherConfig())
	g.Reset(testRuntime)
	if res := g.Step(input(0)); res.FrameInterval != 20*time.Millisecond {
		t.Errorf("interval = %v, expected 20ms", res.FrameInterval)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := NewWithConfig(config.DefaultStarCatcherConfig())
		g.Reset(testRuntime)
		g.Step(input(0, core.ButtonConfirm))

		now := core.Ticks(0)
		for i := 0; i < 2000; i++ {
			now += 20
			in := core.NewInputFrame(now)
			if i%11 < 5 {
				in.Hold(core.ButtonRight)
			} else if i%11 < 10 {
				in.Hold(core.ButtonLeft)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if len(snap1.StarData) == 0 && snap1.Misses == 0 && snap1.Score == 0 {
		t.Error("no stars were ever spawned")
	}
}

func TestGameRender(t *testing.T) {
	g := newPlayingGame(t)
	g.stars = append(g.stars[:0], Star{X: 100, Y: 100})

	c := core.NewCanvas(320, 240)
	g.Render(c)

	texts := c.Texts()
	if len(texts) != 3 {
		t.Fatalf("HUD runs = %d, expected 3", len(texts))
	}
	if texts[0].Text != "Score: 0" || texts[0].X+texts[0].Width() != 315 {
		t.Errorf("score run = %+v, expected right-aligned at 315", texts[0])
	}
	if texts[1].Text != "Level: 1" || texts[1].Y != 23 {
		t.Errorf("level run = %+v", texts[1])
	}
	if texts[2].Text != "Miss: 0/15" || texts[2].Y != 20 {
		t.Errorf("miss run = %+v", texts[2])
	}

	for i := 0; i < 3; i++ {
		if c.At(5+i*9, 5) != LifeColor {
			t.Errorf("life bar %d not drawn", i)
		}
	}
	if c.At(5+3*9, 5) == LifeColor {
		t.Error("only three life bars expected")
	}
	if c.At(100, 100) != StarColor {
		t.Error("star not drawn")
	}
	if c.At(160, 233) != ShipColor {
		t.Error("ship not drawn")
	}
	if c.At(160, 237) != FlareColor {
		t.Error("engine flare not drawn")
	}
}
