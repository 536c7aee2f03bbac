package breakout

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/gesture"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// Colors
var (
	BackgroundColor = core.Black
	PaddleColor     = core.Silver
	BallColor       = core.White
	TextColor       = core.White
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the config New uses: the configured file (or the
// built-in default on error) with the difficulty preset applied. The error,
// if any, is returned for the caller to report.
func LoadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(configPath)
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game implements the Breakout game logic.
type Game struct {
	cfg  config.BreakoutConfig
	exit *gesture.ExitGate

	// Game objects
	paddle Paddle
	ball   Ball
	bricks []Brick

	// Game state
	phase core.Phase
	score int
	lives int
	frame uint64 // playing frames simulated

	// Timed holds replace blocking pauses. While now is before holdUntil the
	// playing phase is frozen; serving launches the ball when it ends.
	holding   bool
	serving   bool
	holdUntil core.Ticks

	resultUntil core.Ticks // when the game over / win screen returns to title
	lastOutcome Outcome

	runtime core.RuntimeConfig
	rng     *rand.Rand
}

// New creates a Breakout game using the loaded config. Load failures fall
// back to the defaults.
func New() *Game {
	cfg, _ := LoadConfig()
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Breakout game with an explicit config.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	phases, err := cfg.Exit.ArmedPhases()
	if err != nil {
		phases = []core.Phase{core.PhasePlaying, core.PhaseGameOver, core.PhaseWin}
	}
	g := &Game{
		cfg:  cfg,
		exit: gesture.NewExitGate(cfg.Exit.IntervalMs, phases),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset puts the game on its title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.exit.Reset()
	g.newGame()
	g.phase = core.PhaseTitle
}

// newGame resets counters and entities. The ball waits at the center.
func (g *Game) newGame() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.frame = 0
	g.bricks = BuildBricks(w, g.cfg.Bricks)

	// A paddle wider than the screen could never stay inside the walls.
	pw := core.Max(core.Min(g.cfg.Paddle.Width, w), 0)
	g.paddle = Paddle{
		X:     (w - pw) / 2,
		Y:     h - g.cfg.Paddle.Height - g.cfg.Paddle.BottomMargin,
		W:     pw,
		H:     g.cfg.Paddle.Height,
		Speed: g.cfg.Paddle.Speed,
	}
	g.ball = Ball{X: w / 2, Y: h / 2, R: g.cfg.Ball.Radius}
	g.holding = false
	g.serving = false
	g.lastOutcome = BallInPlay
}

// serve gives the ball its launch velocity. The horizontal direction is random.
func (g *Game) serve() {
	g.ball.VX = g.cfg.Ball.ServeSpeedX
	if g.rng.Intn(2) == 0 {
		g.ball.VX = -g.ball.VX
	}
	g.ball.VY = -g.cfg.Ball.ServeSpeedY
}

// hold freezes play for ms milliseconds from now.
func (g *Game) hold(now core.Ticks, ms int) {
	g.holding = true
	g.holdUntil = now + core.Ticks(ms) //#nosec G115 -- ms is validated non-negative
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.exit.Observe(g.phase, in.Held(core.ButtonExit), in.Now)

	switch g.phase {
	case core.PhaseTitle:
		if in.JustPressed(core.ButtonConfirm) {
			g.newGame()
			g.phase = core.PhasePlaying
			g.serving = true
			g.hold(in.Now, g.cfg.Gameplay.ServeDelayMs)
		}

	case core.PhasePlaying:
		g.stepPlaying(in)

	case core.PhaseGameOver, core.PhaseWin:
		if core.TicksDiff(in.Now, g.resultUntil) >= 0 {
			g.phase = core.PhaseTitle
		}
	}

	return core.StepResult{State: g.State(), FrameInterval: g.frameInterval()}
}

// frameInterval is the pacing for the current phase.
func (g *Game) frameInterval() time.Duration {
	if g.phase == core.PhasePlaying {
		return time.Duration(g.cfg.Gameplay.FrameMs) * time.Millisecond
	}
	return time.Duration(g.cfg.Gameplay.IdleFrameMs) * time.Millisecond
}

// stepPlaying runs input, physics and the end checks for one frame.
func (g *Game) stepPlaying(in core.InputFrame) {
	if g.holding {
		if core.TicksDiff(in.Now, g.holdUntil) < 0 {
			return
		}
		g.holding = false
		if g.serving {
			g.serving = false
			g.serve()
		}
	}

	g.frame++

	if in.Held(core.ButtonLeft) {
		g.paddle.MoveLeft()
	}
	if in.Held(core.ButtonRight) {
		g.paddle.MoveRight(g.runtime.ScreenW)
	}

	g.ball.Move(g.runtime.ScreenW)

	g.lastOutcome = g.checkFloor(in.Now)
	if g.lastOutcome == BallOut {
		g.endGame(core.PhaseGameOver, in.Now)
		return
	}

	CheckPaddleCollision(&g.ball, &g.paddle, g.cfg.Ball.SpinFactor)

	if idx := CheckBrickCollision(&g.ball, g.bricks); idx >= 0 {
		g.score += g.cfg.Gameplay.BrickPoints
	}

	if CountActive(g.bricks) == 0 {
		g.endGame(core.PhaseWin, in.Now)
	}
}

// checkFloor takes a life when the ball falls past the paddle and either
// respawns it at the center or reports the last ball lost.
func (g *Game) checkFloor(now core.Ticks) Outcome {
	if !g.ball.BelowFloor(g.runtime.ScreenH) {
		return BallInPlay
	}

	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		return BallOut
	}

	g.ball.X = g.runtime.ScreenW / 2
	g.ball.Y = g.runtime.ScreenH / 2
	g.serve()
	g.hold(now, g.cfg.Gameplay.RespawnDelayMs)
	return BallLost
}

// endGame shows the result screen until the result delay runs out.
func (g *Game) endGame(phase core.Phase, now core.Ticks) {
	g.phase = phase
	g.holding = false
	g.serving = false
	g.resultUntil = now + core.Ticks(g.cfg.Gameplay.ResultDelayMs) //#nosec G115 -- validated non-negative
}

// Render draws the current phase.
func (g *Game) Render(dst core.Display) {
	dst.SetPen(BackgroundColor)
	dst.Clear()

	switch g.phase {
	case core.PhaseTitle:
		g.renderTitle(dst)
	case core.PhasePlaying:
		g.renderPlaying(dst)
	case core.PhaseGameOver:
		g.renderResult(dst, "GAME OVER")
	case core.PhaseWin:
		g.renderResult(dst, "YOU WIN!")
	}
}

func (g *Game) renderTitle(dst core.Display) {
	_, h := dst.Bounds()
	dst.SetPen(TextColor)
	dst.Text("BREAKOUT", 10, h/2-40, 3)
	dst.Text("Press A to start", 10, h/2+10, 2)
}

func (g *Game) renderPlaying(dst core.Display) {
	dst.SetPen(PaddleColor)
	dst.Rectangle(g.paddle.X, g.paddle.Y, g.paddle.W, g.paddle.H)

	dst.SetPen(BallColor)
	dst.Circle(g.ball.X, g.ball.Y, g.ball.R)

	for _, b := range g.bricks {
		if b.Active {
			dst.SetPen(b.Color)
			dst.Rectangle(b.X, b.Y, b.W, b.H)
		}
	}

	g.renderHUD(dst)
}

// renderHUD draws the score top-left and the lives top-right.
func (g *Game) renderHUD(dst core.Display) {
	w, _ := dst.Bounds()
	dst.SetPen(TextColor)
	dst.Text(fmt.Sprintf("Score: %d", g.score), 10, 5, 2)

	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.Text(lives, w-dst.MeasureText(lives, 2)-10, 5, 2)
}

func (g *Game) renderResult(dst core.Display, headline string) {
	_, h := dst.Bounds()
	dst.SetPen(TextColor)
	dst.Text(headline, core.CenterTextX(dst, headline, 3), h/2-20, 3)

	score := fmt.Sprintf("Score: %d", g.score)
	dst.Text(score, core.CenterTextX(dst, score, 2), h/2+20, 2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Lives: g.lives,
		Level: 1,
	}
}

// WantsExit reports whether the exit double-click has completed.
func (g *Game) WantsExit() bool {
	return g.exit.Fired()
}

// LastOutcome returns the floor outcome of the most recent playing frame.
func (g *Game) LastOutcome() Outcome {
	return g.lastOutcome
}

// Holding reports whether play is frozen by a serve or respawn hold.
func (g *Game) Holding() bool {
	return g.holding
}

func init() {
	registry.Register(registry.GameInfo{ID: "breakout", Title: "Breakout"}, func() registry.Game { return New() })
}
