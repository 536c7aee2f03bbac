package starcatcher

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/core"
	"github.com/vovakirdan/pico-arcade/internal/gesture"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

// Colors
var (
	ShipColor  = core.White
	FlareColor = core.Orange
	StarColor  = core.Yellow
	LifeColor  = core.Red
	TitleColor = core.Cyan
	TextColor  = core.White
)

// HUD layout
const (
	hudPadding    = 5
	hudScale      = 2
	lifeBarWidth  = 3
	lifeBarHeight = 10
	lifeBarGap    = 6
	flareHeight   = 5
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

// LoadConfig loads the config New uses, with the difficulty preset applied.
// On error the defaults are returned together with the error.
func LoadConfig() (config.StarCatcherConfig, error) {
	cfg, err := config.LoadStarCatcher(configPath)
	if difficultyPreset != "" {
		config.ApplyStarCatcherPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game implements the Star Catcher game logic.
type Game struct {
	cfg  config.StarCatcherConfig
	exit *gesture.ExitGate

	playerX int
	playerY int
	playerW int // ship width, never wider than the screen
	stars   []Star
	spawner *Spawner

	phase     core.Phase
	score     int
	lives     int
	level     int
	collected int // stars caught on this level
	misses    int // stars missed since the last life was lost
	frame     uint64

	lastSpawn core.Ticks

	// Timed hold after starting a game or reaching game over. Nothing moves
	// and Confirm is not accepted until it ends.
	holding   bool
	holdUntil core.Ticks

	runtime core.RuntimeConfig
}

// New creates a Star Catcher game using the loaded config. Load failures
// fall back to the defaults.
func New() *Game {
	cfg, _ := LoadConfig()
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Star Catcher game with an explicit config.
func NewWithConfig(cfg config.StarCatcherConfig) *Game {
	phases, err := cfg.Exit.ArmedPhases()
	if err != nil {
		phases = []core.Phase{core.PhasePlaying, core.PhaseGameOver}
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
	return "star_catcher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Catcher"
}

// Reset puts the game on its title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.spawner = NewSpawner(g.cfg.Stars, runtime.ScreenW, runtime.Seed)
	g.playerY = runtime.ScreenH - g.cfg.Player.Height - g.cfg.Player.BottomMargin
	g.playerW = core.Max(core.Min(g.cfg.Player.Width, runtime.ScreenW), 0)
	g.exit.Reset()
	g.newGame(0)
	g.phase = core.PhaseTitle
}

// newGame resets counters and entities for a run starting at now.
func (g *Game) newGame(now core.Ticks) {
	g.playerX = g.runtime.ScreenW/2 - g.playerW/2
	g.stars = g.stars[:0]
	g.score = 0
	g.level = 1
	g.collected = 0
	g.misses = 0
	g.lives = g.cfg.Gameplay.Lives
	g.frame = 0
	g.lastSpawn = now
	g.holding = false
}

// hold blocks play and Confirm for start_delay_ms from now.
func (g *Game) hold(now core.Ticks) {
	g.holding = true
	g.holdUntil = now + core.Ticks(g.cfg.Gameplay.StartDelayMs) //#nosec G115 -- validated non-negative
}

// held reports whether a hold is still running at now, clearing it once over.
func (g *Game) held(now core.Ticks) bool {
	if !g.holding {
		return false
	}
	if core.TicksDiff(now, g.holdUntil) < 0 {
		return true
	}
	g.holding = false
	return false
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.exit.Observe(g.phase, in.Held(core.ButtonExit), in.Now)

	switch g.phase {
	case core.PhaseTitle:
		if in.JustPressed(core.ButtonConfirm) {
			g.newGame(in.Now)
			g.phase = core.PhasePlaying
			g.hold(in.Now)
		}

	case core.PhasePlaying:
		if !g.held(in.Now) {
			g.stepPlaying(in)
		}

	case core.PhaseGameOver:
		if !g.held(in.Now) && in.JustPressed(core.ButtonConfirm) {
			g.phase = core.PhaseTitle
		}
	}

	return core.StepResult{
		State:         g.State(),
		FrameInterval: time.Duration(g.cfg.Gameplay.FrameMs) * time.Millisecond,
	}
}

// stepPlaying runs input, star movement, catches and spawning for one frame.
func (g *Game) stepPlaying(in core.InputFrame) {
	g.frame++

	if in.Held(core.ButtonLeft) {
		g.playerX -= g.cfg.Player.Speed
	}
	if in.Held(core.ButtonRight) {
		g.playerX += g.cfg.Player.Speed
	}
	g.playerX = core.Clamp(g.playerX, 0, g.runtime.ScreenW-g.playerW)

	var missed int
	g.stars, missed = MoveStars(g.stars, FallSpeed(g.cfg.FallSpeed, g.level), g.runtime.ScreenH)
	if g.addMisses(missed) && g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseGameOver
		g.hold(in.Now)
		return
	}

	var caught int
	g.stars, caught = CatchStars(g.stars, g.PlayerBox(), g.cfg.Stars.Size)
	if caught > 0 {
		// Only the first catch of a frame scores.
		g.score += g.cfg.Gameplay.PointsPerStar * g.level
		g.collected++
		if g.collected >= g.cfg.Gameplay.StarsPerLevel {
			g.level++
			g.collected = 0
		}
	}

	interval := SpawnInterval(g.cfg.Stars, g.level)
	if core.TicksDiff(in.Now, g.lastSpawn) > interval {
		g.stars, _ = g.spawner.Spawn(g.stars)
		g.lastSpawn = in.Now
	}
}

// addMisses counts missed stars against the miss budget and reports whether
// a life was lost.
func (g *Game) addMisses(n int) bool {
	lost := false
	for i := 0; i < n; i++ {
		g.misses++
		if g.misses >= g.cfg.Gameplay.MissesPerLife {
			g.lives--
			g.misses = 0
			lost = true
		}
	}
	return lost
}

// PlayerBox returns the ship's bounding box.
func (g *Game) PlayerBox() core.Rect {
	return core.NewRect(g.playerX, g.playerY, g.playerW, g.cfg.Player.Height)
}

// Render draws the current phase.
func (g *Game) Render(dst core.Display) {
	dst.SetPen(core.Black)
	dst.Clear()

	switch g.phase {
	case core.PhaseTitle:
		g.renderTitle(dst)
	case core.PhasePlaying:
		g.renderShip(dst, g.playerX, g.playerY)
		g.renderStars(dst)
		g.renderHUD(dst)
	case core.PhaseGameOver:
		g.renderGameOver(dst)
	}
}

// renderShip draws the ship as a triangle with an engine flare under it.
func (g *Game) renderShip(dst core.Display, x, y int) {
	w, h := g.playerW, g.cfg.Player.Height
	cx := x + w/2
	bottom := y + h

	dst.SetPen(ShipColor)
	dst.Triangle(cx, y, x, bottom, x+w, bottom)

	engineW := w / 3
	left := cx - engineW/2
	dst.SetPen(FlareColor)
	dst.Triangle(left, bottom, left+engineW, bottom, cx, bottom+flareHeight)
}

func (g *Game) renderStars(dst core.Display) {
	size := g.cfg.Stars.Size
	dst.SetPen(StarColor)
	for _, st := range g.stars {
		if st.Y > -size {
			dst.Circle(st.X, st.Y, size/2)
		}
	}
}

// renderHUD draws score and level top-right, life bars and the miss
// counter top-left.
func (g *Game) renderHUD(dst core.Display) {
	w, _ := dst.Bounds()

	score := fmt.Sprintf("Score: %d", g.score)
	level := fmt.Sprintf("Level: %d", g.level)
	dst.SetPen(TextColor)
	dst.Text(score, w-dst.MeasureText(score, hudScale)-hudPadding, hudPadding, hudScale)
	dst.Text(level, w-dst.MeasureText(level, hudScale)-hudPadding,
		hudPadding+core.GlyphHeight*hudScale+hudPadding/2, hudScale)

	dst.SetPen(LifeColor)
	for i := 0; i < g.lives; i++ {
		dst.Rectangle(hudPadding+i*(lifeBarWidth+lifeBarGap), hudPadding, lifeBarWidth, lifeBarHeight)
	}

	dst.SetPen(TextColor)
	miss := fmt.Sprintf("Miss: %d/%d", g.misses, g.cfg.Gameplay.MissesPerLife)
	dst.Text(miss, hudPadding, hudPadding+lifeBarHeight+hudPadding, hudScale)
}

func (g *Game) renderTitle(dst core.Display) {
	_, h := dst.Bounds()

	title := "Star Catcher"
	start := "Press A to start"
	titleY := h / 3
	startY := titleY + core.GlyphHeight*4 + 30

	dst.SetPen(TitleColor)
	dst.Text(title, core.CenterTextX(dst, title, 4)+3, titleY, 4)
	dst.SetPen(core.Yellow)
	dst.Text(start, core.CenterTextX(dst, start, 2), startY, 2)

	w, _ := dst.Bounds()
	g.renderShip(dst, w/2-g.playerW/2, startY+core.GlyphHeight*2+20)
}

func (g *Game) renderGameOver(dst core.Display) {
	_, h := dst.Bounds()

	over := "GAME OVER"
	score := fmt.Sprintf("Final score: %d", g.score)
	restart := "Press A for title"

	overY := h/2 - core.GlyphHeight*4
	scoreY := overY + core.GlyphHeight*4 + 10
	restartY := scoreY + core.GlyphHeight*2 + 10

	dst.SetPen(core.Red)
	dst.Text(over, core.CenterTextX(dst, over, 4), overY, 4)
	dst.SetPen(TextColor)
	dst.Text(score, core.CenterTextX(dst, score, 2), scoreY, 2)
	dst.Text(restart, core.CenterTextX(dst, restart, 2), restartY, 2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
	}
}

// WantsExit reports whether the exit double-click has completed.
func (g *Game) WantsExit() bool {
	return g.exit.Fired()
}

// Stars returns the live stars.
func (g *Game) Stars() []Star {
	return g.stars
}

func init() {
	registry.Register(registry.GameInfo{ID: "star_catcher", Title: "Star Catcher"}, func() registry.Game { return New() })
}
