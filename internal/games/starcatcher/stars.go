// Package starcatcher implements a catcher game: stars fall from the top of
// the screen and the player steers a ship left and right to collect them.
package starcatcher

import (
	"math/rand"

	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/core"
)

// Star is a falling star, positioned by its center.
type Star struct {
	X, Y int
}

// Box returns the star's bounding box for a star of the given size.
func (s Star) Box(size int) core.Rect {
	return core.RectAround(s.X, s.Y, size/2)
}

// Spawner places new stars at the top of the screen. It avoids starting a
// star right next to one that is still near the top.
type Spawner struct {
	cfg     config.StarSpawn
	rng     *rand.Rand
	screenW int
	minX    int
	maxX    int
}

// NewSpawner creates a spawner for a screen of width screenW. Stars spawn in
// the centred SpawnAreaFactor of the width, kept a half star from the walls.
func NewSpawner(cfg config.StarSpawn, screenW int, seed int64) *Spawner {
	areaW := int(float64(screenW) * cfg.SpawnAreaFactor)
	minX := (screenW - areaW) / 2
	maxX := minX + areaW

	return &Spawner{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		screenW: screenW,
		minX:    core.Max(cfg.Size/2, minX),
		maxX:    core.Min(screenW-cfg.Size/2, maxX),
	}
}

// Band returns the inclusive range of spawn x positions.
func (s *Spawner) Band() (minX, maxX int) {
	return s.minX, s.maxX
}

// randInt returns a uniform int in [lo, hi].
func (s *Spawner) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Spawn appends a new star unless one is still too close to the top.
// Up to SpawnAttempts positions are tried for one that keeps
// MinHorizontalSeparation from every star within ProximityDepth of the top;
// if none is found the last resort is an unconstrained position in the band.
func (s *Spawner) Spawn(stars []Star) ([]Star, bool) {
	for _, st := range stars {
		if st.Y < s.cfg.MinVerticalStartSeparation {
			return stars, false
		}
	}

	startY := -s.cfg.Size

	if s.maxX <= s.minX {
		lo := core.Max(s.cfg.Size/2, s.screenW/4)
		hi := core.Min(s.screenW-s.cfg.Size/2, s.screenW*3/4)
		x := s.screenW / 2
		if hi > lo {
			x = s.randInt(lo, hi)
		}
		return append(stars, Star{X: x, Y: startY}), true
	}

	for attempt := 0; attempt < s.cfg.SpawnAttempts; attempt++ {
		x := s.randInt(s.minX, s.maxX)
		if s.separated(x, stars) {
			return append(stars, Star{X: x, Y: startY}), true
		}
	}

	x := s.randInt(s.minX, s.maxX)
	return append(stars, Star{X: x, Y: startY}), true
}

// separated reports whether x keeps its distance from the stars near the top.
func (s *Spawner) separated(x int, stars []Star) bool {
	for _, st := range stars {
		if st.Y < s.cfg.ProximityDepth && core.Abs(x-st.X) < s.cfg.MinHorizontalSeparation {
			return false
		}
	}
	return true
}

// FallSpeed returns the per-frame fall distance at level. Every
// LevelsPerSpeedStep levels add one pixel, up to Max. A step of 0 keeps the
// speed at Base.
func FallSpeed(cfg config.StarFallSpeed, level int) int {
	if cfg.LevelsPerSpeedStep <= 0 {
		return cfg.Base
	}
	speed := cfg.Base + core.Max(level-1, 0)/cfg.LevelsPerSpeedStep
	return core.Min(speed, cfg.Max)
}

// SpawnInterval returns the milliseconds between spawn attempts at level.
func SpawnInterval(cfg config.StarSpawn, level int) int {
	return core.Max(cfg.MinIntervalMs, cfg.InitialIntervalMs-level*cfg.IntervalReductionMs)
}

// MoveStars moves every star down by speed. Stars that reach screenH are
// dropped and counted as missed. The slice is compacted in place.
func MoveStars(stars []Star, speed, screenH int) ([]Star, int) {
	kept := stars[:0]
	missed := 0
	for _, st := range stars {
		st.Y += speed
		if st.Y >= screenH {
			missed++
			continue
		}
		kept = append(kept, st)
	}
	return kept, missed
}

// CatchStars removes every star overlapping player and returns how many
// were removed. The slice is compacted in place.
func CatchStars(stars []Star, player core.Rect, size int) ([]Star, int) {
	kept := stars[:0]
	caught := 0
	for _, st := range stars {
		if player.Intersects(st.Box(size)) {
			caught++
			continue
		}
		kept = append(kept, st)
	}
	return kept, caught
}
