// Package breakout implements a brick breaker: a paddle, one ball and a
// grid of bricks that each break on the first hit.
package breakout

import (
	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/core"
)

// RowColors are the brick colors by row, cycling for grids taller than five.
var RowColors = []core.Pen{core.Red, core.Orange, core.Yellow, core.Green, core.Blue}

// Brick is a single brick of the grid.
type Brick struct {
	X, Y   int
	W, H   int
	Color  core.Pen
	Active bool
}

// Box returns the brick's bounding box.
func (b Brick) Box() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Columns returns how many bricks of the configured width fit across the screen.
func Columns(screenW int, cfg config.BreakoutBricks) int {
	pitch := cfg.Width + cfg.Gap
	if pitch <= 0 {
		return 0
	}
	return screenW / pitch
}

// BuildBricks lays out a fresh grid in row-major order. Each brick is
// offset by one pixel so the gap is split on both sides.
func BuildBricks(screenW int, cfg config.BreakoutBricks) []Brick {
	cols := Columns(screenW, cfg)
	bricks := make([]Brick, 0, cfg.Rows*cols)

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cols; c++ {
			bricks = append(bricks, Brick{
				X:      c*(cfg.Width+cfg.Gap) + 1,
				Y:      r*(cfg.Height+cfg.Gap) + cfg.Top + 1,
				W:      cfg.Width,
				H:      cfg.Height,
				Color:  RowColors[r%len(RowColors)],
				Active: true,
			})
		}
	}
	return bricks
}

// CountActive returns the number of bricks still standing.
func CountActive(bricks []Brick) int {
	count := 0
	for _, b := range bricks {
		if b.Active {
			count++
		}
	}
	return count
}
