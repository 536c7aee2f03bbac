package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

func TestGridSize(t *testing.T) {
	tests := []struct {
		name             string
		termW, termH     int
		expCols, expRows int
	}{
		{"tall terminal limited by width", 80, 100, 80, 30},
		{"wide terminal limited by height", 200, 42, 106, 40},
		{"huge terminal capped at one cell per pixel", 400, 200, 320, 120},
		{"tiny terminal", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := GridSize(320, 240, tt.termW, tt.termH, 2)
			if cols != tt.expCols || rows != tt.expRows {
				t.Errorf("GridSize = %dx%d, expected %dx%d", cols, rows, tt.expCols, tt.expRows)
			}
		})
	}
}

func TestRasterizeHalfBlocks(t *testing.T) {
	c := core.NewCanvas(4, 4)
	c.SetPen(core.Red)
	c.Rectangle(0, 0, 4, 1)
	c.SetPen(core.Blue)
	c.Rectangle(0, 1, 4, 1)

	s := core.NewScreen(4, 2)
	Rasterize(c.Frame(), s)

	cell := s.GetCell(0, 0)
	if cell.Rune != core.HalfBlock || cell.FG != core.Red || cell.BG != core.Blue {
		t.Errorf("cell(0,0) = %+v, expected red over blue half block", cell)
	}
	if cell := s.GetCell(3, 1); cell.FG != core.Black || cell.BG != core.Black {
		t.Errorf("cell(3,1) = %+v, expected black", cell)
	}
}

func TestRasterizeText(t *testing.T) {
	c := core.NewCanvas(320, 240)
	c.SetPen(core.Yellow)
	c.Text("HI", 100, 100, 2)

	s := core.NewScreen(320, 120)
	Rasterize(c.Frame(), s)

	// The run spans 24 columns; two runes are centered in it.
	if s.GetCell(111, 54).Rune != 'H' || s.GetCell(112, 54).Rune != 'I' {
		t.Errorf("row 54 = %q", strings.TrimSpace(s.Row(54)))
	}
	if fg := s.GetCell(111, 54).FG; fg != core.Yellow {
		t.Errorf("text FG = %v, expected yellow", fg)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "ab", core.Red)

	styles := make(styleCache)
	out := RenderScreen(s, styles)

	if !strings.Contains(out, "ab") {
		t.Errorf("RenderScreen missing text: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("line breaks = %d, expected 1", n)
	}
	if len(styles) != 2 {
		t.Errorf("cached styles = %d, expected 2", len(styles))
	}
}
