package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// cellStyle is the key of a cached lipgloss style.
type cellStyle struct {
	fg, bg core.Pen
}

// styleCache holds one lipgloss style per foreground/background pair.
// Games use a handful of pens, so the cache stays small.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(fg, bg core.Pen) lipgloss.Style {
	k := cellStyle{fg: fg, bg: bg}
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	c[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}

// Rasterize samples a frame into half-block cells of s: each cell shows two
// vertically stacked pixels, the upper one as foreground and the lower one
// as background. Text runs are then written as characters at the cells
// their pixel boxes cover.
func Rasterize(f core.Frame, s *core.Screen) {
	cols, rows := s.Width(), s.Height()
	if cols <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}

	for cy := range rows {
		top := (2 * cy) * f.Height / (2 * rows)
		bottom := (2*cy + 1) * f.Height / (2 * rows)
		for cx := range cols {
			px := cx * f.Width / cols
			s.SetCell(cx, cy, core.Cell{
				Rune: core.HalfBlock,
				FG:   f.At(px, top),
				BG:   f.At(px, bottom),
			})
		}
	}

	for _, t := range f.Texts {
		col := t.X * cols / f.Width
		span := t.Width() * cols / f.Width
		n := len([]rune(t.Text))
		if span > n {
			col += (span - n) / 2
		}

		mid := t.Y + core.GlyphHeight*t.Scale/2
		row := mid * rows / f.Height
		s.DrawText(col, row, t.Text, t.Pen)
	}
}

// GridSize picks a cell grid for a w×h pixel frame that fits in a
// termW×termH terminal (reserving footer lines) and keeps the frame's
// aspect ratio with square half-block pixels. The grid never exceeds one
// cell per pixel column.
func GridSize(w, h, termW, termH, footer int) (cols, rows int) {
	rows = core.Min(termH-footer, (h+1)/2)
	cols = rows * 2 * w / h
	if cols > termW {
		cols = termW
		rows = cols * h / (2 * w)
	}
	return core.Max(cols, 1), core.Max(rows, 1)
}
