// Package core holds the pixel-space types shared by every game and host:
// geometry, pens, the Display/Buttons/Clock collaborators and the per-frame
// input sample. It has no external dependencies so game logic stays pure and
// testable without a terminal or a window.
package core

// Rect is an axis-aligned box in display pixels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the bounding box of a circle (or square) centered on
// (cx, cy) with half-extent r.
func RectAround(cx, cy, r int) Rect {
	return Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two boxes overlap (AABB). Touching edges do not
// count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Penetration returns how deep r reaches into other on each axis, measured
// from whichever side is shallower. Both values are only meaningful when the
// boxes intersect.
func (r Rect) Penetration(other Rect) (dx, dy int) {
	dx = Min(r.Right()-other.X, other.Right()-r.X)
	dy = Min(r.Bottom()-other.Y, other.Bottom()-r.Y)
	return dx, dy
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
