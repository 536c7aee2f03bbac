package core

// Glyph metrics of the bitmap font every backend lays text out with.
// A string of n runes drawn at scale s is n*GlyphWidth*s pixels wide and
// GlyphHeight*s pixels tall.
const (
	GlyphWidth  = 6
	GlyphHeight = 8
)

// Display is the draw-primitive surface a game renders into.
// Drawing happens on a back buffer; nothing is visible until Update.
type Display interface {
	// Bounds returns the logical size in pixels.
	Bounds() (w, h int)

	// SetPen selects the color used by the following draw calls.
	SetPen(p Pen)

	// Clear fills the whole buffer with the current pen.
	Clear()

	Rectangle(x, y, w, h int)
	Circle(x, y, r int)
	Triangle(x1, y1, x2, y2, x3, y3 int)

	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y, scale int)

	// MeasureText returns the width in pixels of s at the given scale.
	MeasureText(s string, scale int) int

	// Update presents the back buffer.
	Update()
}

// CenterTextX returns the x position that centers s horizontally on dst.
func CenterTextX(dst Display, s string, scale int) int {
	w, _ := dst.Bounds()
	return (w - dst.MeasureText(s, scale)) / 2
}
