package core

import "unicode/utf8"

// TextRun is a string drawn through Display.Text. Canvases keep text as runs
// instead of rasterising it so each host can render it with its own font.
type TextRun struct {
	Text  string
	X, Y  int
	Scale int
	Pen   Pen
}

// Width returns the run's width in pixels.
func (t TextRun) Width() int {
	return utf8.RuneCountInString(t.Text) * GlyphWidth * t.Scale
}

// Canvas is an in-memory Display: a pixel buffer plus the text runs drawn
// since the last Clear. Hosts embed it and override Update to present frames;
// tests use it directly to inspect what a game drew.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width    int
	height   int
	pen      Pen
	pixels   []Pen
	texts    []TextRun
	presents int
}

// NewCanvas creates a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pen:    Black,
		pixels: make([]Pen, width*height),
	}
}

// Bounds returns the canvas size in pixels.
func (c *Canvas) Bounds() (int, int) {
	return c.width, c.height
}

// SetPen selects the drawing color.
func (c *Canvas) SetPen(p Pen) {
	c.pen = p
}

// Pen returns the current drawing color.
func (c *Canvas) Pen() Pen {
	return c.pen
}

// Clear fills the canvas with the current pen and drops all text runs.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.pen
	}
	c.texts = c.texts[:0]
}

// set writes one pixel; out-of-bounds coordinates are ignored.
func (c *Canvas) set(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = c.pen
}

// At returns the pixel at (x, y), or black outside the canvas.
func (c *Canvas) At(x, y int) Pen {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Black
	}
	return c.pixels[y*c.width+x]
}

// Rectangle fills a w×h box with its top-left corner at (x, y).
func (c *Canvas) Rectangle(x, y, w, h int) {
	x0, y0 := Max(x, 0), Max(y, 0)
	x1, y1 := Min(x+w, c.width), Min(y+h, c.height)
	for py := y0; py < y1; py++ {
		row := py * c.width
		for px := x0; px < x1; px++ {
			c.pixels[row+px] = c.pen
		}
	}
}

// Circle fills a disc of radius r centered on (x, y).
func (c *Canvas) Circle(x, y, r int) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.set(x+dx, y+dy)
			}
		}
	}
}

// Triangle fills the triangle with the three given corners. Pixels on an
// edge are filled.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 int) {
	area := edge(x1, y1, x2, y2, x3, y3)
	if area == 0 {
		return
	}

	minX := Max(Min(x1, Min(x2, x3)), 0)
	maxX := Min(Max(x1, Max(x2, x3)), c.width-1)
	minY := Max(Min(y1, Min(y2, y3)), 0)
	maxY := Min(Max(y1, Max(y2, y3)), c.height-1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			w0 := edge(x2, y2, x3, y3, px, py)
			w1 := edge(x3, y3, x1, y1, px, py)
			w2 := edge(x1, y1, x2, y2, px, py)
			if area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0 {
				c.set(px, py)
			} else if area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0 {
				c.set(px, py)
			}
		}
	}
}

// edge is the signed doubled area of (a, b, p).
func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// Text records a text run in the current pen.
func (c *Canvas) Text(s string, x, y, scale int) {
	if scale < 1 {
		scale = 1
	}
	c.texts = append(c.texts, TextRun{Text: s, X: x, Y: y, Scale: scale, Pen: c.pen})
}

// MeasureText returns the pixel width of s at the given scale.
func (c *Canvas) MeasureText(s string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	return utf8.RuneCountInString(s) * GlyphWidth * scale
}

// Texts returns the text runs drawn since the last Clear.
func (c *Canvas) Texts() []TextRun {
	return c.texts
}

// Update counts a presented frame. Hosts wrap this to push pixels somewhere.
func (c *Canvas) Update() {
	c.presents++
}

// Presents returns how many times Update has been called.
func (c *Canvas) Presents() int {
	return c.presents
}

// Frame is an immutable copy of a canvas, safe to hand to another goroutine.
type Frame struct {
	Width  int
	Height int
	Pixels []Pen
	Texts  []TextRun
}

// Frame copies the current canvas contents.
func (c *Canvas) Frame() Frame {
	f := Frame{
		Width:  c.width,
		Height: c.height,
		Pixels: make([]Pen, len(c.pixels)),
		Texts:  make([]TextRun, len(c.texts)),
	}
	copy(f.Pixels, c.pixels)
	copy(f.Texts, c.texts)
	return f
}

// At returns the pixel at (x, y), or black outside the frame.
func (f Frame) At(x, y int) Pen {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Black
	}
	return f.Pixels[y*f.Width+x]
}

// RGBA returns the pixels as packed 8-bit RGBA, row-major.
func (f Frame) RGBA() []byte {
	buf := make([]byte, len(f.Pixels)*4)
	for i, p := range f.Pixels {
		buf[i*4] = p.R
		buf[i*4+1] = p.G
		buf[i*4+2] = p.B
		buf[i*4+3] = 0xff
	}
	return buf
}
