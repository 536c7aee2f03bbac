package core

import "fmt"

// Pen is an RGB drawing color, the equivalent of a display pen.
type Pen struct {
	R, G, B uint8
}

// RGB builds a pen from its components.
func RGB(r, g, b uint8) Pen {
	return Pen{R: r, G: g, B: b}
}

// Hex returns the pen as a "#rrggbb" string.
func (p Pen) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// RGBA implements color.Color so pens can be handed to image libraries.
func (p Pen) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R) * 0x101
	g = uint32(p.G) * 0x101
	b = uint32(p.B) * 0x101
	return r, g, b, 0xffff
}

// Palette shared by the games.
var (
	Black  = RGB(0, 0, 0)
	White  = RGB(255, 255, 255)
	Silver = RGB(200, 200, 200)
	Red    = RGB(255, 0, 0)
	Orange = RGB(255, 165, 0)
	Yellow = RGB(255, 255, 0)
	Green  = RGB(0, 255, 0)
	Blue   = RGB(0, 0, 255)
	Cyan   = RGB(0, 255, 255)
)
