// Package colors provides the linear RGBA colour used by the debug renderer.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrInvalidHex = errors.New("invalid hex colour")

// Color4 is a linear RGBA color with float64 components in [0,1].
type Color4 struct {
	R, G, B, A float64
}

func New(r, g, b, a float64) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

func (c Color4) RGBA() (r, g, b, a uint32) {
	rf := clamp01(c.R)
	gf := clamp01(c.G)
	bf := clamp01(c.B)
	af := clamp01(c.A)

	// Convert to pre-multiplied 16-bit values
	return uint32(rf * af * 65535),
		uint32(gf * af * 65535),
		uint32(bf * af * 65535),
		uint32(af * 65535)
}

func From8BitRgb(r, g, b, a byte) Color4 {
	return Color4{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: float64(a) / 255.0,
	}
}

// ParseHex reads "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color4, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color4{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color4{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return From8BitRgb(byte(v>>24), byte(v>>16), byte(v>>8), byte(v)), nil
}

// Hex formats c as "#rrggbbaa".
func (c Color4) Hex() string {
	n := c.ToNRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func Red() Color4 {
	return Color4{R: 1, G: 0, B: 0, A: 1}
}

func Blue() Color4 {
	return Color4{R: 0, G: 0, B: 1, A: 1}
}

func Green() Color4 {
	return Color4{R: 0, G: 1, B: 0, A: 1}
}

func White() Color4 {
	return Color4{R: 1, G: 1, B: 1, A: 1}
}

func Black() Color4 {
	return Color4{R: 0, G: 0, B: 0, A: 1}
}

// Add returns c + o (component-wise).
func (c Color4) Add(o Color4) Color4 {
	return Color4{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Scale returns c * s (scalar).
func (c Color4) Scale(s float64) Color4 {
	return Color4{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Mix returns lerp(c, o, t) = c*(1-t) + o*t.
func (c Color4) Mix(o Color4, t float64) Color4 {
	return Color4{
		R: c.R*(1-t) + o.R*t,
		G: c.G*(1-t) + o.G*t,
		B: c.B*(1-t) + o.B*t,
		A: c.A*(1-t) + o.A*t,
	}
}

func (c Color4) WithAlpha(a float64) Color4 {
	return Color4{
		R: c.R,
		G: c.G,
		B: c.B,
		A: a,
	}
}

// Clamp01 clamps each component into [0,1].
func (c Color4) Clamp01() Color4 {
	return Color4{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

// ToNRGBA converts to 8-bit non-premultiplied channels, truncating.
func (c Color4) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		to8bit(c.R),
		to8bit(c.G),
		to8bit(c.B),
		to8bit(c.A),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float64) uint8 {
	return uint8(255.0*clamp01(x) + 0.5)
}
