package canvas

import (
	"fmt"
	"image/color"
)

// RGBA represents a color with float64 components in the range [0, 1].
// Components are not premultiplied by alpha.
type RGBA struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard library color.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// RGBA() returns premultiplied 16-bit components.
	af := float64(a) / 0xffff
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: af,
	}
}

// Hex parses a CSS-style hex color. Accepted forms are #RGB, #RGBA, #RRGGBB
// and #RRGGBBAA; the leading '#' is optional.
func Hex(s string) (RGBA, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}

	var digits [8]uint8
	if len(h) > len(digits) {
		return RGBA{}, fmt.Errorf("canvas: invalid hex color %q", s)
	}
	for i := 0; i < len(h); i++ {
		d, ok := hexDigit(h[i])
		if !ok {
			return RGBA{}, fmt.Errorf("canvas: invalid hex color %q", s)
		}
		digits[i] = d
	}

	var r, g, b uint8
	a := uint8(0xff)
	switch len(h) {
	case 3:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		a = digits[3] * 17
	case 6:
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
	case 8:
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return RGBA{}, fmt.Errorf("canvas: invalid hex color %q", s)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Color converts to a premultiplied 8-bit color.RGBA.
func (c RGBA) Color() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Lerp linearly interpolates between c and other. t is clamped to [0, 1].
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	t = clamp01(t)
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
