package board

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/board/canvas"
)

// Default style values used by DefaultProps and the built-in definitions.
// Entity colors are stored as hex strings so they serialize unchanged.
const (
	ColorBackground = "#f3f4f6"
	ColorGrid       = "#e3e5ea"
	ColorStroke     = "#1f2933"
	ColorShapeFill  = "#ffffff"
	ColorStickyFill = "#fef08a"
	ColorText       = "#1f2933"
	ColorFrameFill  = "#f8fafc"
	ColorAccent     = "#2563eb"
)

// Palette holds the resolved chrome colors used by the compositor: the
// canvas background, the grid, and the selection accent drawn around
// selected and hovered entities.
type Palette struct {
	Background canvas.RGBA
	Grid       canvas.RGBA
	Accent     canvas.RGBA
	HandleFill canvas.RGBA
}

// DefaultPalette returns the stock light palette.
func DefaultPalette() Palette {
	return Palette{
		Background: MustColor(ColorBackground),
		Grid:       MustColor(ColorGrid),
		Accent:     MustColor(ColorAccent),
		HandleFill: MustColor("#ffffff"),
	}
}

// ParseColor parses a hex color string (#RGB, #RGBA, #RRGGBB or #RRGGBBAA).
func ParseColor(s string) (canvas.RGBA, error) {
	return canvas.Hex(s)
}

// MustColor parses a hex color string and panics on failure. Intended for
// package-level defaults and tests.
func MustColor(s string) canvas.RGBA {
	c, err := canvas.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorOr parses a hex color string, falling back to the given color when
// the string is empty or malformed. Entity props carry host-authored color
// strings, so a bad value must not take down a frame.
func ColorOr(s string, fallback canvas.RGBA) canvas.RGBA {
	if s == "" {
		return fallback
	}
	c, err := canvas.Hex(s)
	if err != nil {
		Logger().Debug("bad color string", "value", s, "error", err)
		return fallback
	}
	return c
}

// Lighten blends the color toward white in Lab space. t=0 returns the
// color unchanged, t=1 returns white. Lab blending keeps perceived hue
// stable, which plain RGB lerping does not.
func Lighten(c canvas.RGBA, t float64) canvas.RGBA {
	base := colorful.Color{R: c.R, G: c.G, B: c.B}
	white := colorful.Color{R: 1, G: 1, B: 1}
	out := base.BlendLab(white, t).Clamped()
	return canvas.RGBA{R: out.R, G: out.G, B: out.B, A: c.A}
}

// Blend mixes two colors in Lab space, preserving the alpha of the first.
func Blend(a, b canvas.RGBA, t float64) canvas.RGBA {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	out := ca.BlendLab(cb, t).Clamped()
	return canvas.RGBA{R: out.R, G: out.G, B: out.B, A: a.A}
}

// HoverTint returns the fill used for an entity's hovered anchor dot.
func (p Palette) HoverTint() canvas.RGBA {
	return Lighten(p.Accent, 0.35)
}
