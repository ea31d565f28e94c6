package board

import (
	"math"

	"github.com/gogpu/board/canvas"
)

// FramePreset names a device-sized frame. Frames whose props.name matches a
// preset render with a device bezel and the add-text/add-image affordances.
type FramePreset struct {
	Name   string
	Width  float64
	Height float64
}

// FramePresets is an ordered preset list.
type FramePresets []FramePreset

// DefaultFramePresets returns the stock device presets.
func DefaultFramePresets() FramePresets {
	return FramePresets{
		{Name: "Mobile", Width: 390, Height: 844},
		{Name: "Tablet", Width: 820, Height: 1180},
		{Name: "Desktop", Width: 1280, Height: 800},
	}
}

// Find returns the preset with the given name.
func (ps FramePresets) Find(name string) (FramePreset, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return FramePreset{}, false
}

// Affordance pill geometry, in world units relative to the frame bounds.
const (
	affordancePad    = 12.0
	affordanceWidth  = 84.0
	affordanceHeight = 24.0
	affordanceGap    = 8.0
)

// FrameAffordances returns the world-space rectangles of the add-text and
// add-image buttons for a frame with the given bounds. The buttons sit in a
// row inside the frame's top-left corner.
func FrameAffordances(bounds Rect) (textBtn, imageBtn Rect) {
	textBtn = Rect{
		X: bounds.X + affordancePad,
		Y: bounds.Y + affordancePad,
		W: affordanceWidth,
		H: affordanceHeight,
	}
	imageBtn = textBtn
	imageBtn.X += affordanceWidth + affordanceGap
	return textBtn, imageBtn
}

// RegisterBuiltins installs the ten built-in definitions. Frame rendering
// consults the given presets for bezel mode.
func RegisterBuiltins(r *Registry, presets FramePresets) {
	r.Register(Definition{
		Kind:    KindRectangle,
		Bounds:  boxBounds,
		HitTest: boxHit,
		Draw:    drawRectangle,
	})
	r.Register(Definition{
		Kind:    KindSticky,
		Bounds:  boxBounds,
		HitTest: boxHit,
		Draw:    drawSticky,
	})
	r.Register(Definition{
		Kind:    KindText,
		Bounds:  boxBounds,
		HitTest: boxHit,
		Draw:    drawText,
	})
	r.Register(Definition{
		Kind:    KindEllipse,
		Bounds:  boxBounds,
		HitTest: boxHit,
		Draw:    drawEllipse,
	})
	r.Register(Definition{
		Kind:    KindTriangle,
		Bounds:  boxBounds,
		HitTest: boxHit,
		Draw:    polygonDrawFunc(trianglePoints),
	})
	r.Register(Definition{
		Kind:    KindDiamond,
		Bounds:  boxBounds,
		HitTest: boxHit,
		Draw:    polygonDrawFunc(diamondPoints),
	})
	r.Register(Definition{
		Kind:    KindLine,
		Bounds:  connectorBounds,
		HitTest: connectorHit,
		Draw:    drawConnector(false),
	})
	r.Register(Definition{
		Kind:    KindArrow,
		Bounds:  connectorBounds,
		HitTest: connectorHit,
		Draw:    drawConnector(true),
	})
	r.Register(Definition{
		Kind:    KindFrame,
		Bounds:  boxBounds,
		HitTest: boxHit,
		Draw:    drawFrameFunc(presets),
	})
	r.Register(Definition{
		Kind:    KindImage,
		Bounds:  boxBounds,
		HitTest: boxHit,
		Draw:    drawImage,
	})
}

// boxBounds is the shared bounds function for every non-connector kind: the
// axis-aligned rectangle at the transform position sized by the payload.
func boxBounds(e *Entity) Rect {
	w, h := e.Props.Size()
	return Rect{X: e.Transform.X, Y: e.Transform.Y, W: w, H: h}
}

// boxHit is the hit test shared by every non-connector kind: the bounds
// rect expanded by HitTolerance on all sides, regardless of the drawn
// outline.
func boxHit(e *Entity, p Point) bool {
	return boxBounds(e).Expand(HitTolerance).Contains(p)
}

func connectorBounds(e *Entity) Rect {
	cp, ok := e.Props.(ConnectorProps)
	if !ok {
		return boxBounds(e)
	}
	return RectFromPoints(cp.Start(), cp.End())
}

// connectorHit applies the same padded-rect rule over the endpoint bbox.
func connectorHit(e *Entity, p Point) bool {
	return connectorBounds(e).Expand(HitTolerance).Contains(p)
}

func trianglePoints(b Rect) []Point {
	return []Point{
		{X: b.X + b.W/2, Y: b.Y},
		{X: b.X + b.W, Y: b.Y + b.H},
		{X: b.X, Y: b.Y + b.H},
	}
}

func diamondPoints(b Rect) []Point {
	return []Point{
		{X: b.X + b.W/2, Y: b.Y},
		{X: b.X + b.W, Y: b.Y + b.H/2},
		{X: b.X + b.W/2, Y: b.Y + b.H},
		{X: b.X, Y: b.Y + b.H/2},
	}
}

func polygonDrawFunc(points func(Rect) []Point) func(canvas.Canvas, *Entity, *DrawInfo) {
	return func(cv canvas.Canvas, e *Entity, info *DrawInfo) {
		fill, stroke := shapeColors(e)
		pts := points(boxBounds(e))
		if len(pts) == 0 {
			return
		}
		cv.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			cv.LineTo(p.X, p.Y)
		}
		cv.ClosePath()
		cv.SetColor(fill)
		cv.FillPreserve()
		cv.SetColor(stroke)
		cv.SetLineWidth(1.5)
		cv.Stroke()
	}
}

// shapeColors resolves the fill and stroke strings of the simple shape
// payloads, falling back to the stock palette on bad values.
func shapeColors(e *Entity) (fill, stroke canvas.RGBA) {
	var f, s string
	switch p := e.Props.(type) {
	case RectangleProps:
		f, s = p.Fill, p.Stroke
	case EllipseProps:
		f, s = p.Fill, p.Stroke
	case TriangleProps:
		f, s = p.Fill, p.Stroke
	case DiamondProps:
		f, s = p.Fill, p.Stroke
	}
	return ColorOr(f, MustColor(ColorShapeFill)), ColorOr(s, MustColor(ColorStroke))
}

func drawRectangle(cv canvas.Canvas, e *Entity, info *DrawInfo) {
	fill, stroke := shapeColors(e)
	b := boxBounds(e)
	cv.DrawRectangle(b.X, b.Y, b.W, b.H)
	cv.SetColor(fill)
	cv.FillPreserve()
	cv.SetColor(stroke)
	cv.SetLineWidth(1.5)
	cv.Stroke()
}

func drawEllipse(cv canvas.Canvas, e *Entity, info *DrawInfo) {
	fill, stroke := shapeColors(e)
	b := boxBounds(e)
	cv.DrawEllipse(b.X+b.W/2, b.Y+b.H/2, b.W/2, b.H/2)
	cv.SetColor(fill)
	cv.FillPreserve()
	cv.SetColor(stroke)
	cv.SetLineWidth(1.5)
	cv.Stroke()
}

const stickyCornerRadius = 8.0

func drawSticky(cv canvas.Canvas, e *Entity, info *DrawInfo) {
	p, ok := e.Props.(StickyProps)
	if !ok {
		return
	}
	b := boxBounds(e)
	cv.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, stickyCornerRadius)
	cv.SetColor(ColorOr(p.Fill, MustColor(ColorStickyFill)))
	cv.Fill()

	size := p.FontSize
	if size <= 0 {
		size = 16
	}
	pad := 12.0
	drawWrapped(cv, p.Text, Rect{X: b.X + pad, Y: b.Y + pad, W: b.W - 2*pad, H: b.H - 2*pad},
		size, ColorOr(p.TextColor, MustColor(ColorText)))
}

func drawText(cv canvas.Canvas, e *Entity, info *DrawInfo) {
	p, ok := e.Props.(TextProps)
	if !ok {
		return
	}
	b := boxBounds(e)
	size := p.FontSize
	if size <= 0 {
		size = 18
	}
	drawWrapped(cv, p.Text, b, size, ColorOr(p.Color, MustColor(ColorText)))
}

// drawWrapped word-wraps text into the given box and draws it top-aligned.
// Lines that do not fit vertically are dropped.
func drawWrapped(cv canvas.Canvas, text string, box Rect, size float64, color canvas.RGBA) {
	if text == "" || box.W <= 0 {
		return
	}
	lineHeight := size * 1.35
	cv.SetColor(color)
	y := box.Y + size
	for _, line := range wrapText(cv, text, size, box.W) {
		if y > box.Y+box.H+1e-9 {
			break
		}
		cv.DrawString(line, box.X, y, size)
		y += lineHeight
	}
}

func drawConnector(arrowhead bool) func(canvas.Canvas, *Entity, *DrawInfo) {
	return func(cv canvas.Canvas, e *Entity, info *DrawInfo) {
		p, ok := e.Props.(ConnectorProps)
		if !ok {
			return
		}
		stroke := ColorOr(p.Stroke, MustColor(ColorStroke))
		if info.Selected {
			stroke = Blend(stroke, info.Palette.Accent, 0.6)
		}
		width := p.StrokeWidth
		if width <= 0 {
			width = 2
		}
		cv.SetColor(stroke)
		cv.SetLineWidth(width)
		cv.DrawLine(p.X1, p.Y1, p.X2, p.Y2)
		cv.Stroke()

		if !arrowhead {
			return
		}
		dx, dy := p.X2-p.X1, p.Y2-p.Y1
		if dx == 0 && dy == 0 {
			return
		}
		angle := math.Atan2(dy, dx)
		length := 12.0 + 2*width
		spread := math.Pi / 7
		cv.MoveTo(p.X2, p.Y2)
		cv.LineTo(p.X2-length*math.Cos(angle-spread), p.Y2-length*math.Sin(angle-spread))
		cv.LineTo(p.X2-length*math.Cos(angle+spread), p.Y2-length*math.Sin(angle+spread))
		cv.ClosePath()
		cv.Fill()
	}
}

func drawFrameFunc(presets FramePresets) func(canvas.Canvas, *Entity, *DrawInfo) {
	return func(cv canvas.Canvas, e *Entity, info *DrawInfo) {
		p, ok := e.Props.(FrameProps)
		if !ok {
			return
		}
		b := boxBounds(e)
		zoom := info.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		fill := ColorOr(p.Fill, MustColor(ColorFrameFill))
		_, preset := presets.Find(p.Name)

		// Title label keeps a constant on-screen size so frame names stay
		// readable while zoomed out.
		titleSize := 13 / zoom
		cv.SetColor(MustColor(ColorText))
		cv.DrawString(p.Name, b.X, b.Y-6/zoom, titleSize)

		if !preset {
			cv.DrawRectangle(b.X, b.Y, b.W, b.H)
			cv.SetColor(fill)
			cv.FillPreserve()
			cv.SetColor(info.Palette.Grid)
			cv.SetLineWidth(1.5 / zoom)
			cv.SetDash(6/zoom, 4/zoom)
			cv.Stroke()
			cv.SetDash()
			return
		}

		// Device preset: solid surface with a bezel outline and the
		// add-text / add-image affordance pills.
		radius := 12.0
		cv.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, radius)
		cv.SetColor(fill)
		cv.FillPreserve()
		cv.SetColor(MustColor(ColorStroke))
		cv.SetLineWidth(2 / zoom)
		cv.Stroke()

		textBtn, imageBtn := FrameAffordances(b)
		drawAffordance(cv, textBtn, "+ Text", info)
		drawAffordance(cv, imageBtn, "+ Image", info)
	}
}

func drawAffordance(cv canvas.Canvas, r Rect, label string, info *DrawInfo) {
	cv.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, r.H/2)
	cv.SetColor(Lighten(info.Palette.Accent, 0.88))
	cv.FillPreserve()
	cv.SetColor(info.Palette.Accent)
	cv.SetLineWidth(1)
	cv.Stroke()

	size := 12.0
	w, _ := cv.MeasureString(label, size)
	cv.SetColor(info.Palette.Accent)
	cv.DrawString(label, r.X+(r.W-w)/2, r.Y+(r.H+size*0.7)/2, size)
}

func drawImage(cv canvas.Canvas, e *Entity, info *DrawInfo) {
	p, ok := e.Props.(ImageProps)
	if !ok {
		return
	}
	b := boxBounds(e)
	if img, ok := info.Images.Lookup(p.Src); ok {
		cv.DrawImage(img, b.X, b.Y, b.W, b.H)
		return
	}

	// Unresolved source: placeholder box with crossed diagonals and the
	// source reference.
	cv.DrawRectangle(b.X, b.Y, b.W, b.H)
	cv.SetColor(Lighten(info.Palette.Grid, 0.4))
	cv.FillPreserve()
	cv.SetColor(info.Palette.Grid)
	cv.SetLineWidth(1.5)
	cv.Stroke()
	cv.DrawLine(b.X, b.Y, b.MaxX(), b.MaxY())
	cv.Stroke()
	cv.DrawLine(b.MaxX(), b.Y, b.X, b.MaxY())
	cv.Stroke()
	if p.Src != "" {
		cv.SetColor(MustColor(ColorText))
		cv.DrawString(p.Src, b.X+8, b.Center().Y, 12)
	}
}

// wrapText greedily word-wraps text to the given width. A single word wider
// than the box gets its own line rather than being split.
func wrapText(cv canvas.Canvas, text string, size, maxWidth float64) []string {
	var lines []string
	var current string
	for _, word := range splitWords(text) {
		if word == "\n" {
			lines = append(lines, current)
			current = ""
			continue
		}
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if w, _ := cv.MeasureString(candidate, size); w <= maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWords splits on spaces while keeping explicit newlines as their own
// tokens.
func splitWords(text string) []string {
	var words []string
	var current string
	flush := func() {
		if current != "" {
			words = append(words, current)
			current = ""
		}
	}
	for _, r := range text {
		switch r {
		case ' ', '\t':
			flush()
		case '\n':
			flush()
			words = append(words, "\n")
		default:
			current += string(r)
		}
	}
	flush()
	return words
}
