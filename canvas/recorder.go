package canvas

import "image"

// Op is one recorded drawing call.
type Op struct {
	// Name is the Canvas method name.
	Name string
	// Args holds the numeric arguments in call order.
	Args []float64
	// Text is set for DrawString.
	Text string
	// Color is set for SetColor and Clear.
	Color RGBA
}

// Recorder is a Canvas that captures calls instead of producing pixels.
// It backs tests that assert on draw order, culling, and state handling.
type Recorder struct {
	width  int
	height int
	ops    []Op
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder returns a Recorder with the given logical size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Ops returns the recorded calls in order. The slice is owned by the
// Recorder and valid until the next Reset.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset discards all recorded calls.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// Count returns how many recorded calls have the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Texts returns the Text field of every recorded call with the given name,
// in call order.
func (r *Recorder) Texts(name string) []string {
	var out []string
	for _, op := range r.ops {
		if op.Name == name {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) record(name string, args ...float64) {
	r.ops = append(r.ops, Op{Name: name, Args: args})
}

// Size returns the logical surface size.
func (r *Recorder) Size() (int, int) { return r.width, r.height }

// Clear records a surface clear.
func (r *Recorder) Clear(c RGBA) {
	r.ops = append(r.ops, Op{Name: "Clear", Color: c})
}

// Push records a state save.
func (r *Recorder) Push() { r.record("Push") }

// Pop records a state restore.
func (r *Recorder) Pop() { r.record("Pop") }

// Translate records a translation.
func (r *Recorder) Translate(dx, dy float64) { r.record("Translate", dx, dy) }

// Scale records a scale.
func (r *Recorder) Scale(sx, sy float64) { r.record("Scale", sx, sy) }

// ClipRect records a rectangular clip.
func (r *Recorder) ClipRect(x, y, w, h float64) { r.record("ClipRect", x, y, w, h) }

// ClipRoundedRect records a rounded rectangular clip.
func (r *Recorder) ClipRoundedRect(x, y, w, h, rad float64) {
	r.record("ClipRoundedRect", x, y, w, h, rad)
}

// SetColor records a color change.
func (r *Recorder) SetColor(c RGBA) {
	r.ops = append(r.ops, Op{Name: "SetColor", Color: c})
}

// SetLineWidth records a line width change.
func (r *Recorder) SetLineWidth(w float64) { r.record("SetLineWidth", w) }

// SetDash records a dash pattern change.
func (r *Recorder) SetDash(lengths ...float64) { r.record("SetDash", lengths...) }

// MoveTo records a subpath start.
func (r *Recorder) MoveTo(x, y float64) { r.record("MoveTo", x, y) }

// LineTo records a line segment.
func (r *Recorder) LineTo(x, y float64) { r.record("LineTo", x, y) }

// ClosePath records a subpath close.
func (r *Recorder) ClosePath() { r.record("ClosePath") }

// Fill records a fill.
func (r *Recorder) Fill() { r.record("Fill") }

// FillPreserve records a path-preserving fill.
func (r *Recorder) FillPreserve() { r.record("FillPreserve") }

// Stroke records a stroke.
func (r *Recorder) Stroke() { r.record("Stroke") }

// DrawRectangle records a rectangle subpath.
func (r *Recorder) DrawRectangle(x, y, w, h float64) { r.record("DrawRectangle", x, y, w, h) }

// DrawRoundedRectangle records a rounded rectangle subpath.
func (r *Recorder) DrawRoundedRectangle(x, y, w, h, rad float64) {
	r.record("DrawRoundedRectangle", x, y, w, h, rad)
}

// DrawEllipse records an ellipse subpath.
func (r *Recorder) DrawEllipse(cx, cy, rx, ry float64) { r.record("DrawEllipse", cx, cy, rx, ry) }

// DrawLine records a line segment subpath.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) { r.record("DrawLine", x1, y1, x2, y2) }

// DrawImage records an image draw with its destination rectangle.
func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.record("DrawImage", x, y, w, h)
}

// DrawString records a text draw.
func (r *Recorder) DrawString(s string, x, y float64, size float64) {
	r.ops = append(r.ops, Op{Name: "DrawString", Args: []float64{x, y, size}, Text: s})
}

// MeasureString estimates metrics without shaping, keeping recordings
// deterministic and font-free.
func (r *Recorder) MeasureString(s string, size float64) (float64, float64) {
	return float64(len([]rune(s))) * size * 0.6, size
}
