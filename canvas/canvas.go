package canvas

import "image"

// Canvas is the drawing surface consumed by the renderer.
//
// Path construction follows the usual immediate-mode contract: MoveTo opens
// a subpath, Fill and Stroke consume the accumulated path, and FillPreserve
// keeps it for a following stroke. The Draw* shape helpers only append
// subpaths; they do not fill or stroke by themselves.
type Canvas interface {
	// Size returns the logical surface size in pixels.
	Size() (width, height int)

	// Clear fills the whole surface with a color, ignoring transform and
	// clip, and discards the current path.
	Clear(c RGBA)

	// Push saves the current transform, clip, and style state.
	Push()
	// Pop restores the most recently pushed state.
	Pop()

	// Translate moves the origin of user space.
	Translate(dx, dy float64)
	// Scale scales user space about the current origin.
	Scale(sx, sy float64)

	// ClipRect intersects the clip region with an axis-aligned rectangle.
	// The clip persists until a surrounding Pop restores the previous one.
	ClipRect(x, y, w, h float64)
	// ClipRoundedRect intersects the clip region with a rounded rectangle.
	ClipRoundedRect(x, y, w, h, r float64)

	// SetColor sets the color used by Fill and Stroke.
	SetColor(c RGBA)
	// SetLineWidth sets the stroke width in user-space units.
	SetLineWidth(w float64)
	// SetDash sets the stroke dash pattern in user-space units. Calling it
	// with no arguments restores solid strokes.
	SetDash(lengths ...float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()

	// Fill fills the current path and clears it.
	Fill()
	// FillPreserve fills the current path and keeps it.
	FillPreserve()
	// Stroke strokes the current path and clears it.
	Stroke()

	// DrawRectangle appends a rectangle subpath.
	DrawRectangle(x, y, w, h float64)
	// DrawRoundedRectangle appends a rectangle subpath with rounded corners.
	DrawRoundedRectangle(x, y, w, h, r float64)
	// DrawEllipse appends an ellipse subpath centered at (cx, cy).
	DrawEllipse(cx, cy, rx, ry float64)
	// DrawLine appends a line segment between two points.
	DrawLine(x1, y1, x2, y2 float64)

	// DrawImage draws img scaled into the user-space rectangle (x, y, w, h).
	DrawImage(img image.Image, x, y, w, h float64)

	// DrawString draws a single line of text with its baseline at (x, y).
	// size is the font size in user-space units.
	DrawString(s string, x, y float64, size float64)
	// MeasureString returns the advance width and line height of s at the
	// given font size, in user-space units.
	MeasureString(s string, size float64) (w, h float64)
}
