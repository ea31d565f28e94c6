package canvas

import (
	"image"
	"image/draw"
)

// kappa is the control point distance that makes a cubic bezier
// approximate a quarter circle.
const kappa = 0.5522847498307936

// ContextOption configures a Context.
type ContextOption func(*contextOptions)

type contextOptions struct {
	pixelRatio float64
}

// WithPixelRatio sets the device pixel ratio. The backing store is scaled
// by this factor while the logical coordinate space keeps the requested
// width and height.
func WithPixelRatio(ratio float64) ContextOption {
	return func(o *contextOptions) {
		o.pixelRatio = ratio
	}
}

// drawState is the part of a Context saved by Push and restored by Pop.
// dash and clip are treated as immutable once set, so copies can share
// them.
type drawState struct {
	matrix    Matrix
	color     RGBA
	lineWidth float64
	dash      []float64
	clip      *image.Alpha
}

// Context is a software-rasterized Canvas backed by an image.RGBA.
// It is not safe for concurrent use.
type Context struct {
	width      int
	height     int
	pixelRatio float64
	img        *image.RGBA
	state      drawState
	stack      []drawState
	path       Path
	closed     bool
}

var _ Canvas = (*Context)(nil)

// NewContext creates a software drawing surface with the given logical
// size.
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	o := contextOptions{pixelRatio: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pixelRatio <= 0 {
		o.pixelRatio = 1
	}
	c := &Context{}
	c.init(width, height, o.pixelRatio)
	Logger().Debug("context created",
		"width", width, "height", height, "pixelRatio", o.pixelRatio)
	return c, nil
}

func (c *Context) init(width, height int, ratio float64) {
	c.width = width
	c.height = height
	c.pixelRatio = ratio
	pw := max(int(float64(width)*ratio+0.5), 1)
	ph := max(int(float64(height)*ratio+0.5), 1)
	c.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
	c.stack = c.stack[:0]
	c.path.Reset()
	c.state = drawState{
		matrix:    scaling(ratio, ratio),
		color:     RGBA{A: 1},
		lineWidth: 1,
	}
}

// Size returns the logical size in pixels.
func (c *Context) Size() (int, int) { return c.width, c.height }

// PixelRatio returns the device pixel ratio.
func (c *Context) PixelRatio() float64 { return c.pixelRatio }

// Image returns the backing image. The pixels remain valid until the next
// drawing or Resize call.
func (c *Context) Image() image.Image { return c.img }

// Resize reallocates the backing store at the new size and pixel ratio.
// All transform, clip, and style state is reset.
func (c *Context) Resize(width, height int, pixelRatio float64) error {
	if c.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	c.init(width, height, pixelRatio)
	return nil
}

// Close marks the context closed. Drawing calls on a closed context are
// ignored. Close is idempotent.
func (c *Context) Close() error {
	c.closed = true
	return nil
}

// Clear fills the whole surface, ignoring transform and clip, and discards
// the current path.
func (c *Context) Clear(col RGBA) {
	if c.closed {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
	c.path.Reset()
}

// Push saves the current transform, clip, and style state.
func (c *Context) Push() {
	c.stack = append(c.stack, c.state)
}

// Pop restores the most recently pushed state. Pop without a matching Push
// is ignored.
func (c *Context) Pop() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Translate moves the origin of user space.
func (c *Context) Translate(dx, dy float64) {
	c.state.matrix = c.state.matrix.Multiply(translation(dx, dy))
}

// Scale scales user space about the current origin.
func (c *Context) Scale(sx, sy float64) {
	c.state.matrix = c.state.matrix.Multiply(scaling(sx, sy))
}

// SetColor sets the color used by Fill and Stroke.
func (c *Context) SetColor(col RGBA) { c.state.color = col }

// SetLineWidth sets the stroke width in user-space units.
func (c *Context) SetLineWidth(w float64) { c.state.lineWidth = w }

// SetDash sets the stroke dash pattern in user-space units. Calling it
// with no arguments restores solid strokes.
func (c *Context) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		c.state.dash = nil
		return
	}
	c.state.dash = append([]float64(nil), lengths...)
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	dx, dy := c.state.matrix.Apply(x, y)
	c.path.MoveTo(dx, dy)
}

// LineTo adds a line segment to the current subpath.
func (c *Context) LineTo(x, y float64) {
	dx, dy := c.state.matrix.Apply(x, y)
	c.path.LineTo(dx, dy)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

func (c *Context) quadTo(cx, cy, x, y float64) {
	dcx, dcy := c.state.matrix.Apply(cx, cy)
	dx, dy := c.state.matrix.Apply(x, y)
	c.path.QuadTo(dcx, dcy, dx, dy)
}

func (c *Context) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	d1x, d1y := c.state.matrix.Apply(c1x, c1y)
	d2x, d2y := c.state.matrix.Apply(c2x, c2y)
	dx, dy := c.state.matrix.Apply(x, y)
	c.path.CubicTo(d1x, d1y, d2x, d2y, dx, dy)
}

// Fill fills the current path with the current color and clears it.
func (c *Context) Fill() {
	c.FillPreserve()
	c.path.Reset()
}

// FillPreserve fills the current path and keeps it for further drawing.
func (c *Context) FillPreserve() {
	if c.closed || c.path.Empty() {
		return
	}
	c.fillSubpaths(c.path.flatten())
}

// Stroke strokes the current path with the current color, line width and
// dash pattern, then clears it.
func (c *Context) Stroke() {
	if c.closed || c.path.Empty() {
		c.path.Reset()
		return
	}
	scale := c.state.matrix.scale()
	subs := c.path.flatten()
	if len(c.state.dash) > 0 {
		subs = dashSubpaths(subs, c.state.dash, scale)
	}
	c.fillSubpaths(strokeSubpaths(subs, c.state.lineWidth*scale))
	c.path.Reset()
}

// DrawRectangle appends a rectangle subpath.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// DrawRoundedRectangle appends a rectangle subpath with rounded corners.
func (c *Context) DrawRoundedRectangle(x, y, w, h, r float64) {
	if r <= 0 {
		c.DrawRectangle(x, y, w, h)
		return
	}
	r = min(r, w/2, h/2)
	k := kappa * r
	c.MoveTo(x+r, y)
	c.LineTo(x+w-r, y)
	c.cubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	c.LineTo(x+w, y+h-r)
	c.cubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	c.LineTo(x+r, y+h)
	c.cubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	c.LineTo(x, y+r)
	c.cubicTo(x, y+r-k, x+r-k, y, x+r, y)
	c.ClosePath()
}

// DrawEllipse appends an ellipse subpath centered at (cx, cy) with radii
// rx and ry.
func (c *Context) DrawEllipse(cx, cy, rx, ry float64) {
	kx := kappa * rx
	ky := kappa * ry
	c.MoveTo(cx+rx, cy)
	c.cubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.cubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.cubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.cubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.ClosePath()
}

// DrawLine appends a line segment between two points.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// ClipRect intersects the clip region with an axis-aligned rectangle in
// user space. The current path is left untouched.
func (c *Context) ClipRect(x, y, w, h float64) {
	if c.closed {
		return
	}
	saved := c.path
	c.path = Path{}
	c.DrawRectangle(x, y, w, h)
	c.clipCurrentPath()
	c.path = saved
}

// ClipRoundedRect intersects the clip region with a rounded rectangle in
// user space.
func (c *Context) ClipRoundedRect(x, y, w, h, r float64) {
	if c.closed {
		return
	}
	saved := c.path
	c.path = Path{}
	c.DrawRoundedRectangle(x, y, w, h, r)
	c.clipCurrentPath()
	c.path = saved
}

// clipCurrentPath rasterizes the current path over the full surface and
// intersects it with the active clip mask.
func (c *Context) clipCurrentPath() {
	mask := rasterizeFull(c.path.flatten(), c.img.Bounds())
	if c.state.clip != nil {
		mulMasks(mask, c.state.clip)
	}
	c.state.clip = mask
}

// fillSubpaths renders flattened geometry through the clip mask with the
// current color.
func (c *Context) fillSubpaths(subs []subpath) {
	mask, origin, ok := rasterize(subs, c.img.Bounds())
	if !ok {
		return
	}
	if c.state.clip != nil {
		intersectMask(mask, origin, c.state.clip)
	}
	r := image.Rectangle{Min: origin, Max: origin.Add(mask.Rect.Size())}
	draw.DrawMask(c.img, r, image.NewUniform(c.state.color.Color()), image.Point{}, mask, image.Point{}, draw.Over)
}
