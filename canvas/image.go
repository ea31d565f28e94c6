package canvas

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// DrawImage draws img scaled to fill the user-space rectangle (x, y, w, h).
// The current transform must be axis-aligned; this backend does not rotate
// raster images.
func (c *Context) DrawImage(img image.Image, x, y, w, h float64) {
	if c.closed || img == nil || w <= 0 || h <= 0 {
		return
	}
	sb := img.Bounds()
	if sb.Empty() {
		return
	}

	x0, y0 := c.state.matrix.Apply(x, y)
	x1, y1 := c.state.matrix.Apply(x+w, y+h)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	dr := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
	if dr.Empty() || !dr.Overlaps(c.img.Bounds()) {
		return
	}

	var opts *xdraw.Options
	if c.state.clip != nil {
		opts = &xdraw.Options{DstMask: c.state.clip, DstMaskP: image.Point{}}
	}
	xdraw.ApproxBiLinear.Scale(c.img, dr, img, sb, xdraw.Over, opts)
}
