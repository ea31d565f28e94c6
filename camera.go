package board

// Zoom limits. Wheel zoom and ZoomAt clamp into this range.
const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// Camera maps between world space and screen space. X and Y are the world
// coordinates visible at the screen origin (top-left corner), Zoom is the
// uniform scale factor from world units to logical pixels.
//
// Camera is a value type: all methods return a new Camera rather than
// mutating the receiver, matching the engine's single-writer model.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns a camera at the world origin with zoom 1.
func NewCamera() Camera {
	return Camera{Zoom: 1}
}

// WorldToScreen converts a world-space point to screen-space pixels.
func (c Camera) WorldToScreen(p Point) Point {
	return Point{
		X: (p.X - c.X) * c.Zoom,
		Y: (p.Y - c.Y) * c.Zoom,
	}
}

// ScreenToWorld converts a screen-space point to world coordinates.
func (c Camera) ScreenToWorld(p Point) Point {
	return Point{
		X: p.X/c.Zoom + c.X,
		Y: p.Y/c.Zoom + c.Y,
	}
}

// VisibleWorld returns the world-space rectangle covered by a viewport of
// the given size in logical pixels.
func (c Camera) VisibleWorld(width, height float64) Rect {
	return Rect{X: c.X, Y: c.Y, W: width / c.Zoom, H: height / c.Zoom}
}

// Pan returns the camera translated by a screen-space delta. The world
// moves opposite to the pointer, so dragging right shifts the camera left.
func (c Camera) Pan(dx, dy float64) Camera {
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom
	return c
}

// ZoomAt returns the camera with zoom multiplied by factor and clamped to
// [MinZoom, MaxZoom], keeping the world point under the given screen point
// stationary.
func (c Camera) ZoomAt(factor float64, at Point) Camera {
	anchor := c.ScreenToWorld(at)
	z := c.Zoom * factor
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	c.Zoom = z
	c.X = anchor.X - at.X/z
	c.Y = anchor.Y - at.Y/z
	return c
}
