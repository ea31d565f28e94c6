package canvas

import "math"

type pathVerb uint8

const (
	verbMove pathVerb = iota
	verbLine
	verbQuad
	verbCubic
	verbClose
)

type pathPoint struct {
	X, Y float64
}

// subpath is one flattened contour. closed distinguishes contours that
// stroke their final segment from open polylines.
type subpath struct {
	pts    []pathPoint
	closed bool
}

// Path accumulates line and curve segments in device space. The zero value
// is an empty path ready for use.
type Path struct {
	verbs  []pathVerb
	coords []float64
	open   bool
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, verbMove)
	p.coords = append(p.coords, x, y)
	p.open = true
}

// LineTo adds a line segment. Without a current subpath it behaves like
// MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, verbLine)
	p.coords = append(p.coords, x, y)
}

// QuadTo adds a quadratic bezier with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, verbQuad)
	p.coords = append(p.coords, cx, cy, x, y)
}

// CubicTo adds a cubic bezier with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, verbCubic)
	p.coords = append(p.coords, c1x, c1y, c2x, c2y, x, y)
}

// Close marks the current subpath closed.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.verbs = append(p.verbs, verbClose)
	p.open = false
}

// Reset empties the path, keeping allocated capacity.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.coords = p.coords[:0]
	p.open = false
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool { return len(p.verbs) == 0 }

// flatten converts the path to polylines. Curves are subdivided with a step
// count derived from the control polygon length, so precision follows
// device resolution.
func (p *Path) flatten() []subpath {
	var subs []subpath
	var cur []pathPoint
	closed := false

	flush := func() {
		if len(cur) > 0 {
			subs = append(subs, subpath{pts: cur, closed: closed})
		}
		cur = nil
		closed = false
	}

	i := 0
	for _, v := range p.verbs {
		switch v {
		case verbMove:
			flush()
			cur = append(cur, pathPoint{p.coords[i], p.coords[i+1]})
			i += 2
		case verbLine:
			cur = append(cur, pathPoint{p.coords[i], p.coords[i+1]})
			i += 2
		case verbQuad:
			last := cur[len(cur)-1]
			c := pathPoint{p.coords[i], p.coords[i+1]}
			end := pathPoint{p.coords[i+2], p.coords[i+3]}
			i += 4
			steps := curveSteps(dist(last, c) + dist(c, end))
			for s := 1; s <= steps; s++ {
				t := float64(s) / float64(steps)
				cur = append(cur, quadPoint(last, c, end, t))
			}
		case verbCubic:
			last := cur[len(cur)-1]
			c1 := pathPoint{p.coords[i], p.coords[i+1]}
			c2 := pathPoint{p.coords[i+2], p.coords[i+3]}
			end := pathPoint{p.coords[i+4], p.coords[i+5]}
			i += 6
			steps := curveSteps(dist(last, c1) + dist(c1, c2) + dist(c2, end))
			for s := 1; s <= steps; s++ {
				t := float64(s) / float64(steps)
				cur = append(cur, cubicPoint(last, c1, c2, end, t))
			}
		case verbClose:
			closed = true
			flush()
		}
	}
	flush()
	return subs
}

func curveSteps(polyLen float64) int {
	n := int(math.Ceil(math.Sqrt(polyLen * 2)))
	return min(max(n, 4), 64)
}

func dist(a, b pathPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func quadPoint(p0, p1, p2 pathPoint, t float64) pathPoint {
	u := 1 - t
	return pathPoint{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

func cubicPoint(p0, p1, p2, p3 pathPoint, t float64) pathPoint {
	u := 1 - t
	return pathPoint{
		X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
		Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
	}
}
