package canvas

import "math"

// strokeSubpaths converts polylines into filled geometry for a stroke of
// the given device width. Each segment becomes a quad and every vertex gets
// a polygon-fan disc, which yields round joins and round caps. All pieces
// wind the same way so overlaps accumulate under the rasterizer instead of
// cancelling.
func strokeSubpaths(subs []subpath, width float64) []subpath {
	r := width / 2
	if r <= 0 {
		return nil
	}
	var out []subpath
	for _, sp := range subs {
		pts := sp.pts
		if len(pts) == 0 {
			continue
		}
		if sp.closed && len(pts) > 1 {
			pts = append(append([]pathPoint(nil), pts...), pts[0])
		}
		for i := 0; i+1 < len(pts); i++ {
			if pts[i] == pts[i+1] {
				continue
			}
			out = append(out, segmentQuad(pts[i], pts[i+1], r))
		}
		for _, p := range pts {
			out = append(out, disc(p, r))
		}
	}
	return out
}

// segmentQuad returns the rectangle swept by the stroke radius along one
// segment.
func segmentQuad(a, b pathPoint, r float64) subpath {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l := math.Hypot(dx, dy)
	nx := -dy / l * r
	ny := dx / l * r
	return subpath{
		pts: []pathPoint{
			{a.X + nx, a.Y + ny},
			{b.X + nx, b.Y + ny},
			{b.X - nx, b.Y - ny},
			{a.X - nx, a.Y - ny},
		},
		closed: true,
	}
}

// disc approximates a filled circle, wound to match segmentQuad.
func disc(p pathPoint, r float64) subpath {
	const steps = 16
	pts := make([]pathPoint, steps)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / steps
		pts[i] = pathPoint{p.X + r*math.Cos(a), p.Y + r*math.Sin(a)}
	}
	return subpath{pts: pts, closed: true}
}

// dashSubpaths slices polylines into the on runs of a dash pattern.
// Pattern lengths are user-space units scaled to device pixels by scale.
// Odd patterns repeat doubled, matching CSS semantics.
func dashSubpaths(subs []subpath, pattern []float64, scale float64) []subpath {
	scaled := make([]float64, 0, len(pattern)*2)
	total := 0.0
	for _, d := range pattern {
		v := d * scale
		if v < 1e-3 {
			v = 1e-3
		}
		scaled = append(scaled, v)
		total += v
	}
	if total <= 0 {
		return subs
	}
	if len(scaled)%2 == 1 {
		scaled = append(scaled, scaled...)
	}

	var out []subpath
	for _, sp := range subs {
		pts := sp.pts
		if sp.closed && len(pts) > 1 {
			pts = append(append([]pathPoint(nil), pts...), pts[0])
		}
		out = append(out, dashPolyline(pts, scaled)...)
	}
	return out
}

func dashPolyline(pts []pathPoint, pattern []float64) []subpath {
	if len(pts) < 2 {
		return nil
	}
	var out []subpath
	idx := 0
	remain := pattern[0]
	on := true
	cur := []pathPoint{pts[0]}

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > remain {
			pos += remain
			t := pos / segLen
			p := pathPoint{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
			if on {
				cur = append(cur, p)
				if len(cur) > 1 {
					out = append(out, subpath{pts: cur})
				}
				cur = nil
			} else {
				cur = []pathPoint{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
		}
		remain -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, subpath{pts: cur})
	}
	return out
}
