package canvas

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// rasterize renders subpaths into a coverage mask restricted to the
// bounding box of the geometry, clipped to bounds. origin is the device
// position of the mask's top-left corner. ok is false when nothing lands
// inside bounds.
func rasterize(subs []subpath, bounds image.Rectangle) (mask *image.Alpha, origin image.Point, ok bool) {
	if len(subs) == 0 {
		return nil, image.Point{}, false
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sp := range subs {
		for _, p := range sp.pts {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return nil, image.Point{}, false
	}

	box := image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(bounds)
	if box.Empty() {
		return nil, image.Point{}, false
	}

	ox := float64(box.Min.X)
	oy := float64(box.Min.Y)
	r := vector.NewRasterizer(box.Dx(), box.Dy())
	r.DrawOp = draw.Src
	for _, sp := range subs {
		if len(sp.pts) < 2 {
			continue
		}
		r.MoveTo(float32(sp.pts[0].X-ox), float32(sp.pts[0].Y-oy))
		for _, p := range sp.pts[1:] {
			r.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		r.ClosePath()
	}

	mask = image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, box.Min, true
}

// rasterizeFull renders subpaths into a surface-sized coverage mask, used
// for clip regions that are intersected repeatedly.
func rasterizeFull(subs []subpath, bounds image.Rectangle) *image.Alpha {
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Src
	for _, sp := range subs {
		if len(sp.pts) < 2 {
			continue
		}
		r.MoveTo(float32(sp.pts[0].X), float32(sp.pts[0].Y))
		for _, p := range sp.pts[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	mask := image.NewAlpha(bounds)
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// intersectMask multiplies mask, positioned at origin, by the overlapping
// region of the surface-sized clip mask.
func intersectMask(mask *image.Alpha, origin image.Point, clip *image.Alpha) {
	w := mask.Rect.Dx()
	h := mask.Rect.Dy()
	for y := 0; y < h; y++ {
		mrow := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		coff := (origin.Y+y)*clip.Stride + origin.X
		crow := clip.Pix[coff : coff+w]
		for x, cv := range crow {
			mrow[x] = uint8(uint32(mrow[x]) * uint32(cv) / 255)
		}
	}
}

// mulMasks multiplies dst by src in place. Both masks must have the same
// dimensions.
func mulMasks(dst, src *image.Alpha) {
	for i, sv := range src.Pix {
		dst.Pix[i] = uint8(uint32(dst.Pix[i]) * uint32(sv) / 255)
	}
}
