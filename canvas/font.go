package canvas

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// glyphKey identifies a cached outline by glyph and pixel size.
type glyphKey struct {
	gid  sfnt.GlyphIndex
	ppem fixed.Int26_6
}

// maxOutlineCache bounds the per-face outline cache. Continuously varying
// sizes, such as labels scaled against the zoom factor, would otherwise
// grow it without limit.
const maxOutlineCache = 512

// outline returns the glyph's path segments at the given pixel size.
// Callers must hold f.mu.
func (f *fontFace) outline(gid sfnt.GlyphIndex, ppem fixed.Int26_6) ([]sfnt.Segment, error) {
	key := glyphKey{gid: gid, ppem: ppem}
	if segs, ok := f.outlines[key]; ok {
		return segs, nil
	}
	segs, err := f.sf.LoadGlyph(&f.buf, gid, ppem, nil)
	if err != nil {
		return nil, err
	}
	// LoadGlyph returns memory owned by the buffer.
	own := append([]sfnt.Segment(nil), segs...)
	if len(f.outlines) >= maxOutlineCache {
		clear(f.outlines)
	}
	f.outlines[key] = own
	return own, nil
}

// lineMetrics returns ascent and descent in pixels at the given size.
// Callers must hold f.mu.
func (f *fontFace) lineMetrics(ppem fixed.Int26_6) (ascent, descent float64) {
	m, err := f.sf.Metrics(&f.buf, ppem, 0)
	if err != nil {
		return fixedToFloat(ppem) * 0.8, fixedToFloat(ppem) * 0.2
	}
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

// appendGlyph transforms glyph segments through the device matrix and
// appends them to p. Segment coordinates are pen-relative with the Y axis
// pointing down, matching LoadGlyph output.
func appendGlyph(p *Path, segs []sfnt.Segment, penX, penY float64, m Matrix) {
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := m.Apply(penX+fixedToFloat(seg.Args[0].X), penY+fixedToFloat(seg.Args[0].Y))
			p.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := m.Apply(penX+fixedToFloat(seg.Args[0].X), penY+fixedToFloat(seg.Args[0].Y))
			p.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := m.Apply(penX+fixedToFloat(seg.Args[0].X), penY+fixedToFloat(seg.Args[0].Y))
			x, y := m.Apply(penX+fixedToFloat(seg.Args[1].X), penY+fixedToFloat(seg.Args[1].Y))
			p.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := m.Apply(penX+fixedToFloat(seg.Args[0].X), penY+fixedToFloat(seg.Args[0].Y))
			c2x, c2y := m.Apply(penX+fixedToFloat(seg.Args[1].X), penY+fixedToFloat(seg.Args[1].Y))
			x, y := m.Apply(penX+fixedToFloat(seg.Args[2].X), penY+fixedToFloat(seg.Args[2].Y))
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
}
