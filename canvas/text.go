package canvas

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// fontFace bundles the embedded fallback font with its shaping and outline
// state. HarfbuzzShaper and sfnt.Buffer carry scratch memory and are not
// safe for concurrent use, so every access funnels through mu.
type fontFace struct {
	mu       sync.Mutex
	sf       *sfnt.Font
	face     *font.Face
	shaper   shaping.HarfbuzzShaper
	buf      sfnt.Buffer
	outlines map[glyphKey][]sfnt.Segment
}

var (
	faceOnce sync.Once
	faceVal  *fontFace
	faceErr  error
)

// defaultFace lazily parses the embedded Go Regular font. The result is
// shared by every Context.
func defaultFace() (*fontFace, error) {
	faceOnce.Do(func() {
		faceVal, faceErr = newFontFace(goregular.TTF)
		if faceErr != nil {
			Logger().Warn("embedded font failed to parse", "error", faceErr)
		}
	})
	return faceVal, faceErr
}

func newFontFace(data []byte) (*fontFace, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	// The same bytes are parsed twice: sfnt serves outlines and metrics,
	// go-text serves shaping.
	tf, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &fontFace{
		sf:       sf,
		face:     tf,
		outlines: make(map[glyphKey][]sfnt.Segment),
	}, nil
}

// shapeLine runs HarfBuzz shaping over a single line of text. Callers must
// hold f.mu.
func (f *fontFace) shapeLine(s string, size float64) shaping.Output {
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(s),
		Face:      f.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	return f.shaper.Shape(input)
}

// baseDirection resolves the paragraph direction with the Unicode bidi
// algorithm. Mixed and neutral paragraphs fall back to left-to-right.
func baseDirection(s string) di.Direction {
	if s == "" {
		return di.DirectionLTR
	}
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err == nil && o.NumRuns() > 0 && o.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Mixed-script
// text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// DrawString draws a single line of text with its baseline at (x, y). The
// glyphs are filled as outlines through the current transform, so they stay
// sharp at any scale. Drawing is a no-op when the embedded font cannot be
// parsed.
func (c *Context) DrawString(s string, x, y float64, size float64) {
	if c.closed || s == "" || size <= 0 {
		return
	}
	f, err := defaultFace()
	if err != nil {
		return
	}

	f.mu.Lock()
	out := f.shapeLine(s, size)
	var p Path
	pen := x
	for _, g := range out.Glyphs {
		gx := pen + fixedToFloat(g.XOffset)
		// Shaping offsets are Y-up, device space is Y-down.
		gy := y - fixedToFloat(g.YOffset)
		segs, err := f.outline(sfnt.GlyphIndex(g.GlyphID), fixed.Int26_6(size*64))
		if err == nil {
			appendGlyph(&p, segs, gx, gy, c.state.matrix)
		}
		pen += fixedToFloat(g.XAdvance)
	}
	f.mu.Unlock()

	c.fillSubpaths(p.flatten())
}

// MeasureString returns the advance width and line height of s at the
// given font size. Values are user-space units, unaffected by the current
// transform.
func (c *Context) MeasureString(s string, size float64) (float64, float64) {
	if s == "" || size <= 0 {
		return 0, 0
	}
	f, err := defaultFace()
	if err != nil {
		// Rough estimate so layout keeps working without a usable font.
		return float64(len([]rune(s))) * size * 0.6, size
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.shapeLine(s, size)
	ascent, descent := f.lineMetrics(fixed.Int26_6(size * 64))
	return fixedToFloat(out.Advance), ascent + descent
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
