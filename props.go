package board

import (
	"fmt"
	"math"
	"sort"
)

// Props is the typed payload of an entity. Exactly one payload type exists
// per kind, except that lines and arrows share ConnectorProps. Payloads are
// value types treated as immutable: the Store merges update patches in map
// form and decodes the result back into a fresh payload.
type Props interface {
	// Size returns the payload extent in world units. For connectors this
	// is the size of the endpoint bounding box.
	Size() (width, height float64)

	isProps()
}

// RectangleProps is the payload for rectangle entities.
type RectangleProps struct {
	Width  float64
	Height float64
	Fill   string
	Stroke string
}

// EllipseProps is the payload for ellipse entities.
type EllipseProps struct {
	Width  float64
	Height float64
	Fill   string
	Stroke string
}

// TriangleProps is the payload for triangle entities.
type TriangleProps struct {
	Width  float64
	Height float64
	Fill   string
	Stroke string
}

// DiamondProps is the payload for diamond entities.
type DiamondProps struct {
	Width  float64
	Height float64
	Fill   string
	Stroke string
}

// StickyProps is the payload for sticky note entities.
type StickyProps struct {
	Width     float64
	Height    float64
	Fill      string
	Text      string
	TextColor string
	FontSize  float64
}

// TextProps is the payload for free-standing text entities.
type TextProps struct {
	Width    float64
	Height   float64
	Text     string
	Color    string
	FontSize float64
}

// ConnectorProps is the payload shared by line and arrow entities. X1..Y2
// are the raw world-space endpoints; the transform position mirrors the
// top-left corner of their bounding box. StartConnectedID/EndConnectedID
// bind an endpoint to another entity's anchor, in which case re-routing
// overwrites the raw endpoint whenever that entity changes.
type ConnectorProps struct {
	X1, Y1           float64
	X2, Y2           float64
	Stroke           string
	StrokeWidth      float64
	StartConnectedID string
	EndConnectedID   string
	StartAnchor      Anchor
	EndAnchor        Anchor
}

// FrameProps is the payload for frame entities. A Name matching one of the
// configured device presets switches the frame to bezel rendering with
// add-text/add-image affordances.
type FrameProps struct {
	Width  float64
	Height float64
	Name   string
	Fill   string
}

// ImageProps is the payload for image entities. Src is an opaque reference
// resolved against the engine's image cache at draw time.
type ImageProps struct {
	Width  float64
	Height float64
	Src    string
}

func (RectangleProps) isProps() {}
func (EllipseProps) isProps()   {}
func (TriangleProps) isProps()  {}
func (DiamondProps) isProps()   {}
func (StickyProps) isProps()    {}
func (TextProps) isProps()      {}
func (ConnectorProps) isProps() {}
func (FrameProps) isProps()     {}
func (ImageProps) isProps()     {}

// Size implementations.

func (p RectangleProps) Size() (float64, float64) { return p.Width, p.Height }
func (p EllipseProps) Size() (float64, float64)   { return p.Width, p.Height }
func (p TriangleProps) Size() (float64, float64)  { return p.Width, p.Height }
func (p DiamondProps) Size() (float64, float64)   { return p.Width, p.Height }
func (p StickyProps) Size() (float64, float64)    { return p.Width, p.Height }
func (p TextProps) Size() (float64, float64)      { return p.Width, p.Height }
func (p FrameProps) Size() (float64, float64)     { return p.Width, p.Height }
func (p ImageProps) Size() (float64, float64)     { return p.Width, p.Height }

func (p ConnectorProps) Size() (float64, float64) {
	return math.Abs(p.X2 - p.X1), math.Abs(p.Y2 - p.Y1)
}

// Start returns the first raw endpoint.
func (p ConnectorProps) Start() Point { return Point{X: p.X1, Y: p.Y1} }

// End returns the second raw endpoint.
func (p ConnectorProps) End() Point { return Point{X: p.X2, Y: p.Y2} }

// DefaultProps returns the payload a freshly created entity of the given
// kind starts with.
func DefaultProps(k Kind) Props {
	switch k {
	case KindRectangle:
		return RectangleProps{Width: 100, Height: 100, Fill: ColorShapeFill, Stroke: ColorStroke}
	case KindEllipse:
		return EllipseProps{Width: 100, Height: 100, Fill: ColorShapeFill, Stroke: ColorStroke}
	case KindTriangle:
		return TriangleProps{Width: 100, Height: 100, Fill: ColorShapeFill, Stroke: ColorStroke}
	case KindDiamond:
		return DiamondProps{Width: 100, Height: 100, Fill: ColorShapeFill, Stroke: ColorStroke}
	case KindSticky:
		return StickyProps{Width: 200, Height: 200, Fill: ColorStickyFill, TextColor: ColorText, FontSize: 16}
	case KindText:
		return TextProps{Width: 200, Height: 50, Color: ColorText, FontSize: 18}
	case KindLine:
		return ConnectorProps{Stroke: ColorStroke, StrokeWidth: 2}
	case KindArrow:
		return ConnectorProps{Stroke: ColorStroke, StrokeWidth: 2}
	case KindFrame:
		return FrameProps{Width: 400, Height: 300, Name: "Frame", Fill: ColorFrameFill}
	case KindImage:
		return ImageProps{Width: 200, Height: 200}
	}
	return nil
}

// DefaultSize returns the fallback size applied when a create drag ends
// below the minimum threshold.
func DefaultSize(k Kind) (w, h float64) {
	switch k {
	case KindSticky:
		return 200, 200
	case KindText:
		return 200, 50
	case KindFrame:
		return 400, 300
	case KindImage:
		return 200, 200
	case KindLine, KindArrow:
		return 120, 0
	default:
		return 100, 100
	}
}

// propsToMap converts a payload to its open map form, using the wire keys
// shared by serialization and update patches. Connector width/height are
// derived from the endpoints.
func propsToMap(p Props) map[string]any {
	switch v := p.(type) {
	case RectangleProps:
		return map[string]any{"width": v.Width, "height": v.Height, "fill": v.Fill, "stroke": v.Stroke}
	case EllipseProps:
		return map[string]any{"width": v.Width, "height": v.Height, "fill": v.Fill, "stroke": v.Stroke}
	case TriangleProps:
		return map[string]any{"width": v.Width, "height": v.Height, "fill": v.Fill, "stroke": v.Stroke}
	case DiamondProps:
		return map[string]any{"width": v.Width, "height": v.Height, "fill": v.Fill, "stroke": v.Stroke}
	case StickyProps:
		return map[string]any{
			"width": v.Width, "height": v.Height, "fill": v.Fill,
			"text": v.Text, "textColor": v.TextColor, "fontSize": v.FontSize,
		}
	case TextProps:
		return map[string]any{
			"width": v.Width, "height": v.Height,
			"text": v.Text, "color": v.Color, "fontSize": v.FontSize,
		}
	case ConnectorProps:
		w, h := v.Size()
		m := map[string]any{
			"width": w, "height": h,
			"x1": v.X1, "y1": v.Y1, "x2": v.X2, "y2": v.Y2,
			"stroke": v.Stroke, "strokeWidth": v.StrokeWidth,
		}
		if v.StartConnectedID != "" {
			m["startConnectedId"] = v.StartConnectedID
			m["startAnchor"] = string(v.StartAnchor)
		}
		if v.EndConnectedID != "" {
			m["endConnectedId"] = v.EndConnectedID
			m["endAnchor"] = string(v.EndAnchor)
		}
		return m
	case FrameProps:
		return map[string]any{"width": v.Width, "height": v.Height, "name": v.Name, "fill": v.Fill}
	case ImageProps:
		return map[string]any{"width": v.Width, "height": v.Height, "src": v.Src}
	}
	return map[string]any{}
}

// propReader decodes wire values out of a props map. In strict mode wrong
// types and unknown keys fail the decode; in lenient mode they are skipped
// so that a partial patch cannot corrupt a payload.
type propReader struct {
	m      map[string]any
	strict bool
	seen   map[string]bool
	err    error
}

func newPropReader(m map[string]any, strict bool) *propReader {
	return &propReader{m: m, strict: strict, seen: make(map[string]bool, len(m))}
}

func (r *propReader) float(key string, def float64) float64 {
	v, ok := r.m[key]
	if !ok {
		return def
	}
	r.seen[key] = true
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	if r.strict && r.err == nil {
		r.err = fmt.Errorf("prop %q: expected number, got %T", key, v)
	}
	return def
}

func (r *propReader) str(key string, def string) string {
	v, ok := r.m[key]
	if !ok {
		return def
	}
	r.seen[key] = true
	if s, ok := v.(string); ok {
		return s
	}
	if r.strict && r.err == nil {
		r.err = fmt.Errorf("prop %q: expected string, got %T", key, v)
	}
	return def
}

func (r *propReader) anchor(key string, def Anchor) Anchor {
	s := r.str(key, string(def))
	a := Anchor(s)
	if s != "" && !a.Valid() {
		if r.strict && r.err == nil {
			r.err = fmt.Errorf("prop %q: unknown anchor %q", key, s)
		}
		return def
	}
	return a
}

// derived marks a key as consumed without reading it. Used for values that
// are recomputed rather than stored, such as connector width/height.
func (r *propReader) derived(keys ...string) {
	for _, k := range keys {
		if _, ok := r.m[k]; ok {
			r.seen[k] = true
		}
	}
}

func (r *propReader) finish() error {
	if r.err != nil {
		return r.err
	}
	if !r.strict {
		return nil
	}
	var unknown []string
	for k := range r.m {
		if !r.seen[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown props %v", unknown)
	}
	return nil
}

// decodeProps builds a typed payload for the given kind from its map form.
// The defaults for absent keys come from the current payload when merging a
// patch, or from DefaultProps when decoding a full record.
func decodeProps(k Kind, base Props, m map[string]any, strict bool) (Props, error) {
	if base == nil {
		base = DefaultProps(k)
	}
	r := newPropReader(m, strict)
	var out Props
	switch b := base.(type) {
	case RectangleProps:
		out = RectangleProps{
			Width:  r.float("width", b.Width),
			Height: r.float("height", b.Height),
			Fill:   r.str("fill", b.Fill),
			Stroke: r.str("stroke", b.Stroke),
		}
	case EllipseProps:
		out = EllipseProps{
			Width:  r.float("width", b.Width),
			Height: r.float("height", b.Height),
			Fill:   r.str("fill", b.Fill),
			Stroke: r.str("stroke", b.Stroke),
		}
	case TriangleProps:
		out = TriangleProps{
			Width:  r.float("width", b.Width),
			Height: r.float("height", b.Height),
			Fill:   r.str("fill", b.Fill),
			Stroke: r.str("stroke", b.Stroke),
		}
	case DiamondProps:
		out = DiamondProps{
			Width:  r.float("width", b.Width),
			Height: r.float("height", b.Height),
			Fill:   r.str("fill", b.Fill),
			Stroke: r.str("stroke", b.Stroke),
		}
	case StickyProps:
		out = StickyProps{
			Width:     r.float("width", b.Width),
			Height:    r.float("height", b.Height),
			Fill:      r.str("fill", b.Fill),
			Text:      r.str("text", b.Text),
			TextColor: r.str("textColor", b.TextColor),
			FontSize:  r.float("fontSize", b.FontSize),
		}
	case TextProps:
		out = TextProps{
			Width:    r.float("width", b.Width),
			Height:   r.float("height", b.Height),
			Text:     r.str("text", b.Text),
			Color:    r.str("color", b.Color),
			FontSize: r.float("fontSize", b.FontSize),
		}
	case ConnectorProps:
		r.derived("width", "height")
		out = ConnectorProps{
			X1:               r.float("x1", b.X1),
			Y1:               r.float("y1", b.Y1),
			X2:               r.float("x2", b.X2),
			Y2:               r.float("y2", b.Y2),
			Stroke:           r.str("stroke", b.Stroke),
			StrokeWidth:      r.float("strokeWidth", b.StrokeWidth),
			StartConnectedID: r.str("startConnectedId", b.StartConnectedID),
			EndConnectedID:   r.str("endConnectedId", b.EndConnectedID),
			StartAnchor:      r.anchor("startAnchor", b.StartAnchor),
			EndAnchor:        r.anchor("endAnchor", b.EndAnchor),
		}
	case FrameProps:
		out = FrameProps{
			Width:  r.float("width", b.Width),
			Height: r.float("height", b.Height),
			Name:   r.str("name", b.Name),
			Fill:   r.str("fill", b.Fill),
		}
	case ImageProps:
		out = ImageProps{
			Width:  r.float("width", b.Width),
			Height: r.float("height", b.Height),
			Src:    r.str("src", b.Src),
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, k)
	}
	if err := r.finish(); err != nil {
		return nil, fmt.Errorf("%s props: %w", k, err)
	}
	return out, nil
}

// mergeProps shallow-merges a patch map onto an existing payload. Unknown
// keys and mistyped values are dropped with a debug log entry; a patch can
// never corrupt the payload.
func mergeProps(k Kind, base Props, patch map[string]any) Props {
	if len(patch) == 0 {
		return base
	}
	out, err := decodeProps(k, base, patch, false)
	if err != nil {
		// Lenient decode only fails for an unregistered kind.
		Logger().Debug("props patch dropped", "type", k, "error", err)
		return base
	}
	return out
}
