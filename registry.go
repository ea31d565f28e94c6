package board

import (
	"github.com/gogpu/board/canvas"
)

// HitTolerance is the padding, in world units, applied around an entity's
// bounds when hit testing. It keeps thin entities like lines pickable.
const HitTolerance = 10.0

// DrawInfo carries per-frame context into a Definition's Draw function.
type DrawInfo struct {
	// Zoom is the camera zoom for the frame being drawn. Definitions use it
	// to keep chrome like bezel outlines readable across zoom levels.
	Zoom float64
	// Selected reports whether the entity is in the current selection.
	Selected bool
	// Images resolves ImageProps.Src references.
	Images *ImageCache
	// Palette provides the resolved chrome colors.
	Palette *Palette
}

// Definition supplies the per-kind behavior: world-space bounds, hit
// testing, and drawing. Definitions are registered once and treated as
// immutable.
type Definition struct {
	Kind    Kind
	Bounds  func(*Entity) Rect
	HitTest func(*Entity, Point) bool
	Draw    func(canvas.Canvas, *Entity, *DrawInfo)
}

// Registry maps entity kinds to their definitions. It is the single source
// of type behavior for the store, the compositor and the interaction
// engine.
type Registry struct {
	defs map[Kind]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[Kind]Definition)}
}

// Register installs a definition for its kind. Registering a kind twice
// overwrites the earlier definition; the overwrite is logged at debug level
// so a host replacing a built-in leaves a trace.
func (r *Registry) Register(d Definition) {
	if _, exists := r.defs[d.Kind]; exists {
		Logger().Debug("type definition overwritten", "type", d.Kind)
	}
	r.defs[d.Kind] = d
}

// Lookup returns the definition for a kind.
func (r *Registry) Lookup(k Kind) (Definition, bool) {
	d, ok := r.defs[k]
	return d, ok
}

// Bounds returns the entity's world-space bounds. Entities without a
// registered definition fall back to the transform position and payload
// size.
func (r *Registry) Bounds(e *Entity) Rect {
	if d, ok := r.defs[e.Type]; ok && d.Bounds != nil {
		return d.Bounds(e)
	}
	w, h := 0.0, 0.0
	if e.Props != nil {
		w, h = e.Props.Size()
	}
	return Rect{X: e.Transform.X, Y: e.Transform.Y, W: w, H: h}
}

// HitTest reports whether the world-space point hits the entity.
func (r *Registry) HitTest(e *Entity, p Point) bool {
	if d, ok := r.defs[e.Type]; ok && d.HitTest != nil {
		return d.HitTest(e, p)
	}
	return r.Bounds(e).Expand(HitTolerance).Contains(p)
}
