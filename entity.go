package board

import "maps"

// Kind identifies an entity type. The set of kinds is closed; every kind
// carries a matching Props payload and a registered Definition.
type Kind string

// Built-in entity kinds. The string values double as the wire tags used by
// Export and Import.
const (
	KindRectangle Kind = "rectangle"
	KindSticky    Kind = "sticky-note"
	KindText      Kind = "text"
	KindEllipse   Kind = "ellipse"
	KindTriangle  Kind = "triangle"
	KindDiamond   Kind = "diamond"
	KindLine      Kind = "line"
	KindArrow     Kind = "arrow"
	KindFrame     Kind = "frame"
	KindImage     Kind = "image"
)

// Kinds returns all built-in kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindRectangle, KindSticky, KindText, KindEllipse, KindTriangle,
		KindDiamond, KindLine, KindArrow, KindFrame, KindImage,
	}
}

// IsConnector reports whether the kind is a line or arrow. Connectors
// store raw endpoints and participate in live re-routing.
func (k Kind) IsConnector() bool {
	return k == KindLine || k == KindArrow
}

// Valid reports whether k is one of the built-in kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindRectangle, KindSticky, KindText, KindEllipse, KindTriangle,
		KindDiamond, KindLine, KindArrow, KindFrame, KindImage:
		return true
	}
	return false
}

// Transform places an entity in world space. ScaleX, ScaleY and Rotation
// are stored and round-tripped through serialization but are not applied
// by bounds, hit tests or rendering; they are reserved state.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// NewTransform returns a transform at (x, y) with unit scale and no
// rotation.
func NewTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// Origin returns the transform position as a point.
func (t Transform) Origin() Point {
	return Point{X: t.X, Y: t.Y}
}

// MetaSelected is the metadata key mirroring selection membership.
const MetaSelected = "selected"

// Entity is one object on the board. Entities are plain data: behavior
// (bounds, hit testing, drawing) comes from the Definition registered for
// the entity's kind.
type Entity struct {
	ID        string
	Type      Kind
	Transform Transform
	Props     Props
	Metadata  map[string]any
	Visible   bool
	ParentID  string
}

// Clone returns a snapshot of the entity that does not alias the original.
// Props payloads are value types, so copying the interface is sufficient;
// metadata is copied key by key.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	c := *e
	if e.Metadata != nil {
		c.Metadata = maps.Clone(e.Metadata)
	}
	return &c
}

// Selected reports whether the selection metadata mirror is set.
func (e *Entity) Selected() bool {
	v, ok := e.Metadata[MetaSelected].(bool)
	return ok && v
}
