package board

import (
	"github.com/google/uuid"
)

// newID returns a fresh entity id. UUIDv7 ids are time-ordered, so id order
// roughly tracks creation order, which makes scene dumps easy to scan.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// TransformPatch updates individual transform fields. Nil fields are left
// unchanged.
type TransformPatch struct {
	X        *float64
	Y        *float64
	ScaleX   *float64
	ScaleY   *float64
	Rotation *float64
}

// Patch describes a partial entity update. Each non-nil group shallow-merges
// over the current value; absent groups are untouched.
type Patch struct {
	Transform *TransformPatch
	Props     map[string]any
	Metadata  map[string]any
	Visible   *bool
	ParentID  *string
}

// CreateOption customizes a new entity.
type CreateOption func(*Entity)

// At places the new entity at the given world position.
func At(x, y float64) CreateOption {
	return func(e *Entity) { e.Transform.X, e.Transform.Y = x, y }
}

// WithProps replaces the kind's default payload.
func WithProps(p Props) CreateOption {
	return func(e *Entity) { e.Props = p }
}

// WithParent sets the parent id, normally a frame.
func WithParent(id string) CreateOption {
	return func(e *Entity) { e.ParentID = id }
}

// WithMetadata merges the given keys into the new entity's metadata.
func WithMetadata(m map[string]any) CreateOption {
	return func(e *Entity) {
		for k, v := range m {
			e.Metadata[k] = v
		}
	}
}

// Store owns the entities of one scene. It preserves insertion order, which
// doubles as the z-order, and emits lifecycle events on every mutation.
//
// Entities returned by Get and All are owned by the store and must be
// treated as read-only; all mutation goes through Create, Update, Delete
// and LoadAll so that events and snapshots stay consistent. Event payloads
// are detached clones and may be retained by listeners.
type Store struct {
	bus   *Bus
	order []string
	byID  map[string]*Entity
}

// NewStore returns an empty store publishing on the given bus.
func NewStore(bus *Bus) *Store {
	return &Store{bus: bus, byID: make(map[string]*Entity)}
}

// Create adds a new entity of the given kind and returns it. The entity
// starts visible at the world origin with the kind's default payload.
// Emits EventEntityCreated.
func (s *Store) Create(k Kind, opts ...CreateOption) (*Entity, error) {
	if !k.Valid() {
		return nil, ErrUnknownType
	}
	e := &Entity{
		ID:        newID(),
		Type:      k,
		Transform: NewTransform(0, 0),
		Props:     DefaultProps(k),
		Metadata:  make(map[string]any),
		Visible:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	s.order = append(s.order, e.ID)
	s.byID[e.ID] = e
	s.bus.Emit(EventEntityCreated, e.Clone())
	return e, nil
}

// Update applies a patch to the entity. Unknown ids are a silent no-op.
// Emits EventEntityUpdated with before and after snapshots.
func (s *Store) Update(id string, p Patch) {
	e, ok := s.byID[id]
	if !ok {
		return
	}
	old := e.Clone()

	if tp := p.Transform; tp != nil {
		if tp.X != nil {
			e.Transform.X = *tp.X
		}
		if tp.Y != nil {
			e.Transform.Y = *tp.Y
		}
		if tp.ScaleX != nil {
			e.Transform.ScaleX = *tp.ScaleX
		}
		if tp.ScaleY != nil {
			e.Transform.ScaleY = *tp.ScaleY
		}
		if tp.Rotation != nil {
			e.Transform.Rotation = *tp.Rotation
		}
	}
	if p.Props != nil {
		e.Props = mergeProps(e.Type, e.Props, p.Props)
	}
	if p.Metadata != nil {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any, len(p.Metadata))
		}
		for k, v := range p.Metadata {
			e.Metadata[k] = v
		}
	}
	if p.Visible != nil {
		e.Visible = *p.Visible
	}
	if p.ParentID != nil {
		e.ParentID = *p.ParentID
	}

	s.bus.Emit(EventEntityUpdated, EntityChange{Old: old, New: e.Clone()})
}

// Move sets the entity's world position.
func (s *Store) Move(id string, x, y float64) {
	s.Update(id, Patch{Transform: &TransformPatch{X: &x, Y: &y}})
}

// Offset shifts the entity's world position by a delta.
func (s *Store) Offset(id string, dx, dy float64) {
	e, ok := s.byID[id]
	if !ok {
		return
	}
	s.Move(id, e.Transform.X+dx, e.Transform.Y+dy)
}

// Delete removes the entity. Unknown ids are a silent no-op. Children are
// not cascaded; their ParentID is left dangling. Emits EventEntityDeleted
// with the final snapshot.
func (s *Store) Delete(id string) {
	e, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.bus.Emit(EventEntityDeleted, e.Clone())
}

// Get returns the entity with the given id.
func (s *Store) Get(id string) (*Entity, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// All returns every entity in insertion order. The slice is fresh; the
// entities are the store's own.
func (s *Store) All() []*Entity {
	out := make([]*Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of entities.
func (s *Store) Len() int {
	return len(s.order)
}

// LoadAll atomically replaces the scene with the given entities, preserving
// their order. No per-entity events fire; a single EventSceneChanged is
// emitted instead. Entities are cloned on the way in.
func (s *Store) LoadAll(entities []*Entity) {
	s.order = make([]string, 0, len(entities))
	s.byID = make(map[string]*Entity, len(entities))
	for _, e := range entities {
		c := e.Clone()
		if c.Metadata == nil {
			c.Metadata = make(map[string]any)
		}
		s.order = append(s.order, c.ID)
		s.byID[c.ID] = c
	}
	s.bus.Emit(EventSceneChanged, nil)
}
