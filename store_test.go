package board

import (
	"errors"
	"testing"
)

func newTestStore() (*Store, *Bus) {
	bus := NewBus()
	return NewStore(bus), bus
}

func TestStore_CreateDefaults(t *testing.T) {
	s, _ := newTestStore()

	e, err := s.Create(KindRectangle)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID == "" {
		t.Error("ID is empty")
	}
	if e.Type != KindRectangle {
		t.Errorf("Type = %q, want %q", e.Type, KindRectangle)
	}
	if e.Transform.X != 0 || e.Transform.Y != 0 {
		t.Errorf("position = (%v, %v), want origin", e.Transform.X, e.Transform.Y)
	}
	if e.Transform.ScaleX != 1 || e.Transform.ScaleY != 1 {
		t.Errorf("scale = (%v, %v), want unit", e.Transform.ScaleX, e.Transform.ScaleY)
	}
	if !e.Visible {
		t.Error("new entity is not visible")
	}
	if e.Metadata == nil {
		t.Error("Metadata is nil")
	}
	p, ok := e.Props.(RectangleProps)
	if !ok {
		t.Fatalf("Props = %T, want RectangleProps", e.Props)
	}
	if p.Width != 100 || p.Height != 100 {
		t.Errorf("default size = %vx%v, want 100x100", p.Width, p.Height)
	}
}

func TestStore_CreateOptions(t *testing.T) {
	s, _ := newTestStore()

	e, err := s.Create(KindSticky,
		At(40, 60),
		WithProps(StickyProps{Width: 300, Height: 150, Text: "hi"}),
		WithParent("frame-1"),
		WithMetadata(map[string]any{"origin": "test"}),
	)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.Transform.X != 40 || e.Transform.Y != 60 {
		t.Errorf("position = (%v, %v), want (40, 60)", e.Transform.X, e.Transform.Y)
	}
	if e.ParentID != "frame-1" {
		t.Errorf("ParentID = %q, want frame-1", e.ParentID)
	}
	if e.Metadata["origin"] != "test" {
		t.Errorf("Metadata[origin] = %v, want test", e.Metadata["origin"])
	}
	if p := e.Props.(StickyProps); p.Text != "hi" {
		t.Errorf("Text = %q, want hi", p.Text)
	}
}

func TestStore_CreateUnknownKind(t *testing.T) {
	s, bus := newTestStore()

	_, err := s.Create(Kind("blob"))
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after failed create, want 0", s.Len())
	}
	if st := bus.Stats(); st.Emitted != 0 {
		t.Errorf("Emitted = %d after failed create, want 0", st.Emitted)
	}
}

func TestStore_CreateEmitsDetachedClone(t *testing.T) {
	s, bus := newTestStore()
	var got *Entity
	bus.Subscribe(EventEntityCreated, func(ev Event) { got = ev.Data.(*Entity) })

	e, _ := s.Create(KindRectangle)
	if got == nil {
		t.Fatal("no EventEntityCreated")
	}
	if got == e {
		t.Fatal("event payload aliases the stored entity")
	}
	got.Metadata["rogue"] = true
	if _, ok := e.Metadata["rogue"]; ok {
		t.Error("mutating the event payload reached the store")
	}
}

func TestStore_UpdateTransform(t *testing.T) {
	s, _ := newTestStore()
	e, _ := s.Create(KindRectangle, At(10, 20))

	x := 99.0
	s.Update(e.ID, Patch{Transform: &TransformPatch{X: &x}})

	if e.Transform.X != 99 {
		t.Errorf("X = %v, want 99", e.Transform.X)
	}
	if e.Transform.Y != 20 {
		t.Errorf("Y = %v, want 20 (unpatched field changed)", e.Transform.Y)
	}
}

func TestStore_UpdatePropsMerge(t *testing.T) {
	s, _ := newTestStore()
	e, _ := s.Create(KindRectangle)

	s.Update(e.ID, Patch{Props: map[string]any{"width": 250.0}})

	p := e.Props.(RectangleProps)
	if p.Width != 250 {
		t.Errorf("Width = %v, want 250", p.Width)
	}
	if p.Height != 100 {
		t.Errorf("Height = %v, want 100 (unpatched field changed)", p.Height)
	}
	if p.Fill != ColorShapeFill {
		t.Errorf("Fill = %q, want default %q", p.Fill, ColorShapeFill)
	}
}

func TestStore_UpdateEmitsBeforeAfter(t *testing.T) {
	s, bus := newTestStore()
	e, _ := s.Create(KindRectangle, At(10, 20))

	var got EntityChange
	bus.Subscribe(EventEntityUpdated, func(ev Event) { got = ev.Data.(EntityChange) })

	s.Move(e.ID, 50, 60)

	if got.Old == nil || got.New == nil {
		t.Fatal("no EventEntityUpdated")
	}
	if got.Old.Transform.X != 10 || got.Old.Transform.Y != 20 {
		t.Errorf("Old position = (%v, %v), want (10, 20)", got.Old.Transform.X, got.Old.Transform.Y)
	}
	if got.New.Transform.X != 50 || got.New.Transform.Y != 60 {
		t.Errorf("New position = (%v, %v), want (50, 60)", got.New.Transform.X, got.New.Transform.Y)
	}
	if got.Old == e || got.New == e {
		t.Error("snapshots alias the stored entity")
	}
}

func TestStore_UpdateUnknownID(t *testing.T) {
	s, bus := newTestStore()
	fired := false
	bus.Subscribe(EventEntityUpdated, func(Event) { fired = true })

	s.Update("nope", Patch{Visible: boolPtr(false)})

	if fired {
		t.Error("update of unknown id emitted an event")
	}
}

func TestStore_UpdateVisibleAndParent(t *testing.T) {
	s, _ := newTestStore()
	e, _ := s.Create(KindRectangle)

	parent := "frame-9"
	s.Update(e.ID, Patch{Visible: boolPtr(false), ParentID: &parent})

	if e.Visible {
		t.Error("Visible still true")
	}
	if e.ParentID != "frame-9" {
		t.Errorf("ParentID = %q, want frame-9", e.ParentID)
	}
}

func TestStore_Offset(t *testing.T) {
	s, _ := newTestStore()
	e, _ := s.Create(KindRectangle, At(100, 100))

	s.Offset(e.ID, -30, 15)

	if e.Transform.X != 70 || e.Transform.Y != 115 {
		t.Errorf("position = (%v, %v), want (70, 115)", e.Transform.X, e.Transform.Y)
	}
}

func TestStore_Delete(t *testing.T) {
	s, bus := newTestStore()
	e, _ := s.Create(KindRectangle, At(5, 5))

	var got *Entity
	bus.Subscribe(EventEntityDeleted, func(ev Event) { got = ev.Data.(*Entity) })

	s.Delete(e.ID)

	if _, ok := s.Get(e.ID); ok {
		t.Error("entity still present after Delete")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
	if got == nil {
		t.Fatal("no EventEntityDeleted")
	}
	if got.Transform.X != 5 {
		t.Errorf("snapshot X = %v, want 5", got.Transform.X)
	}

	// Unknown ids are silent.
	got = nil
	s.Delete(e.ID)
	if got != nil {
		t.Error("second Delete emitted an event")
	}
}

func TestStore_AllInsertionOrder(t *testing.T) {
	s, _ := newTestStore()
	a, _ := s.Create(KindRectangle)
	b, _ := s.Create(KindEllipse)
	c, _ := s.Create(KindSticky)

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("len(All) = %d, want 3", len(all))
	}
	if all[0].ID != a.ID || all[1].ID != b.ID || all[2].ID != c.ID {
		t.Error("All is not in insertion order")
	}

	s.Delete(b.ID)
	all = s.All()
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != c.ID {
		t.Error("order broken after deleting the middle entity")
	}
}

func TestStore_LoadAll(t *testing.T) {
	s, bus := newTestStore()
	s.Create(KindRectangle)

	scenes := 0
	perEntity := 0
	bus.Subscribe(EventSceneChanged, func(Event) { scenes++ })
	bus.Subscribe(EventEntityCreated, func(Event) { perEntity++ })
	bus.Subscribe(EventEntityDeleted, func(Event) { perEntity++ })

	in := []*Entity{
		{ID: "a", Type: KindEllipse, Transform: NewTransform(1, 2), Props: DefaultProps(KindEllipse), Visible: true},
		{ID: "b", Type: KindFrame, Transform: NewTransform(3, 4), Props: DefaultProps(KindFrame), Visible: true},
	}
	s.LoadAll(in)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if scenes != 1 {
		t.Errorf("EventSceneChanged fired %d times, want 1", scenes)
	}
	if perEntity != 0 {
		t.Errorf("per-entity events fired %d times, want 0", perEntity)
	}

	all := s.All()
	if all[0].ID != "a" || all[1].ID != "b" {
		t.Error("LoadAll did not preserve order")
	}
	if all[0].Metadata == nil {
		t.Error("nil metadata not replaced on load")
	}

	// Entities are cloned on the way in.
	in[0].Transform.X = 999
	if got, _ := s.Get("a"); got.Transform.X != 1 {
		t.Error("mutating the input slice reached the store")
	}
}

func boolPtr(b bool) *bool { return &b }
