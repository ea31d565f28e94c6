package board

import (
	"math"
	"slices"
)

// Tool selects what a pointer press does. ToolSelect manipulates existing
// entities; every other tool creates an entity of the matching kind.
type Tool string

// Tools. Creation tool values equal the kind tags they create.
const (
	ToolSelect    Tool = "select"
	ToolRectangle Tool = Tool(KindRectangle)
	ToolSticky    Tool = Tool(KindSticky)
	ToolText      Tool = Tool(KindText)
	ToolEllipse   Tool = Tool(KindEllipse)
	ToolTriangle  Tool = Tool(KindTriangle)
	ToolDiamond   Tool = Tool(KindDiamond)
	ToolLine      Tool = Tool(KindLine)
	ToolArrow     Tool = Tool(KindArrow)
	ToolFrame     Tool = Tool(KindFrame)
	ToolImage     Tool = Tool(KindImage)
)

// CreatesKind returns the kind a creation tool produces.
func (t Tool) CreatesKind() (Kind, bool) {
	k := Kind(t)
	if t != ToolSelect && k.Valid() {
		return k, true
	}
	return "", false
}

// Button identifies a pointer button.
type Button int

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

// Modifier bits. ModSpace switches the select tool to panning, ModCtrl
// switches the wheel to zooming, ModShift toggles multi-select.
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSpace
)

// Has reports whether all bits of q are set.
func (m Modifiers) Has(q Modifiers) bool { return m&q == q }

// Key identifies the keyboard keys the engine reacts to.
type Key int

// Keys.
const (
	KeyEscape Key = iota
	KeyDelete
)

// Cursor names the pointer cursor the host should display. Values follow
// the CSS cursor keywords so browser hosts can use them directly.
type Cursor string

// Cursors.
const (
	CursorDefault    Cursor = "default"
	CursorCrosshair  Cursor = "crosshair"
	CursorMove       Cursor = "move"
	CursorPointer    Cursor = "pointer"
	CursorGrabbing   Cursor = "grabbing"
	CursorResizeNWSE Cursor = "nwse-resize"
	CursorResizeNESW Cursor = "nesw-resize"
)

// State is the interaction state machine's current state.
type State int

// Interaction states.
const (
	StateIdle State = iota
	StatePanning
	StateCreating
	StateDragging
	StateResizing
)

// PointerEvent is a pointer press, move or release in screen coordinates.
type PointerEvent struct {
	Pos    Point
	Button Button
	Mods   Modifiers
}

// WheelEvent is a scroll sample in screen coordinates.
type WheelEvent struct {
	Pos    Point
	DeltaX float64
	DeltaY float64
	Mods   Modifiers
}

// Interaction thresholds in world units.
const (
	// ResizeMin is the smallest width and height a resize can produce.
	ResizeMin = 20.0
	// CreateSnapMin is the create-drag size below which the entity snaps to
	// its kind's fallback default size.
	CreateSnapMin = 10.0
)

// endBinding records the live end connection of a connector being created.
type endBinding struct {
	id     string
	anchor Anchor
}

// Interactor turns pointer, wheel and key input into store mutations,
// camera moves and selection changes. It is owned and driven by the
// Engine; all methods run on the engine goroutine.
type Interactor struct {
	engine *Engine

	state  State
	tool   Tool
	cursor Cursor
	hover  Hover

	panLast Point

	createID     string
	createAnchor Point
	createEnd    endBinding

	dragID   string
	dragLast Point
	coDrag   []string

	resizeID     string
	resizeHandle Handle
}

func newInteractor(e *Engine) *Interactor {
	return &Interactor{engine: e, tool: ToolSelect, cursor: CursorDefault}
}

// State returns the current interaction state.
func (it *Interactor) State() State { return it.state }

// Tool returns the active tool.
func (it *Interactor) Tool() Tool { return it.tool }

// Cursor returns the cursor the host should display.
func (it *Interactor) Cursor() Cursor { return it.cursor }

// SetTool activates a tool. Emits EventToolChanged.
func (it *Interactor) SetTool(t Tool) {
	if t == it.tool {
		return
	}
	if _, ok := t.CreatesKind(); !ok && t != ToolSelect {
		Logger().Debug("unknown tool ignored", "tool", t)
		return
	}
	it.tool = t
	it.engine.bus.Emit(EventToolChanged, t)
	it.updateIdleCursor()
	it.engine.markDirty()
}

// PointerDown starts an interaction. Only the idle state reacts to new
// presses; stray presses during an active gesture are dropped.
func (it *Interactor) PointerDown(ev PointerEvent) {
	if it.state != StateIdle {
		return
	}
	e := it.engine
	world := e.cam.ScreenToWorld(ev.Pos)

	if ev.Button == ButtonMiddle {
		it.startPan(ev.Pos)
		return
	}
	if ev.Button != ButtonLeft {
		return
	}
	// The pan modifier overrides whatever tool is active.
	if ev.Mods.Has(ModSpace) {
		it.startPan(ev.Pos)
		return
	}

	if it.pressAffordance(world) {
		return
	}

	// Pressing an anchor dot starts a bound connector. Dots are only live
	// for the select tool and the connector tools; shape tools create on
	// top of existing entities instead.
	if it.anchorsLive() {
		if id, anchor, ok := it.anchorUnderPointer(ev.Pos); ok {
			it.startBoundConnector(id, anchor)
			return
		}
	}

	if kind, ok := it.tool.CreatesKind(); ok {
		it.startCreate(kind, world)
		return
	}

	// Select tool.
	if id, handle, ok := it.handleUnderPointer(ev.Pos); ok {
		it.state = StateResizing
		it.resizeID = id
		it.resizeHandle = handle
		it.setCursor(resizeCursor(handle))
		return
	}

	hit := it.topmostHit(world, nil)
	if hit == nil {
		e.selection.Clear()
		it.startPan(ev.Pos)
		return
	}
	e.selection.Select(hit.ID, ev.Mods.Has(ModShift))
	if hit.Type.IsConnector() {
		return
	}
	it.state = StateDragging
	it.dragID = hit.ID
	it.dragLast = world
	it.coDrag = it.frameCoDrag(hit)
	it.setCursor(CursorMove)
}

// PointerMove advances the active gesture, or refreshes hover state while
// idle.
func (it *Interactor) PointerMove(ev PointerEvent) {
	e := it.engine
	world := e.cam.ScreenToWorld(ev.Pos)

	switch it.state {
	case StatePanning:
		delta := ev.Pos.Sub(it.panLast)
		it.panLast = ev.Pos
		e.setCamera(e.cam.Pan(delta.X, delta.Y))

	case StateCreating:
		it.moveCreate(world)

	case StateDragging:
		delta := world.Sub(it.dragLast)
		it.dragLast = world
		it.moveEntity(it.dragID, delta.X, delta.Y)
		for _, id := range it.coDrag {
			it.moveEntity(id, delta.X, delta.Y)
		}

	case StateResizing:
		it.moveResize(world)

	default:
		it.refreshHover(ev.Pos, world)
	}
}

// PointerUp completes the active gesture.
func (it *Interactor) PointerUp(ev PointerEvent) {
	switch it.state {
	case StateCreating:
		it.finishCreate()
	case StatePanning, StateDragging, StateResizing:
		// Entities keep their released position; only bookkeeping resets.
	}
	it.reset()
	world := it.engine.cam.ScreenToWorld(ev.Pos)
	it.refreshHover(ev.Pos, world)
}

// Wheel zooms when the zoom modifier is held, pans otherwise.
func (it *Interactor) Wheel(ev WheelEvent) {
	e := it.engine
	if ev.Mods.Has(ModCtrl) {
		factor := 1 + (-ev.DeltaY * 0.01)
		if factor <= 0 {
			return
		}
		e.setCamera(e.cam.ZoomAt(factor, ev.Pos))
		return
	}
	e.setCamera(e.cam.Pan(-ev.DeltaX, -ev.DeltaY))
}

// Key handles the keyboard surface: Escape cancels the gesture in flight,
// Delete removes the selection.
func (it *Interactor) Key(k Key) {
	switch k {
	case KeyEscape:
		if it.state == StateCreating && it.createID != "" {
			it.engine.store.Delete(it.createID)
		}
		it.reset()
	case KeyDelete:
		if it.state == StateIdle {
			it.engine.selection.DeleteSelected()
		}
	}
}

// DoubleClick opens text editing on text-bearing entities by emitting
// EventTextEditRequested.
func (it *Interactor) DoubleClick(ev PointerEvent) {
	if it.state != StateIdle || it.tool != ToolSelect {
		return
	}
	world := it.engine.cam.ScreenToWorld(ev.Pos)
	hit := it.topmostHit(world, nil)
	if hit == nil {
		return
	}
	switch p := hit.Props.(type) {
	case StickyProps:
		it.engine.bus.Emit(EventTextEditRequested, TextEditRequest{
			EntityID: hit.ID, Text: p.Text, FontSize: p.FontSize,
		})
	case TextProps:
		it.engine.bus.Emit(EventTextEditRequested, TextEditRequest{
			EntityID: hit.ID, Text: p.Text, FontSize: p.FontSize,
		})
	}
}

func (it *Interactor) startPan(at Point) {
	it.state = StatePanning
	it.panLast = at
	it.setCursor(CursorGrabbing)
}

// pressAffordance handles presses on a device frame's add-text/add-image
// pills. Returns true when the press was consumed.
func (it *Interactor) pressAffordance(world Point) bool {
	e := it.engine
	all := e.store.All()
	for i := len(all) - 1; i >= 0; i-- {
		fr := all[i]
		if fr.Type != KindFrame || !fr.Visible {
			continue
		}
		p, ok := fr.Props.(FrameProps)
		if !ok {
			continue
		}
		if _, preset := e.presets.Find(p.Name); !preset {
			continue
		}
		bounds := e.registry.Bounds(fr)
		textBtn, imageBtn := FrameAffordances(bounds)
		switch {
		case textBtn.Contains(world):
			it.addFrameText(fr, bounds)
			return true
		case imageBtn.Contains(world):
			e.bus.Emit(EventImageUploadRequested, ImageUploadRequest{FrameID: fr.ID})
			return true
		}
	}
	return false
}

// addFrameText creates an empty text child below the affordance row and
// immediately requests editing for it.
func (it *Interactor) addFrameText(frame *Entity, bounds Rect) {
	e := it.engine
	created, err := e.store.Create(KindText,
		At(bounds.X+affordancePad, bounds.Y+affordancePad+affordanceHeight+8),
		WithParent(frame.ID),
	)
	if err != nil {
		return
	}
	e.selection.Select(created.ID, false)
	p := created.Props.(TextProps)
	e.bus.Emit(EventTextEditRequested, TextEditRequest{
		EntityID: created.ID, Text: p.Text, FontSize: p.FontSize,
	})
}

// startBoundConnector begins creating an arrow anchored at another
// entity's anchor point.
func (it *Interactor) startBoundConnector(ownerID string, anchor Anchor) {
	e := it.engine
	owner, ok := e.store.Get(ownerID)
	if !ok {
		return
	}
	start := AnchorPoint(e.registry.Bounds(owner), anchor)
	kind := KindArrow
	if k, ok := it.tool.CreatesKind(); ok && k.IsConnector() {
		kind = k
	}
	props := DefaultProps(kind).(ConnectorProps)
	props.X1, props.Y1 = start.X, start.Y
	props.X2, props.Y2 = start.X, start.Y
	props.StartConnectedID = ownerID
	props.StartAnchor = anchor
	created, err := e.store.Create(kind, At(start.X, start.Y), WithProps(props))
	if err != nil {
		return
	}
	it.state = StateCreating
	it.createID = created.ID
	it.createAnchor = start
	it.createEnd = endBinding{}
	it.setCursor(CursorCrosshair)
}

// startCreate begins a create drag with a zero-size entity at the press
// point.
func (it *Interactor) startCreate(kind Kind, world Point) {
	e := it.engine
	var opts []CreateOption
	if kind.IsConnector() {
		props := DefaultProps(kind).(ConnectorProps)
		props.X1, props.Y1 = world.X, world.Y
		props.X2, props.Y2 = world.X, world.Y
		opts = append(opts, WithProps(props))
	}
	// With an active device preset, new frames adopt the preset name so
	// they render with the bezel and affordances at any size.
	if kind == KindFrame && e.activePreset != "" {
		if _, ok := e.presets.Find(e.activePreset); ok {
			props := DefaultProps(KindFrame).(FrameProps)
			props.Name = e.activePreset
			opts = append(opts, WithProps(props))
		}
	}
	created, err := e.store.Create(kind, append(opts, At(world.X, world.Y))...)
	if err != nil {
		Logger().Warn("create failed", "type", kind, "error", err)
		return
	}
	if !kind.IsConnector() {
		e.store.Update(created.ID, Patch{Props: map[string]any{"width": 0.0, "height": 0.0}})
	}
	it.state = StateCreating
	it.createID = created.ID
	it.createAnchor = world
	it.createEnd = endBinding{}
	it.setCursor(CursorCrosshair)
}

func (it *Interactor) moveCreate(world Point) {
	e := it.engine
	created, ok := e.store.Get(it.createID)
	if !ok {
		it.reset()
		return
	}
	if created.Type.IsConnector() {
		end := world
		it.createEnd = endBinding{}
		if target := it.topmostHit(world, func(t *Entity) bool {
			return t.ID != it.createID && !t.Type.IsConnector()
		}); target != nil {
			bounds := e.registry.Bounds(target)
			anchor := NearestAnchor(bounds, world)
			end = AnchorPoint(bounds, anchor)
			it.createEnd = endBinding{id: target.ID, anchor: anchor}
		}
		tx := math.Min(it.createAnchor.X, end.X)
		ty := math.Min(it.createAnchor.Y, end.Y)
		patch := map[string]any{"x2": end.X, "y2": end.Y}
		if it.createEnd.id != "" {
			patch["endConnectedId"] = it.createEnd.id
			patch["endAnchor"] = string(it.createEnd.anchor)
		} else {
			patch["endConnectedId"] = ""
			patch["endAnchor"] = ""
		}
		e.store.Update(it.createID, Patch{
			Transform: &TransformPatch{X: &tx, Y: &ty},
			Props:     patch,
		})
		return
	}

	box := RectFromPoints(it.createAnchor, world)
	e.store.Update(it.createID, Patch{
		Transform: &TransformPatch{X: &box.X, Y: &box.Y},
		Props:     map[string]any{"width": box.W, "height": box.H},
	})
}

// finishCreate applies the fallback size to undersized creations, selects
// the new entity and reverts to the select tool.
func (it *Interactor) finishCreate() {
	e := it.engine
	created, ok := e.store.Get(it.createID)
	if !ok {
		return
	}
	b := e.registry.Bounds(created)
	undersized := b.W < CreateSnapMin && b.H < CreateSnapMin

	if created.Type.IsConnector() {
		// A connector that ends on a live connection keeps whatever length
		// the drag produced.
		if undersized && it.createEnd.id == "" {
			w, _ := DefaultSize(created.Type)
			tx, ty := it.createAnchor.X, it.createAnchor.Y
			e.store.Update(created.ID, Patch{
				Transform: &TransformPatch{X: &tx, Y: &ty},
				Props:     map[string]any{"x2": it.createAnchor.X + w, "y2": it.createAnchor.Y},
			})
		}
	} else if undersized {
		w, h := it.fallbackSize(created)
		e.store.Update(created.ID, it.snapPatch(created, w, h))
	}

	e.selection.Select(created.ID, false)
	it.SetTool(ToolSelect)
}

// fallbackSize resolves the default size for an undersized creation. A
// frame adopts the active device preset when one is set.
func (it *Interactor) fallbackSize(created *Entity) (w, h float64) {
	if created.Type == KindFrame && it.engine.activePreset != "" {
		if p, ok := it.engine.presets.Find(it.engine.activePreset); ok {
			return p.Width, p.Height
		}
	}
	return DefaultSize(created.Type)
}

func (it *Interactor) snapPatch(created *Entity, w, h float64) Patch {
	props := map[string]any{"width": w, "height": h}
	if created.Type == KindFrame && it.engine.activePreset != "" {
		if _, ok := it.engine.presets.Find(it.engine.activePreset); ok {
			props["name"] = it.engine.activePreset
		}
	}
	return Patch{Props: props}
}

func (it *Interactor) moveResize(world Point) {
	e := it.engine
	ent, ok := e.store.Get(it.resizeID)
	if !ok {
		it.reset()
		return
	}
	b := e.registry.Bounds(ent)

	var x, y, w, h float64
	switch it.resizeHandle {
	case HandleSE:
		x, y = b.X, b.Y
		w, h = world.X-b.X, world.Y-b.Y
	case HandleNE:
		x = b.X
		w = world.X - b.X
		h = b.MaxY() - world.Y
		y = b.MaxY() - math.Max(h, ResizeMin)
	case HandleSW:
		y = b.Y
		h = world.Y - b.Y
		w = b.MaxX() - world.X
		x = b.MaxX() - math.Max(w, ResizeMin)
	case HandleNW:
		w = b.MaxX() - world.X
		h = b.MaxY() - world.Y
		x = b.MaxX() - math.Max(w, ResizeMin)
		y = b.MaxY() - math.Max(h, ResizeMin)
	default:
		return
	}
	w = math.Max(w, ResizeMin)
	h = math.Max(h, ResizeMin)

	e.store.Update(ent.ID, Patch{
		Transform: &TransformPatch{X: &x, Y: &y},
		Props:     map[string]any{"width": w, "height": h},
	})
}

func (it *Interactor) reset() {
	it.state = StateIdle
	it.createID = ""
	it.createEnd = endBinding{}
	it.dragID = ""
	it.coDrag = nil
	it.resizeID = ""
	it.resizeHandle = HandleNone
}

// anchorsLive reports whether anchor dots react to the pointer with the
// current tool.
func (it *Interactor) anchorsLive() bool {
	if it.tool == ToolSelect {
		return true
	}
	k, ok := it.tool.CreatesKind()
	return ok && k.IsConnector()
}

// refreshHover recomputes the hover target and cursor while idle.
func (it *Interactor) refreshHover(screen, world Point) {
	prev := it.hover
	kind, creating := it.tool.CreatesKind()

	// Scan anchors before clearing the hover so the previously hovered
	// entity stays a candidate, same as the press path sees it.
	if it.anchorsLive() {
		if id, anchor, ok := it.anchorUnderPointer(screen); ok {
			it.hover = Hover{ID: id, Anchor: anchor}
			it.setCursor(CursorCrosshair)
			it.finishHover(prev)
			return
		}
	}
	it.hover = Hover{}

	switch {
	case it.affordanceUnderPointer(world):
		it.setCursor(CursorPointer)

	case creating && kind.IsConnector():
		// Track the entity under the pointer so its anchor dots show up as
		// binding targets.
		if hit := it.topmostHit(world, hoverable); hit != nil {
			it.hover = Hover{ID: hit.ID}
		}
		it.setCursor(CursorCrosshair)

	case creating:
		it.setCursor(CursorCrosshair)

	default:
		if _, handle, ok := it.handleUnderPointer(screen); ok {
			it.setCursor(resizeCursor(handle))
			break
		}
		hit := it.topmostHit(world, nil)
		switch {
		case hit == nil:
			it.setCursor(CursorDefault)
		case hit.Type.IsConnector():
			it.setCursor(CursorPointer)
		case hit.Type == KindFrame:
			it.setCursor(CursorMove)
		default:
			// An unselected shape exposes its anchors too.
			if a, ok := it.anchorOn(hit, screen); ok {
				it.hover = Hover{ID: hit.ID, Anchor: a}
				it.setCursor(CursorCrosshair)
				break
			}
			it.hover = Hover{ID: hit.ID}
			it.setCursor(CursorMove)
		}
	}
	it.finishHover(prev)
}

// hoverable filters the entities whose anchor dots can be shown.
func hoverable(e *Entity) bool {
	return !e.Type.IsConnector() && e.Type != KindFrame
}

func (it *Interactor) finishHover(prev Hover) {
	if it.hover != prev {
		it.engine.markDirty()
	}
}

func (it *Interactor) updateIdleCursor() {
	if _, ok := it.tool.CreatesKind(); ok {
		it.setCursor(CursorCrosshair)
		return
	}
	it.setCursor(CursorDefault)
}

func (it *Interactor) setCursor(c Cursor) {
	if it.cursor != c {
		it.cursor = c
		it.engine.markDirty()
	}
}

func resizeCursor(h Handle) Cursor {
	if h == HandleNE || h == HandleSW {
		return CursorResizeNESW
	}
	return CursorResizeNWSE
}

// topmostHit returns the highest z-order visible entity hit at the world
// point, optionally filtered.
func (it *Interactor) topmostHit(world Point, filter func(*Entity) bool) *Entity {
	e := it.engine
	all := e.store.All()
	for i := len(all) - 1; i >= 0; i-- {
		ent := all[i]
		if !ent.Visible {
			continue
		}
		if filter != nil && !filter(ent) {
			continue
		}
		if e.registry.HitTest(ent, world) {
			return ent
		}
	}
	return nil
}

// anchorUnderPointer finds an anchor dot under the pointer. Candidates are
// the selected entities and the hovered entity, matching the dots the
// overlay actually draws.
func (it *Interactor) anchorUnderPointer(screen Point) (string, Anchor, bool) {
	e := it.engine
	candidates := e.selection.Selected()
	if it.hover.ID != "" && !slices.Contains(candidates, it.hover.ID) {
		candidates = append(candidates, it.hover.ID)
	}
	for _, id := range candidates {
		ent, ok := e.store.Get(id)
		if !ok || !ent.Visible || ent.Type.IsConnector() || ent.Type == KindFrame {
			continue
		}
		if a, ok := it.anchorOn(ent, screen); ok {
			return id, a, true
		}
	}
	return "", "", false
}

// anchorOn reports which anchor dot of ent sits under the pointer, if any.
func (it *Interactor) anchorOn(ent *Entity, screen Point) (Anchor, bool) {
	sr := it.screenBounds(ent)
	for _, a := range EdgeAnchors() {
		if AnchorPoint(sr, a).Distance(screen) <= anchorHitPx {
			return a, true
		}
	}
	return "", false
}

// handleUnderPointer finds a resize handle under the pointer. Handles engage
// only while exactly one entity is selected.
func (it *Interactor) handleUnderPointer(screen Point) (string, Handle, bool) {
	e := it.engine
	sel := e.selection.Selected()
	if len(sel) != 1 {
		return "", HandleNone, false
	}
	ent, ok := e.store.Get(sel[0])
	if !ok || !ent.Visible || ent.Type.IsConnector() {
		return "", HandleNone, false
	}
	pts := handlePoints(it.screenBounds(ent))
	for h, pt := range pts {
		if math.Max(math.Abs(screen.X-pt.X), math.Abs(screen.Y-pt.Y)) <= handleSizePx/2+handleHitPx/2 {
			return ent.ID, Handle(h + 1), true
		}
	}
	return "", HandleNone, false
}

func (it *Interactor) affordanceUnderPointer(world Point) bool {
	e := it.engine
	for _, fr := range e.store.All() {
		if fr.Type != KindFrame || !fr.Visible {
			continue
		}
		p, ok := fr.Props.(FrameProps)
		if !ok {
			continue
		}
		if _, preset := e.presets.Find(p.Name); !preset {
			continue
		}
		textBtn, imageBtn := FrameAffordances(e.registry.Bounds(fr))
		if textBtn.Contains(world) || imageBtn.Contains(world) {
			return true
		}
	}
	return false
}

func (it *Interactor) screenBounds(ent *Entity) Rect {
	e := it.engine
	b := e.registry.Bounds(ent)
	tl := e.cam.WorldToScreen(Point{X: b.X, Y: b.Y})
	return Rect{X: tl.X, Y: tl.Y, W: b.W * e.cam.Zoom, H: b.H * e.cam.Zoom}
}

// moveEntity shifts an entity by a world delta. Connectors move both raw
// endpoints so the stored geometry stays consistent with the transform.
func (it *Interactor) moveEntity(id string, dx, dy float64) {
	e := it.engine
	ent, ok := e.store.Get(id)
	if !ok {
		return
	}
	if p, isConn := ent.Props.(ConnectorProps); isConn {
		tx := ent.Transform.X + dx
		ty := ent.Transform.Y + dy
		e.store.Update(id, Patch{
			Transform: &TransformPatch{X: &tx, Y: &ty},
			Props: map[string]any{
				"x1": p.X1 + dx, "y1": p.Y1 + dy,
				"x2": p.X2 + dx, "y2": p.Y2 + dy,
			},
		})
		return
	}
	e.store.Offset(id, dx, dy)
}

// frameCoDrag computes the ids that move together with a dragged frame.
// Explicit children always follow. A plain frame additionally carries any
// unparented, unconnected entity whose bounds lie fully inside the frame.
func (it *Interactor) frameCoDrag(hit *Entity) []string {
	if hit.Type != KindFrame {
		return nil
	}
	e := it.engine
	var ids []string
	for _, ent := range e.store.All() {
		if ent.ID != hit.ID && ent.ParentID == hit.ID {
			ids = append(ids, ent.ID)
		}
	}

	p, ok := hit.Props.(FrameProps)
	if !ok {
		return ids
	}
	if _, preset := e.presets.Find(p.Name); preset {
		return ids
	}

	bounds := e.registry.Bounds(hit)
	connected := it.connectedIDs()
	for _, ent := range e.store.All() {
		if ent.ID == hit.ID || ent.ParentID != "" {
			continue
		}
		if connected[ent.ID] {
			continue
		}
		if bounds.ContainsRect(e.registry.Bounds(ent)) {
			ids = append(ids, ent.ID)
		}
	}
	return ids
}

// connectedIDs returns the set of entity ids involved in a live connection:
// the targets connector endpoints reference, and the bound connectors
// themselves.
func (it *Interactor) connectedIDs() map[string]bool {
	out := make(map[string]bool)
	for _, ent := range it.engine.store.All() {
		if p, ok := ent.Props.(ConnectorProps); ok {
			if p.StartConnectedID != "" {
				out[p.StartConnectedID] = true
				out[ent.ID] = true
			}
			if p.EndConnectedID != "" {
				out[p.EndConnectedID] = true
				out[ent.ID] = true
			}
		}
	}
	return out
}
