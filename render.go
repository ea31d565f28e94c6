package board

import (
	"math"
	"runtime/debug"

	"github.com/gogpu/board/canvas"
)

// GridConfig controls the background grid. Step is the spacing in world
// units; the grid is skipped entirely once step*zoom falls below MinPitch
// pixels, so zooming out never produces a solid wall of lines.
type GridConfig struct {
	Step     float64
	MinPitch float64
}

// DefaultGrid returns the stock grid configuration.
func DefaultGrid() GridConfig {
	return GridConfig{Step: 100, MinPitch: 10}
}

// Hover describes what the pointer is resting on while idle. Anchor is set
// when the pointer is over one of the entity's anchor dots.
type Hover struct {
	ID     string
	Anchor Anchor
}

// Handle identifies a corner resize handle.
type Handle int

// Resize handles, clockwise from the top-left.
const (
	HandleNone Handle = iota
	HandleNW
	HandleNE
	HandleSE
	HandleSW
)

// Overlay chrome sizes in screen pixels. Handles and anchor dots keep a
// constant on-screen size regardless of zoom.
const (
	handleSizePx = 8.0
	handleHitPx  = 6.0
	anchorDotPx  = 5.0
	anchorHitPx  = 8.0
	minOutlinePx = 0.5
)

// handlePoints returns the four handle centers of a screen-space rectangle
// in Handle order (NW, NE, SE, SW).
func handlePoints(r Rect) [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.MaxX(), Y: r.Y},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.X, Y: r.MaxY()},
	}
}

// Compositor draws one frame of the scene: background, grid, entities in
// z-order with frame clipping and viewport culling, then the screen-space
// selection and hover overlays.
type Compositor struct {
	Registry *Registry
	Palette  Palette
	Grid     GridConfig
	Images   *ImageCache
	Presets  FramePresets
}

// Render draws the scene onto the canvas. selected is the ordered selection
// and hover the current idle-pointer state; both only affect overlay
// chrome. Per-entity draw failures are recovered and logged, never fatal to
// the frame.
func (c *Compositor) Render(cv canvas.Canvas, cam Camera, store *Store, selected []string, hover Hover) {
	wpx, hpx := cv.Size()
	w, h := float64(wpx), float64(hpx)

	cv.Clear(c.Palette.Background)
	c.drawGrid(cv, cam, w, h)

	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	// Partition one pass: root frames, their children, root connectors,
	// root shapes. Children whose parent is missing or not a frame fall
	// back to the root shape pass, unclipped.
	var frames, connectors, shapes []*Entity
	children := make(map[string][]*Entity)
	for _, e := range store.All() {
		if !e.Visible {
			continue
		}
		if e.ParentID != "" {
			if parent, ok := store.Get(e.ParentID); ok && parent.Type == KindFrame {
				children[e.ParentID] = append(children[e.ParentID], e)
				continue
			}
		}
		switch {
		case e.Type == KindFrame:
			frames = append(frames, e)
		case e.Type.IsConnector():
			connectors = append(connectors, e)
		default:
			shapes = append(shapes, e)
		}
	}

	visible := cam.VisibleWorld(w, h)
	culled := 0

	cv.Push()
	cv.Scale(cam.Zoom, cam.Zoom)
	cv.Translate(-cam.X, -cam.Y)

	info := DrawInfo{Zoom: cam.Zoom, Images: c.Images, Palette: &c.Palette}

	for _, frame := range frames {
		fb := c.Registry.Bounds(frame)
		if !fb.Intersects(visible) {
			culled += 1 + len(children[frame.ID])
			continue
		}
		c.drawEntity(cv, frame, &info, selectedSet)

		kids := children[frame.ID]
		if len(kids) == 0 {
			continue
		}
		cv.Push()
		if _, preset := c.framePreset(frame); preset {
			cv.ClipRoundedRect(fb.X, fb.Y, fb.W, fb.H, 12)
		} else {
			cv.ClipRect(fb.X, fb.Y, fb.W, fb.H)
		}
		for _, kid := range kids {
			if !c.Registry.Bounds(kid).Intersects(visible) {
				culled++
				continue
			}
			c.drawEntity(cv, kid, &info, selectedSet)
		}
		cv.Pop()
	}

	for _, e := range connectors {
		if !c.Registry.Bounds(e).Expand(HitTolerance).Intersects(visible) {
			culled++
			continue
		}
		c.drawEntity(cv, e, &info, selectedSet)
	}
	for _, e := range shapes {
		if !c.Registry.Bounds(e).Intersects(visible) {
			culled++
			continue
		}
		c.drawEntity(cv, e, &info, selectedSet)
	}

	cv.Pop()

	if culled > 0 {
		Logger().Debug("culled offscreen entities", "count", culled)
	}

	c.drawOverlay(cv, cam, store, selected, selectedSet, hover)
}

// framePreset reports whether the frame's name matches a device preset.
// The compositor only needs the yes/no answer for clip shape selection; the
// definition closure owns the preset table, so this re-derives it from the
// drawn geometry.
func (c *Compositor) framePreset(e *Entity) (FrameProps, bool) {
	p, ok := e.Props.(FrameProps)
	if !ok {
		return FrameProps{}, false
	}
	_, preset := c.presets().Find(p.Name)
	return p, preset
}

func (c *Compositor) presets() FramePresets {
	if c.Presets != nil {
		return c.Presets
	}
	return DefaultFramePresets()
}

func (c *Compositor) drawEntity(cv canvas.Canvas, e *Entity, info *DrawInfo, selected map[string]bool) {
	def, ok := c.Registry.Lookup(e.Type)
	if !ok || def.Draw == nil {
		Logger().Debug("no definition for entity", "type", e.Type, "id", e.ID)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("entity draw panic",
				"type", e.Type, "id", e.ID, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	ei := *info
	ei.Selected = selected[e.ID]
	def.Draw(cv, e, &ei)
}

func (c *Compositor) drawGrid(cv canvas.Canvas, cam Camera, w, h float64) {
	step := c.Grid.Step
	if step <= 0 {
		return
	}
	pitch := step * cam.Zoom
	if pitch < c.Grid.MinPitch {
		return
	}
	cv.SetColor(c.Palette.Grid)
	cv.SetLineWidth(1)
	for wx := math.Ceil(cam.X/step) * step; ; wx += step {
		sx := (wx - cam.X) * cam.Zoom
		if sx > w {
			break
		}
		cv.DrawLine(sx, 0, sx, h)
		cv.Stroke()
	}
	for wy := math.Ceil(cam.Y/step) * step; ; wy += step {
		sy := (wy - cam.Y) * cam.Zoom
		if sy > h {
			break
		}
		cv.DrawLine(0, sy, w, sy)
		cv.Stroke()
	}
}

// drawOverlay renders the screen-space chrome: selection outlines with
// corner handles, anchor dots on selected shapes, and the hovered entity's
// anchors with the active one highlighted.
func (c *Compositor) drawOverlay(cv canvas.Canvas, cam Camera, store *Store, selected []string, selectedSet map[string]bool, hover Hover) {
	for _, id := range selected {
		e, ok := store.Get(id)
		if !ok || e.Type.IsConnector() {
			continue
		}
		sr := c.screenBounds(cam, e)
		if sr.W < minOutlinePx && sr.H < minOutlinePx {
			continue
		}

		cv.SetColor(c.Palette.Accent)
		cv.SetLineWidth(1.5)
		cv.DrawRectangle(sr.X, sr.Y, sr.W, sr.H)
		cv.Stroke()

		for _, pt := range handlePoints(sr) {
			cv.DrawRectangle(pt.X-handleSizePx/2, pt.Y-handleSizePx/2, handleSizePx, handleSizePx)
			cv.SetColor(c.Palette.HandleFill)
			cv.FillPreserve()
			cv.SetColor(c.Palette.Accent)
			cv.SetLineWidth(1)
			cv.Stroke()
		}

		if e.Type != KindFrame {
			c.drawAnchors(cv, sr, hoverAnchorFor(hover, id))
		}
	}

	if hover.ID != "" && !selectedSet[hover.ID] {
		if e, ok := store.Get(hover.ID); ok && !e.Type.IsConnector() && e.Type != KindFrame {
			c.drawAnchors(cv, c.screenBounds(cam, e), hover.Anchor)
		}
	}
}

func hoverAnchorFor(hover Hover, id string) Anchor {
	if hover.ID == id {
		return hover.Anchor
	}
	return ""
}

func (c *Compositor) drawAnchors(cv canvas.Canvas, sr Rect, active Anchor) {
	for _, a := range EdgeAnchors() {
		pt := AnchorPoint(sr, a)
		cv.DrawEllipse(pt.X, pt.Y, anchorDotPx, anchorDotPx)
		if a == active {
			cv.SetColor(c.Palette.Accent)
			cv.Fill()
			continue
		}
		cv.SetColor(c.Palette.HandleFill)
		cv.FillPreserve()
		cv.SetColor(c.Palette.Accent)
		cv.SetLineWidth(1)
		cv.Stroke()
	}
}

// screenBounds converts an entity's world bounds to screen space.
func (c *Compositor) screenBounds(cam Camera, e *Entity) Rect {
	b := c.Registry.Bounds(e)
	tl := cam.WorldToScreen(Point{X: b.X, Y: b.Y})
	return Rect{X: tl.X, Y: tl.Y, W: b.W * cam.Zoom, H: b.H * cam.Zoom}
}
