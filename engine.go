package board

import (
	"fmt"
	"image"

	"github.com/gogpu/board/canvas"
)

// Engine owns one board scene end to end: camera, entity store, event bus,
// type registry, feature modules, compositor, surface and interaction
// state. It is single-threaded by contract; the host drives it from its UI
// goroutine and calls Tick once per frame.
//
//	eng, err := board.New(1280, 800)
//	if err != nil { ... }
//	defer eng.Close()
//
//	eng.SetTool(board.ToolRectangle)
//	eng.PointerDown(board.PointerEvent{Pos: board.Pt(100, 100)})
//	eng.PointerMove(board.PointerEvent{Pos: board.Pt(300, 250)})
//	eng.PointerUp(board.PointerEvent{Pos: board.Pt(300, 250)})
//
//	if eng.Tick() {
//	    // surface holds fresh pixels
//	}
type Engine struct {
	width  int
	height int
	dpr    float64

	cam        Camera
	bus        *Bus
	store      *Store
	registry   *Registry
	modules    *Modules
	selection  *Selection
	connection *Connection
	comp       *Compositor
	images     *ImageCache
	inter      *Interactor

	surface    canvas.Canvas
	ownSurface bool

	presets      FramePresets
	activePreset string

	dirty  bool
	closed bool
}

// New creates an engine with a viewport of the given size in logical
// pixels. Unless WithCanvas injects a surface, a software surface is
// allocated.
func New(width, height int, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		width:   width,
		height:  height,
		dpr:     o.dpr,
		cam:     NewCamera(),
		bus:     NewBus(),
		presets: o.presets,
		images:  NewImageCache(),
		dirty:   true,
	}
	e.store = NewStore(e.bus)
	e.registry = NewRegistry()
	RegisterBuiltins(e.registry, e.presets)

	e.comp = &Compositor{
		Registry: e.registry,
		Palette:  o.palette,
		Grid:     o.grid,
		Images:   e.images,
		Presets:  e.presets,
	}

	host := &Host{Store: e.store, Bus: e.bus}
	e.modules = NewModules(host)
	if !o.noDefaultMods {
		e.selection = NewSelection()
		e.connection = NewConnection(e.registry)
		if err := e.modules.Register(e.selection); err != nil {
			return nil, err
		}
		if err := e.modules.Register(e.connection); err != nil {
			return nil, err
		}
	}
	for _, m := range o.modules {
		if err := e.modules.Register(m); err != nil {
			Logger().Warn("optional module skipped", "module", m.Name(), "error", err)
		}
	}

	if o.surface != nil {
		e.surface = o.surface
	} else {
		ctx, err := canvas.NewContext(width, height, canvas.WithPixelRatio(o.dpr))
		if err != nil {
			return nil, fmt.Errorf("board: surface: %w", err)
		}
		e.surface = ctx
		e.ownSurface = true
	}

	e.inter = newInteractor(e)

	// Every scene-affecting event schedules a repaint.
	for _, kind := range []EventKind{
		EventEntityCreated, EventEntityUpdated, EventEntityDeleted,
		EventSelectionChanged, EventSceneChanged,
	} {
		e.bus.Subscribe(kind, func(Event) { e.markDirty() })
	}

	return e, nil
}

// Close tears down the engine: modules are destroyed in reverse order, all
// bus subscriptions are dropped, and the owned surface is released. Close
// is idempotent; a closed engine ignores input and Tick is a no-op.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.modules.Close()
	e.bus.Clear()
	if e.ownSurface {
		if c, ok := e.surface.(*canvas.Context); ok {
			return c.Close()
		}
	}
	return nil
}

// Closed reports whether Close has run.
func (e *Engine) Closed() bool { return e.closed }

// Surface returns the drawing surface the engine renders to.
func (e *Engine) Surface() canvas.Canvas { return e.surface }

// Store returns the entity store.
func (e *Engine) Store() *Store { return e.store }

// Bus returns the event bus.
func (e *Engine) Bus() *Bus { return e.bus }

// Registry returns the type registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Images returns the image cache backing image entities.
func (e *Engine) Images() *ImageCache { return e.images }

// Selection returns the selection module, or nil when the engine was built
// with WithoutDefaultModules.
func (e *Engine) Selection() *Selection { return e.selection }

// Modules returns the module set.
func (e *Engine) Modules() *Modules { return e.modules }

// Camera returns the current camera.
func (e *Engine) Camera() Camera { return e.cam }

// SetCamera replaces the camera, clamping zoom into [MinZoom, MaxZoom].
// Emits EventZoomChanged when the zoom changed.
func (e *Engine) SetCamera(c Camera) {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
	if c == e.cam {
		return
	}
	zoomChanged := c.Zoom != e.cam.Zoom
	e.cam = c
	if zoomChanged {
		e.bus.Emit(EventZoomChanged, c.Zoom)
	}
	e.markDirty()
}

func (e *Engine) setCamera(c Camera) { e.SetCamera(c) }

// Width returns the viewport width in logical pixels.
func (e *Engine) Width() int { return e.width }

// Height returns the viewport height in logical pixels.
func (e *Engine) Height() int { return e.height }

// PixelRatio returns the device pixel ratio of the surface.
func (e *Engine) PixelRatio() float64 { return e.dpr }

// Resize adjusts the viewport to a new logical size and device pixel
// ratio. The owned software surface is reallocated; injected surfaces are
// resized when they support it.
func (e *Engine) Resize(width, height int, dpr float64) error {
	if e.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if dpr <= 0 {
		dpr = 1
	}
	e.width, e.height, e.dpr = width, height, dpr

	type resizer interface {
		Resize(width, height int, pixelRatio float64) error
	}
	if r, ok := e.surface.(resizer); ok {
		if err := r.Resize(width, height, dpr); err != nil {
			return fmt.Errorf("board: resize: %w", err)
		}
	}
	e.markDirty()
	return nil
}

// SetFramePreset selects the device preset applied to frames created from
// now on. An empty name clears the preset. Unknown names are rejected.
func (e *Engine) SetFramePreset(name string) error {
	if name == "" {
		e.activePreset = ""
		return nil
	}
	if _, ok := e.presets.Find(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	e.activePreset = name
	return nil
}

// ActivePreset returns the device preset frames are created with, or the
// empty string.
func (e *Engine) ActivePreset() string { return e.activePreset }

// FramePresets returns the preset table.
func (e *Engine) FramePresets() FramePresets { return e.presets }

// markDirty schedules a repaint on the next Tick.
func (e *Engine) markDirty() { e.dirty = true }

// RequestRepaint schedules a repaint on the next Tick.
func (e *Engine) RequestRepaint() { e.markDirty() }

// Dirty reports whether a repaint is scheduled.
func (e *Engine) Dirty() bool { return e.dirty }

// Tick renders at most one frame: it draws only when a repaint is
// scheduled and reports whether it drew.
func (e *Engine) Tick() bool {
	if e.closed || !e.dirty {
		return false
	}
	e.renderFrame()
	e.dirty = false
	return true
}

// Flush renders a frame unconditionally.
func (e *Engine) Flush() {
	if e.closed {
		return
	}
	e.renderFrame()
	e.dirty = false
}

func (e *Engine) renderFrame() {
	e.comp.Render(e.surface, e.cam, e.store, e.selectedIDs(), e.inter.hover)
}

func (e *Engine) selectedIDs() []string {
	if e.selection == nil {
		return nil
	}
	return e.selection.Selected()
}

// RenderImage renders the scene into a fresh image, independent of the
// engine's own surface. Used for headless export.
func (e *Engine) RenderImage() (image.Image, error) {
	ctx, err := canvas.NewContext(e.width, e.height, canvas.WithPixelRatio(e.dpr))
	if err != nil {
		return nil, fmt.Errorf("board: render image: %w", err)
	}
	defer ctx.Close()
	e.comp.Render(ctx, e.cam, e.store, e.selectedIDs(), Hover{})
	return ctx.Image(), nil
}

// SavePNG renders the scene and writes it to a PNG file.
func (e *Engine) SavePNG(path string) error {
	img, err := e.RenderImage()
	if err != nil {
		return err
	}
	return canvas.SavePNG(path, img)
}

// Input surface. All methods are no-ops on a closed engine.

// PointerDown feeds a pointer press.
func (e *Engine) PointerDown(ev PointerEvent) {
	if !e.closed {
		e.inter.PointerDown(ev)
	}
}

// PointerMove feeds a pointer move.
func (e *Engine) PointerMove(ev PointerEvent) {
	if !e.closed {
		e.inter.PointerMove(ev)
	}
}

// PointerUp feeds a pointer release.
func (e *Engine) PointerUp(ev PointerEvent) {
	if !e.closed {
		e.inter.PointerUp(ev)
	}
}

// DoubleClick feeds a double click.
func (e *Engine) DoubleClick(ev PointerEvent) {
	if !e.closed {
		e.inter.DoubleClick(ev)
	}
}

// Wheel feeds a scroll sample.
func (e *Engine) Wheel(ev WheelEvent) {
	if !e.closed {
		e.inter.Wheel(ev)
	}
}

// Key feeds a key press.
func (e *Engine) Key(k Key) {
	if !e.closed {
		e.inter.Key(k)
	}
}

// SetTool activates a tool.
func (e *Engine) SetTool(t Tool) {
	if !e.closed {
		e.inter.SetTool(t)
	}
}

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.inter.Tool() }

// Cursor returns the cursor the host should display.
func (e *Engine) Cursor() Cursor { return e.inter.Cursor() }

// State returns the interaction state.
func (e *Engine) State() State { return e.inter.State() }

// SetEntityText commits text into a sticky note or text entity. This is
// the return path for the host's text editing overlay.
func (e *Engine) SetEntityText(id, text string) {
	ent, ok := e.store.Get(id)
	if !ok {
		return
	}
	switch ent.Props.(type) {
	case StickyProps, TextProps:
		e.store.Update(id, Patch{Props: map[string]any{"text": text}})
	default:
		Logger().Debug("text commit on non-text entity", "id", id, "type", ent.Type)
	}
}

// AddImage creates an image entity for a previously registered source.
// With a frame id the image is fitted into the frame (preserving aspect
// ratio, never upscaling) and parented to it; otherwise it lands centered
// in the viewport. This is the return path for the host's image picker.
func (e *Engine) AddImage(src string, frameID string) (*Entity, error) {
	if e.closed {
		return nil, ErrClosed
	}
	w, h := 200.0, 200.0
	if img, ok := e.images.Lookup(src); ok {
		ib := img.Bounds()
		if ib.Dx() > 0 && ib.Dy() > 0 {
			w, h = float64(ib.Dx()), float64(ib.Dy())
		}
	}

	var opts []CreateOption
	if frameID != "" {
		frame, ok := e.store.Get(frameID)
		if ok && frame.Type == KindFrame {
			fb := e.registry.Bounds(frame).Expand(-16)
			scale := 1.0
			if w > fb.W || h > fb.H {
				scale = min(fb.W/w, fb.H/h)
			}
			w *= scale
			h *= scale
			c := fb.Center()
			opts = append(opts,
				At(c.X-w/2, c.Y-h/2),
				WithParent(frameID),
			)
		} else {
			Logger().Debug("image target frame missing", "frame", frameID)
			frameID = ""
		}
	}
	if frameID == "" {
		c := e.cam.VisibleWorld(float64(e.width), float64(e.height)).Center()
		opts = append(opts, At(c.X-w/2, c.Y-h/2))
	}

	opts = append(opts, WithProps(ImageProps{Width: w, Height: h, Src: src}))
	return e.store.Create(KindImage, opts...)
}
