package board

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/board/canvas"
)

func TestNew_InvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d) err = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	eng := newTestEngine(t)

	if cam := eng.Camera(); cam.X != 0 || cam.Y != 0 || cam.Zoom != 1 {
		t.Errorf("camera = %+v, want identity", cam)
	}
	if eng.Tool() != ToolSelect {
		t.Errorf("tool = %q, want select", eng.Tool())
	}
	if eng.State() != StateIdle {
		t.Errorf("state = %v, want idle", eng.State())
	}
	if !eng.Dirty() {
		t.Error("new engine is not dirty")
	}
	if eng.Width() != 800 || eng.Height() != 600 {
		t.Errorf("viewport = %dx%d, want 800x600", eng.Width(), eng.Height())
	}
	if _, ok := eng.Modules().Get(ModuleSelection); !ok {
		t.Error("selection module not registered")
	}
	if _, ok := eng.Modules().Get(ModuleConnection); !ok {
		t.Error("connection module not registered")
	}
}

func TestEngine_TickLifecycle(t *testing.T) {
	eng := newTestEngine(t)

	if !eng.Tick() {
		t.Fatal("first Tick did not render")
	}
	if eng.Tick() {
		t.Fatal("second Tick rendered without changes")
	}

	eng.Store().Create(KindRectangle, At(10, 10))
	if !eng.Dirty() {
		t.Fatal("store mutation did not mark the engine dirty")
	}
	if !eng.Tick() {
		t.Fatal("Tick after a mutation did not render")
	}
	if eng.Tick() {
		t.Fatal("extra Tick rendered again")
	}
}

func TestEngine_CloseIdempotent(t *testing.T) {
	eng, err := New(800, 600, WithCanvas(canvas.NewRecorder(800, 600)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	eng.Store().Create(KindRectangle)

	if err := eng.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if !eng.Closed() {
		t.Error("Closed() = false after Close")
	}
	if eng.Tick() {
		t.Error("closed engine rendered")
	}

	// Input on a closed engine is dropped.
	eng.SetTool(ToolRectangle)
	eng.PointerDown(PointerEvent{Pos: Pt(100, 100)})
	eng.PointerUp(PointerEvent{Pos: Pt(100, 100)})
	if eng.Store().Len() != 1 {
		t.Error("closed engine accepted input")
	}

	if _, err := eng.AddImage("x", ""); !errors.Is(err, ErrClosed) {
		t.Errorf("AddImage err = %v, want ErrClosed", err)
	}
	if err := eng.Resize(100, 100, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize err = %v, want ErrClosed", err)
	}
}

func TestEngine_SetCameraClampsZoom(t *testing.T) {
	eng := newTestEngine(t)

	eng.SetCamera(Camera{X: 10, Y: 20, Zoom: 100})
	if z := eng.Camera().Zoom; z != MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", z, MaxZoom)
	}

	eng.SetCamera(Camera{Zoom: 0.0001})
	if z := eng.Camera().Zoom; z != MinZoom {
		t.Errorf("zoom = %v, want clamped to %v", z, MinZoom)
	}
}

func TestEngine_SetCameraEvents(t *testing.T) {
	eng := newTestEngine(t)
	events := 0
	eng.Bus().Subscribe(EventZoomChanged, func(Event) { events++ })

	eng.SetCamera(Camera{X: 50, Y: 50, Zoom: 1}) // pan only
	if events != 0 {
		t.Error("pan emitted EventZoomChanged")
	}
	eng.SetCamera(Camera{X: 50, Y: 50, Zoom: 2})
	if events != 1 {
		t.Errorf("zoom change emitted %d events, want 1", events)
	}
	eng.SetCamera(Camera{X: 50, Y: 50, Zoom: 2}) // identical camera
	if events != 1 {
		t.Error("identical camera emitted an event")
	}
}

func TestEngine_Resize(t *testing.T) {
	eng := newTestEngine(t)

	if err := eng.Resize(1024, 768, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if eng.Width() != 1024 || eng.Height() != 768 {
		t.Errorf("viewport = %dx%d, want 1024x768", eng.Width(), eng.Height())
	}
	if eng.PixelRatio() != 2 {
		t.Errorf("pixel ratio = %v, want 2", eng.PixelRatio())
	}
	if !eng.Dirty() {
		t.Error("resize did not schedule a repaint")
	}

	if err := eng.Resize(0, 10, 1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 10) err = %v, want ErrInvalidSize", err)
	}
}

func TestEngine_SetFramePreset(t *testing.T) {
	eng := newTestEngine(t)

	if err := eng.SetFramePreset("Tablet"); err != nil {
		t.Fatalf("SetFramePreset: %v", err)
	}
	if eng.ActivePreset() != "Tablet" {
		t.Errorf("ActivePreset = %q, want Tablet", eng.ActivePreset())
	}

	if err := eng.SetFramePreset("Watch"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("unknown preset err = %v, want ErrUnknownPreset", err)
	}
	if eng.ActivePreset() != "Tablet" {
		t.Error("failed preset change clobbered the active preset")
	}

	if err := eng.SetFramePreset(""); err != nil {
		t.Fatalf("clearing preset: %v", err)
	}
	if eng.ActivePreset() != "" {
		t.Error("empty name did not clear the preset")
	}
}

func TestEngine_PresetFrameCreation(t *testing.T) {
	eng := newTestEngine(t)
	if err := eng.SetFramePreset("Mobile"); err != nil {
		t.Fatalf("SetFramePreset: %v", err)
	}

	eng.SetTool(ToolFrame)
	eng.PointerDown(PointerEvent{Pos: Pt(100, 100)})
	eng.PointerUp(PointerEvent{Pos: Pt(100, 100)}) // no drag, snaps to preset

	frame := eng.Store().All()[0]
	p := frame.Props.(FrameProps)
	if p.Name != "Mobile" {
		t.Errorf("frame name = %q, want Mobile", p.Name)
	}
	if p.Width != 390 || p.Height != 844 {
		t.Errorf("frame size = %vx%v, want the Mobile preset", p.Width, p.Height)
	}
}

func TestEngine_AddImageCentersInViewport(t *testing.T) {
	eng := newTestEngine(t)

	e, err := eng.AddImage("missing.png", "")
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	p := e.Props.(ImageProps)
	if p.Width != 200 || p.Height != 200 {
		t.Errorf("unregistered size = %vx%v, want 200x200", p.Width, p.Height)
	}
	// Viewport center (400, 300) minus half the image.
	if e.Transform.X != 300 || e.Transform.Y != 200 {
		t.Errorf("position = (%v, %v), want (300, 200)", e.Transform.X, e.Transform.Y)
	}
}

func TestEngine_AddImageUsesIntrinsicSize(t *testing.T) {
	eng := newTestEngine(t)
	eng.Images().Register("photo", image.NewRGBA(image.Rect(0, 0, 100, 50)))

	e, err := eng.AddImage("photo", "")
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	p := e.Props.(ImageProps)
	if p.Width != 100 || p.Height != 50 {
		t.Errorf("size = %vx%v, want intrinsic 100x50", p.Width, p.Height)
	}
	if p.Src != "photo" {
		t.Errorf("Src = %q, want photo", p.Src)
	}
}

func TestEngine_AddImageFitsFrame(t *testing.T) {
	eng := newTestEngine(t)
	frame, _ := eng.Store().Create(KindFrame, At(0, 0),
		WithProps(FrameProps{Width: 400, Height: 300, Name: "Custom"}))
	eng.Images().Register("small", image.NewRGBA(image.Rect(0, 0, 200, 100)))

	e, err := eng.AddImage("small", frame.ID)
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if e.ParentID != frame.ID {
		t.Errorf("ParentID = %q, want the frame", e.ParentID)
	}
	p := e.Props.(ImageProps)
	if p.Width != 200 || p.Height != 100 {
		t.Errorf("size = %vx%v, want 200x100 (needless downscale)", p.Width, p.Height)
	}
	// Centered in the frame interior.
	if e.Transform.X != 100 || e.Transform.Y != 100 {
		t.Errorf("position = (%v, %v), want (100, 100)", e.Transform.X, e.Transform.Y)
	}
}

func TestEngine_AddImageDownscalesToFrame(t *testing.T) {
	eng := newTestEngine(t)
	frame, _ := eng.Store().Create(KindFrame, At(0, 0),
		WithProps(FrameProps{Width: 400, Height: 300, Name: "Custom"}))
	eng.Images().Register("huge", image.NewRGBA(image.Rect(0, 0, 3680, 1340)))

	e, err := eng.AddImage("huge", frame.ID)
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	p := e.Props.(ImageProps)
	// The interior is 368x268; width is the binding constraint.
	if !near(p.Width, 368) || !near(p.Height, 134) {
		t.Errorf("size = %vx%v, want 368x134", p.Width, p.Height)
	}
}

func TestEngine_AddImageMissingFrame(t *testing.T) {
	eng := newTestEngine(t)

	e, err := eng.AddImage("x", "ghost")
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if e.ParentID != "" {
		t.Errorf("ParentID = %q, want unparented fallback", e.ParentID)
	}
	if e.Transform.X != 300 || e.Transform.Y != 200 {
		t.Errorf("position = (%v, %v), want viewport center placement", e.Transform.X, e.Transform.Y)
	}
}

func TestEngine_SetEntityText(t *testing.T) {
	eng := newTestEngine(t)
	sticky, _ := eng.Store().Create(KindSticky)
	rect, _ := eng.Store().Create(KindRectangle)

	eng.SetEntityText(sticky.ID, "updated")
	if got := sticky.Props.(StickyProps).Text; got != "updated" {
		t.Errorf("sticky text = %q, want updated", got)
	}

	before := rect.Props
	eng.SetEntityText(rect.ID, "nope")
	if rect.Props != before {
		t.Error("text commit mutated a non-text entity")
	}

	eng.SetEntityText("ghost", "x") // unknown id is silent
}

func TestEngine_DuplicateModuleRejected(t *testing.T) {
	eng := newTestEngine(t)

	err := eng.Modules().Register(NewSelection())
	if !errors.Is(err, ErrModuleExists) {
		t.Errorf("duplicate register err = %v, want ErrModuleExists", err)
	}
}

func TestEngine_ModuleInitFailureIsolated(t *testing.T) {
	eng, err := New(800, 600,
		WithCanvas(canvas.NewRecorder(800, 600)),
		WithModule(failingModule{}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close()

	if _, ok := eng.Modules().Get("failing"); ok {
		t.Error("failing module was installed")
	}
	// The engine still works.
	if _, err := eng.Store().Create(KindRectangle); err != nil {
		t.Errorf("Create after failed module: %v", err)
	}
}

type failingModule struct{}

func (failingModule) Name() string       { return "failing" }
func (failingModule) Init(h *Host) error { panic("init blew up") }
func (failingModule) Destroy()           {}

func TestEngine_WithoutDefaultModules(t *testing.T) {
	eng, err := New(800, 600,
		WithCanvas(canvas.NewRecorder(800, 600)),
		WithoutDefaultModules(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close()

	if eng.Selection() != nil {
		t.Error("Selection() is non-nil without default modules")
	}
	if _, ok := eng.Modules().Get(ModuleSelection); ok {
		t.Error("selection module registered despite the option")
	}

	// Interaction degrades to no-ops instead of crashing.
	eng.Store().Create(KindRectangle, At(100, 100))
	eng.PointerDown(PointerEvent{Pos: Pt(150, 150)})
	eng.PointerMove(PointerEvent{Pos: Pt(200, 200)})
	eng.PointerUp(PointerEvent{Pos: Pt(200, 200)})
	eng.Key(KeyDelete)

	if eng.Store().Len() != 1 {
		t.Error("delete without a selection module removed entities")
	}
	if !eng.Tick() {
		t.Error("render failed without default modules")
	}
}

func TestEngine_RenderImage(t *testing.T) {
	eng, err := New(64, 48)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close()
	eng.Store().Create(KindRectangle, At(8, 8), WithProps(RectangleProps{
		Width: 32, Height: 24, Fill: "#ff0000", Stroke: "#000000",
	}))

	img, err := eng.RenderImage()
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("image size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}

	// Center of the rectangle is solid red, far corner is background.
	r, g, _, _ := img.At(24, 20).RGBA()
	if r < 0xf000 || g > 0x1000 {
		t.Errorf("rect interior = %v, want red", img.At(24, 20))
	}
}

func TestEngine_RenderImageHonorsPixelRatio(t *testing.T) {
	eng, err := New(64, 48, WithDevicePixelRatio(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close()

	img, err := eng.RenderImage()
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 128 || b.Dy() != 96 {
		t.Errorf("image size = %dx%d, want 128x96", b.Dx(), b.Dy())
	}
}
