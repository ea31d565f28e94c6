package board

import "github.com/gogpu/board/canvas"

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default engine with the stock palette and modules
//	eng, err := board.New(1280, 800)
//
//	// Custom background and grid
//	eng, err := board.New(1280, 800,
//	    board.WithBackground("#0f172a"),
//	    board.WithGrid(board.GridConfig{Step: 50, MinPitch: 8}),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	palette        Palette
	grid           GridConfig
	presets        FramePresets
	surface        canvas.Canvas
	modules        []Module
	noDefaultMods  bool
	dpr            float64
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		palette: DefaultPalette(),
		grid:    DefaultGrid(),
		presets: DefaultFramePresets(),
		dpr:     1,
	}
}

// WithBackground sets the canvas background color as a hex string.
// Malformed strings keep the default background.
func WithBackground(hex string) Option {
	return func(o *engineOptions) {
		o.palette.Background = ColorOr(hex, o.palette.Background)
	}
}

// WithPalette replaces the whole chrome palette.
func WithPalette(p Palette) Option {
	return func(o *engineOptions) {
		o.palette = p
	}
}

// WithGrid configures the background grid. A zero Step disables it.
func WithGrid(g GridConfig) Option {
	return func(o *engineOptions) {
		o.grid = g
	}
}

// WithFramePresets replaces the device preset table consulted by frame
// rendering and frame creation.
func WithFramePresets(ps FramePresets) Option {
	return func(o *engineOptions) {
		o.presets = ps
	}
}

// WithCanvas injects a custom drawing surface, for example a
// canvas.Recorder in tests. The engine then skips allocating its own
// software surface, and Resize only adjusts the camera viewport.
func WithCanvas(cv canvas.Canvas) Option {
	return func(o *engineOptions) {
		o.surface = cv
	}
}

// WithModule registers an additional feature module after the default
// ones.
func WithModule(m Module) Option {
	return func(o *engineOptions) {
		o.modules = append(o.modules, m)
	}
}

// WithoutDefaultModules skips the selection and connection modules. The
// engine is then a bare store/renderer shell; interaction features that
// depend on selection degrade to no-ops.
func WithoutDefaultModules() Option {
	return func(o *engineOptions) {
		o.noDefaultMods = true
	}
}

// WithDevicePixelRatio sets the initial device pixel ratio of the software
// surface. The ratio can be changed later with Engine.Resize.
func WithDevicePixelRatio(dpr float64) Option {
	return func(o *engineOptions) {
		if dpr > 0 {
			o.dpr = dpr
		}
	}
}
