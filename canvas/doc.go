// Package canvas provides the 2D drawing layer for the board engine.
//
// The package defines the Canvas interface consumed by the renderer and two
// implementations. Context is a software rasterizer backed by an image.RGBA,
// built on golang.org/x/image/vector. Recorder captures calls instead of
// producing pixels and backs tests that assert on draw order and state.
//
// # Coordinate System
//
// All drawing coordinates are in user space. The current transform, built
// with Translate and Scale, maps user space to device pixels. The Y axis
// points down. Stroke widths and dash lengths are user-space units and scale
// with the transform.
//
// # Text
//
// Text is shaped with go-text/typesetting and filled from glyph outlines
// rather than pre-rasterized bitmaps, so glyph edges stay sharp under any
// transform. The embedded Go Regular face is the only font.
//
// Context is not safe for concurrent use. Independent Contexts may be used
// from different goroutines.
package canvas
