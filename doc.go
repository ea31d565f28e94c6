// Package board provides an embeddable infinite-canvas scene engine for Go.
//
// # Overview
//
// board is a Pure Go whiteboard/diagram engine designed to integrate with
// the GoGPU ecosystem. It owns the world-space object model, a per-type
// rendering and hit-testing registry, an event bus with pluggable feature
// modules, a pointer interaction state machine, and a dirty-flag driven
// compositor. The host application supplies the window, the input events
// and the surrounding UI; the engine turns those into scene mutations and
// pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/board"
//
//	// Create an engine with a 1280x800 viewport
//	eng, err := board.New(1280, 800)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	// Create entities directly...
//	eng.Store().Create(board.KindSticky, board.At(120, 80))
//
//	// ...or drive the interaction engine with pointer input
//	eng.SetTool(board.ToolRectangle)
//	eng.PointerDown(board.PointerEvent{Pos: board.Pt(100, 100)})
//	eng.PointerMove(board.PointerEvent{Pos: board.Pt(300, 250)})
//	eng.PointerUp(board.PointerEvent{Pos: board.Pt(300, 250)})
//
//	// Render when dirty, save to PNG
//	eng.Tick()
//	eng.SavePNG("scene.png")
//
// # Architecture
//
// The engine is organized into:
//   - Data model: Entity, Transform, typed Props payloads, Camera
//   - Store: ordered entity map emitting lifecycle events
//   - Bus: synchronous event bus with per-listener fault isolation
//   - Registry: per-kind Definition (bounds, hit test, draw)
//   - Modules: Selection and Connection, plus host-registered ones
//   - Compositor: grid, camera transform, z-order, frame clipping, culling
//   - Interactor: Idle/Panning/Creating/Dragging/Resizing state machine
//   - canvas/: the immediate-mode drawing surface (software rasterized)
//
// # Coordinate System
//
// World space uses standard computer graphics coordinates: origin at the
// top-left, X increasing right, Y increasing down. The Camera maps world
// space to screen pixels; one world unit is one pixel at zoom 1.
//
// # Concurrency
//
// The engine is single-threaded by contract. All calls happen on the
// host's UI goroutine; events dispatch synchronously during mutation. The
// only concurrency-safe entry point is SetLogger.
package board

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
