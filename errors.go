package board

import "errors"

// Common errors returned by the engine.
var (
	// ErrClosed is returned when an operation is attempted on a closed engine.
	ErrClosed = errors.New("board: engine is closed")

	// ErrInvalidScene is returned by Import when the payload is not a valid
	// scene document. The current scene is left untouched.
	ErrInvalidScene = errors.New("board: invalid scene document")

	// ErrUnknownType is returned when an entity references a type tag that
	// has no registered definition.
	ErrUnknownType = errors.New("board: unknown entity type")

	// ErrModuleExists is returned when a module with the same name is
	// already registered.
	ErrModuleExists = errors.New("board: module already registered")

	// ErrInvalidSize is returned when a surface dimension is not positive.
	ErrInvalidSize = errors.New("board: invalid surface size")

	// ErrUnknownPreset is returned by SetFramePreset for names missing from
	// the preset table.
	ErrUnknownPreset = errors.New("board: unknown frame preset")
)
