package canvas

import "errors"

var (
	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("canvas: invalid size")

	// ErrClosed is returned when operating on a closed Context.
	ErrClosed = errors.New("canvas: context closed")
)
