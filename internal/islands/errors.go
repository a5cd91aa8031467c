package islands

import "errors"

// Sentinel errors for the detection engine.
var (
	// ErrEmptyGrid indicates the input grid has zero width or height.
	ErrEmptyGrid = errors.New("islands: grid must have at least one row and one column")
	// ErrUnknownIslandID indicates a catalog lookup for an ID that was
	// never assigned.
	ErrUnknownIslandID = errors.New("islands: no island with the requested id")
)
