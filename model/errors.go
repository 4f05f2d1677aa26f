package model

import "github.com/pkg/errors"

// Sentinel errors for grid construction and access. Call sites wrap these
// with coordinate and dimension details, so callers can match the category
// with errors.Is while the message still says which cell was at fault.
var (
	// ErrDimension reports a grid with fewer than one row or column.
	ErrDimension = errors.New("grid dimensions must be at least 1x1")

	// ErrIndex reports a cell lookup outside the grid extents.
	ErrIndex = errors.New("cell index out of range")

	// ErrBounds reports a pattern or cell placement outside the grid extents.
	ErrBounds = errors.New("placement out of bounds")
)
