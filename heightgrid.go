// Package heightgrid estimates ground-surface travel distances over fixed-size
// elevation grids.
package heightgrid

import "errors"

// Rows and Cols are the dimensions of a heightmap file.
const (
	Rows = 512
	Cols = 512
)

var (
	// ErrMalformedInput is returned when input data does not hold exactly one
	// grid of samples.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfRange is returned when a coordinate lies outside the grid.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidParameter is returned for invalid arguments, such as a sample
	// count less than one.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// A GridCoord is a possibly fractional coordinate in grid space.
type GridCoord struct {
	Row float64
	Col float64
}

// A WorldPoint is a point in world space.
type WorldPoint struct {
	X float64
	Y float64
	Z float64
}

// A Resolution holds the number of world units per grid cell.
type Resolution struct {
	Horizontal float64
	Vertical   float64
}

// DefaultResolution is the resolution of the heightmap files.
var DefaultResolution = Resolution{
	Horizontal: 30,
	Vertical:   11,
}
