package heightgrid

import (
	"fmt"
	"math"
)

// A Sampler converts grid coordinates into world points by interpolating the
// samples of a Grid.
type Sampler struct {
	grid          *Grid
	resolution    Resolution
	interpolation Interpolation
}

// A SamplerOption sets an option on a Sampler.
type SamplerOption func(*Sampler)

// NewSampler returns a new Sampler for grid.
func NewSampler(grid *Grid, options ...SamplerOption) *Sampler {
	s := &Sampler{
		grid:          grid,
		resolution:    DefaultResolution,
		interpolation: Bilinear,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func WithInterpolation(interpolation Interpolation) SamplerOption {
	return func(s *Sampler) {
		s.interpolation = interpolation
	}
}

func WithResolution(resolution Resolution) SamplerOption {
	return func(s *Sampler) {
		s.resolution = resolution
	}
}

// Grid returns s's grid.
func (s *Sampler) Grid() *Grid {
	return s.grid
}

// Resolution returns s's resolution.
func (s *Sampler) Resolution() Resolution {
	return s.resolution
}

// Sample returns the world point at coord. Both world X and Y are scaled by the
// horizontal resolution.
func (s *Sampler) Sample(coord GridCoord) (WorldPoint, error) {
	height, err := s.Height(coord)
	if err != nil {
		return WorldPoint{}, err
	}
	return WorldPoint{
		X: coord.Col * s.resolution.Horizontal,
		Y: coord.Row * s.resolution.Horizontal,
		Z: height * s.resolution.Vertical,
	}, nil
}

// Height returns the interpolated sample value at coord, without vertical
// scaling.
func (s *Sampler) Height(coord GridCoord) (float64, error) {
	if err := s.check(coord); err != nil {
		return 0, err
	}
	tlRow := int(math.Floor(coord.Row))
	tlCol := int(math.Floor(coord.Col))
	fr := coord.Row - float64(tlRow)
	fc := coord.Col - float64(tlCol)
	switch s.interpolation {
	case Bilinear:
		return interpolateBilinear(s.quad(tlRow, tlCol), fr, fc), nil
	case Bicubic:
		neighborhood := s.neighborhood(tlRow, tlCol)
		return interpolateBicubic(&neighborhood, fr, fc), nil
	default:
		return 0, fmt.Errorf("%s: %w", s.interpolation, ErrInvalidParameter)
	}
}

// check returns an error if coord is outside s's grid.
func (s *Sampler) check(coord GridCoord) error {
	// The negated comparisons also reject NaNs.
	if !(0 <= coord.Row && coord.Row <= float64(s.grid.rows-1)) ||
		!(0 <= coord.Col && coord.Col <= float64(s.grid.cols-1)) {
		return fmt.Errorf("row %g col %g: %w", coord.Row, coord.Col, ErrOutOfRange)
	}
	return nil
}

// quad returns the corners of the cell whose top left corner is at tlRow,
// tlCol. Corners beyond the last row or column are clamped to it.
func (s *Sampler) quad(tlRow, tlCol int) quad {
	return quad{
		tl: s.grid.at(tlRow, tlCol),
		tr: s.grid.at(tlRow, tlCol+1),
		bl: s.grid.at(tlRow+1, tlCol),
		br: s.grid.at(tlRow+1, tlCol+1),
	}
}

// neighborhood returns the 4x4 samples around the cell whose top left corner
// is at tlRow, tlCol, clamped to the grid.
func (s *Sampler) neighborhood(tlRow, tlCol int) [4][4]float64 {
	var samples [4][4]float64
	for i := range 4 {
		for j := range 4 {
			samples[i][j] = s.grid.at(tlRow+i-1, tlCol+j-1)
		}
	}
	return samples
}
