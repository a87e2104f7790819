package heightgrid

import (
	"fmt"
	"image"
	"io"
)

// A Grid is an immutable grid of 8-bit elevation samples stored in row-major
// order.
type Grid struct {
	rows    int
	cols    int
	samples []uint8
}

// NewGrid returns a new Grid with the given dimensions. samples is copied.
func NewGrid(rows, cols int, samples []uint8) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidParameter)
	}
	if len(samples) != rows*cols {
		return nil, fmt.Errorf("got %d samples, expected %d: %w", len(samples), rows*cols, ErrMalformedInput)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		samples: append([]uint8(nil), samples...),
	}, nil
}

// Decode decodes a raw heightmap. data must contain exactly Rows*Cols bytes.
func Decode(data []byte) (*Grid, error) {
	return NewGrid(Rows, Cols, data)
}

// Load reads a raw heightmap from r.
func Load(r io.Reader) (*Grid, error) {
	// Read one extra byte so that overlong input is detected.
	data, err := io.ReadAll(io.LimitReader(r, Rows*Cols+1))
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Size returns the number of rows and columns in g.
func (g *Grid) Size() (int, int) {
	return g.rows, g.cols
}

// At returns the sample at row, col.
func (g *Grid) At(row, col int) (uint8, error) {
	if !g.contains(row, col) {
		return 0, fmt.Errorf("row %d col %d: %w", row, col, ErrOutOfRange)
	}
	return g.samples[row*g.cols+col], nil
}

// Image returns a copy of g as a grayscale image.
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.cols, g.rows))
	for row := range g.rows {
		copy(img.Pix[row*img.Stride:row*img.Stride+g.cols], g.samples[row*g.cols:(row+1)*g.cols])
	}
	return img
}

func (g *Grid) contains(row, col int) bool {
	return 0 <= row && row < g.rows && 0 <= col && col < g.cols
}

// at returns the sample at row, col with each index clamped to the grid.
func (g *Grid) at(row, col int) float64 {
	row = min(max(row, 0), g.rows-1)
	col = min(max(col, 0), g.cols-1)
	return float64(g.samples[row*g.cols+col])
}
