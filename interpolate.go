package heightgrid

import (
	"fmt"
	"strings"
)

// An Interpolation is a method for interpolating samples between lattice
// points.
type Interpolation int

const (
	Bilinear Interpolation = iota
	Bicubic
)

// ParseInterpolation parses an Interpolation from its name.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(s) {
	case "bilinear":
		return Bilinear, nil
	case "bicubic":
		return Bicubic, nil
	default:
		return 0, fmt.Errorf("%s: unknown interpolation: %w", s, ErrInvalidParameter)
	}
}

func (i Interpolation) String() string {
	switch i {
	case Bilinear:
		return "bilinear"
	case Bicubic:
		return "bicubic"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// A quad holds the samples at the four corners of a cell.
type quad struct {
	tl float64
	tr float64
	bl float64
	br float64
}

// interpolateBilinear interpolates q at the fractional offsets fr, fc from its
// top left corner.
func interpolateBilinear(q quad, fr, fc float64) float64 {
	return 0 +
		q.tl*(1-fr)*(1-fc) +
		q.tr*(1-fr)*fc +
		q.bl*fr*(1-fc) +
		q.br*fr*fc
}

// cubicWeights returns the Catmull-Rom weights of the four samples at -1, 0, 1,
// and 2 for an offset t in [0, 1).
func cubicWeights(t float64) [4]float64 {
	t2 := t * t
	t3 := t2 * t
	return [4]float64{
		(-t3 + 2*t2 - t) / 2,
		(3*t3 - 5*t2 + 2) / 2,
		(-3*t3 + 4*t2 + t) / 2,
		(t3 - t2) / 2,
	}
}

// interpolateBicubic interpolates the 4x4 neighborhood samples, whose element
// [1][1] is the top left corner of the cell, at the fractional offsets fr, fc.
func interpolateBicubic(samples *[4][4]float64, fr, fc float64) float64 {
	rowWeights := cubicWeights(fr)
	colWeights := cubicWeights(fc)
	var result float64
	for i, rowWeight := range rowWeights {
		var rowResult float64
		for j, colWeight := range colWeights {
			rowResult += colWeight * samples[i][j]
		}
		result += rowWeight * rowResult
	}
	return result
}
