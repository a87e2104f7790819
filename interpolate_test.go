package heightgrid

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestInterpolateBilinear(t *testing.T) {
	q := quad{
		tl: 0,
		tr: 1,
		bl: 2,
		br: 3,
	}
	for _, tc := range []struct {
		fr       float64
		fc       float64
		expected float64
	}{
		{fr: 0, fc: 0, expected: 0},
		{fr: 0, fc: 1, expected: 1},
		{fr: 1, fc: 0, expected: 2},
		{fr: 1, fc: 1, expected: 3},
		{fr: 0.5, fc: 0.5, expected: 1.5},
		{fr: 0, fc: 0.5, expected: 0.5},
		{fr: 0.5, fc: 0, expected: 1},
		{fr: 0.5, fc: 1, expected: 2},
		{fr: 1, fc: 0.5, expected: 2.5},
	} {
		assert.Equal(t, tc.expected, interpolateBilinear(q, tc.fr, tc.fc))
	}
}

func TestCubicWeights(t *testing.T) {
	assert.Equal(t, [4]float64{0, 1, 0, 0}, cubicWeights(0))
	for _, tt := range []float64{0, 0.125, 0.25, 0.5, 0.75, 0.999} {
		w := cubicWeights(tt)
		assert.True(t, math.Abs(w[0]+w[1]+w[2]+w[3]-1) < 1e-12)
	}
}

func TestInterpolateBicubic(t *testing.T) {
	// Catmull-Rom reproduces linear functions.
	var samples [4][4]float64
	for i := range 4 {
		for j := range 4 {
			samples[i][j] = float64(j-1) + 2*float64(i-1)
		}
	}
	for _, tc := range []struct {
		fr float64
		fc float64
	}{
		{fr: 0, fc: 0},
		{fr: 0.5, fc: 0.5},
		{fr: 0.25, fc: 0.75},
		{fr: 0.9, fc: 0.1},
	} {
		expected := tc.fc + 2*tc.fr
		actual := interpolateBicubic(&samples, tc.fr, tc.fc)
		assert.True(t, math.Abs(expected-actual) < 1e-12, "fr=%v fc=%v expected=%v actual=%v", tc.fr, tc.fc, expected, actual)
	}
	assert.Equal(t, samples[1][1], interpolateBicubic(&samples, 0, 0))
}

func TestParseInterpolation(t *testing.T) {
	for _, interpolation := range []Interpolation{Bilinear, Bicubic} {
		actual, err := ParseInterpolation(interpolation.String())
		assert.NoError(t, err)
		assert.Equal(t, interpolation, actual)
	}
	_, err := ParseInterpolation("nearest")
	assert.IsError(t, err, ErrInvalidParameter)
}
