package heightgrid

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSurvey_Compare(t *testing.T) {
	pre, err := NewGrid(Rows, Cols, make([]uint8, Rows*Cols))
	assert.NoError(t, err)
	postSamples := make([]uint8, Rows*Cols)
	postSamples[5*Cols+5] = 100
	post, err := NewGrid(Rows, Cols, postSamples)
	assert.NoError(t, err)

	survey, err := NewSurvey(pre, post, WithIntegratorOptions(WithWorkers(4)))
	assert.NoError(t, err)

	path := Path{
		From:        GridCoord{Row: 0, Col: 0},
		To:          GridCoord{Row: 10, Col: 10},
		SampleCount: 1000,
	}
	before := testutil.ToFloat64(comparisons)
	comparison, err := survey.Compare(t.Context(), path)
	assert.NoError(t, err)
	assert.Equal(t, path, comparison.Path)

	expectedPre := math.Hypot(300, 300)
	assert.True(t, math.Abs(comparison.Pre-expectedPre) < 1e-9*expectedPre)
	expectedPost, err := Integrate(post, path.From, path.To, path.SampleCount)
	assert.NoError(t, err)
	assert.True(t, math.Abs(comparison.Post-expectedPost) < 1e-9*expectedPost)
	assert.True(t, comparison.Delta() > 0)
	assert.Equal(t, comparison.Post-comparison.Pre, comparison.Delta())

	// The second comparison is served from the cache.
	cached, err := survey.Compare(t.Context(), path)
	assert.NoError(t, err)
	assert.Equal(t, comparison, cached)
	assert.Equal(t, before+1, testutil.ToFloat64(comparisons))
}

func TestSurvey_CompareErrors(t *testing.T) {
	grid, err := NewGrid(4, 4, make([]uint8, 16))
	assert.NoError(t, err)
	survey, err := NewSurvey(grid, grid, WithSamplerOptions(WithInterpolation(Bicubic)))
	assert.NoError(t, err)

	_, err = survey.Compare(t.Context(), Path{To: GridCoord{Row: 3, Col: 3}})
	assert.IsError(t, err, ErrInvalidParameter)

	_, err = survey.Compare(t.Context(), Path{To: GridCoord{Row: 4, Col: 3}, SampleCount: 1})
	assert.IsError(t, err, ErrOutOfRange)
}
