package heightgrid

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPathSamples(t *testing.T) {
	grid, err := NewGrid(16, 16, make([]uint8, 16*16))
	assert.NoError(t, err)
	sampler := NewSampler(grid)
	from := GridCoord{Row: 0, Col: 0}
	to := GridCoord{Row: 15, Col: 15}

	for _, tc := range []struct {
		name     string
		sample   func() error
		expected float64
	}{
		{
			name: "distance",
			sample: func() error {
				_, err := NewPathIntegrator(sampler).Distance(t.Context(), from, to, 10)
				return err
			},
			expected: 11,
		},
		{
			name: "distance_two_workers",
			sample: func() error {
				_, err := NewPathIntegrator(sampler, WithWorkers(2)).Distance(t.Context(), from, to, 10)
				return err
			},
			expected: 12,
		},
		{
			name: "profile",
			sample: func() error {
				_, err := NewPathIntegrator(sampler).Profile(t.Context(), from, to, 10)
				return err
			},
			expected: 11,
		},
		{
			name: "degenerate",
			sample: func() error {
				_, err := NewPathIntegrator(sampler).Distance(t.Context(), from, from, 10)
				return err
			},
			expected: 0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			before := testutil.ToFloat64(pathSamples)
			assert.NoError(t, tc.sample())
			assert.Equal(t, before+tc.expected, testutil.ToFloat64(pathSamples))
		})
	}
}
