package heightgrid

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// A PathIntegrator estimates surface distances by summing the chords between
// world points sampled along straight lines in grid space.
type PathIntegrator struct {
	sampler *Sampler
	workers int
}

// An IntegratorOption sets an option on a PathIntegrator.
type IntegratorOption func(*PathIntegrator)

// NewPathIntegrator returns a new PathIntegrator that samples with sampler.
func NewPathIntegrator(sampler *Sampler, options ...IntegratorOption) *PathIntegrator {
	p := &PathIntegrator{
		sampler: sampler,
		workers: 1,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// WithWorkers sets the number of goroutines used to sample each path.
func WithWorkers(workers int) IntegratorOption {
	return func(p *PathIntegrator) {
		p.workers = max(workers, 1)
	}
}

// Integrate returns the surface distance from from to to over grid, using the
// default resolution, bilinear interpolation, and sampleCount samples.
func Integrate(grid *Grid, from, to GridCoord, sampleCount int) (float64, error) {
	return NewPathIntegrator(NewSampler(grid)).Distance(context.Background(), from, to, sampleCount)
}

// Distance returns the surface distance from from to to, sampled at
// sampleCount points after from, the last of which is to.
func (p *PathIntegrator) Distance(ctx context.Context, from, to GridCoord, sampleCount int) (float64, error) {
	if err := p.check(from, to, sampleCount); err != nil {
		return 0, err
	}
	if from == to {
		return 0, nil
	}

	// Chords are stored by index and summed in order so that the result does
	// not depend on the number of workers.
	chords := make([]float64, sampleCount)
	workers := min(p.workers, sampleCount)
	chunkSize := (sampleCount + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < sampleCount; start += chunkSize {
		end := min(start+chunkSize, sampleCount)
		g.Go(func() error {
			return p.chords(ctx, chords[start:end], from, to, start, sampleCount)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return floats.Sum(chords), nil
}

// Profile returns the sampleCount+1 world points from from to to, inclusive.
func (p *PathIntegrator) Profile(ctx context.Context, from, to GridCoord, sampleCount int) ([]WorldPoint, error) {
	if err := p.check(from, to, sampleCount); err != nil {
		return nil, err
	}
	worldPoints := make([]WorldPoint, sampleCount+1)
	for i := range worldPoints {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		worldPoint, err := p.sampler.Sample(lerp(from, to, i, sampleCount))
		if err != nil {
			return nil, err
		}
		worldPoints[i] = worldPoint
	}
	pathSamples.Add(float64(len(worldPoints)))
	return worldPoints, nil
}

// chords populates chords with the lengths of the chords ending at samples
// start+1 to start+len(chords). It samples len(chords)+1 world points.
func (p *PathIntegrator) chords(ctx context.Context, chords []float64, from, to GridCoord, start, sampleCount int) error {
	prev, err := p.sampler.Sample(lerp(from, to, start, sampleCount))
	if err != nil {
		return err
	}
	for i := range chords {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		next, err := p.sampler.Sample(lerp(from, to, start+i+1, sampleCount))
		if err != nil {
			return err
		}
		chords[i] = chordLength(prev, next)
		prev = next
	}
	pathSamples.Add(float64(len(chords) + 1))
	return nil
}

// check validates the arguments to Distance and Profile. Sampling along a
// straight line stays within the grid if both endpoints do.
func (p *PathIntegrator) check(from, to GridCoord, sampleCount int) error {
	if sampleCount < 1 {
		return fmt.Errorf("sample count %d: %w", sampleCount, ErrInvalidParameter)
	}
	if err := p.sampler.check(from); err != nil {
		return err
	}
	return p.sampler.check(to)
}

// lerp returns the ith of n steps from from to to.
func lerp(from, to GridCoord, i, n int) GridCoord {
	switch i {
	case 0:
		return from
	case n:
		return to
	}
	t := float64(i) / float64(n)
	return GridCoord{
		Row: from.Row + (to.Row-from.Row)*t,
		Col: from.Col + (to.Col-from.Col)*t,
	}
}

func chordLength(a, b WorldPoint) float64 {
	return r3.Norm(r3.Sub(b.vec(), a.vec()))
}

func (p WorldPoint) vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}
