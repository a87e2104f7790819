package heightgrid

import (
	"context"

	"github.com/maypok86/otter/v2"
	"golang.org/x/sync/errgroup"
)

// A Path is a straight line in grid space and the number of samples to take
// along it.
type Path struct {
	From        GridCoord
	To          GridCoord
	SampleCount int
}

// A Comparison holds the surface distances along a Path before and after an
// event.
type Comparison struct {
	Path
	Pre  float64
	Post float64
}

// Delta returns the change in surface distance.
func (c Comparison) Delta() float64 {
	return c.Post - c.Pre
}

// A Survey compares surface distances over a pair of grids.
type Survey struct {
	pre                 *PathIntegrator
	post                *PathIntegrator
	samplerOptions      []SamplerOption
	integratorOptions   []IntegratorOption
	comparisonCacheSize int
	comparisonCache     *otter.Cache[Path, Comparison]
}

// A SurveyOption sets an option on a Survey.
type SurveyOption func(*Survey)

// NewSurvey returns a new Survey of the pre and post grids.
func NewSurvey(pre, post *Grid, options ...SurveyOption) (*Survey, error) {
	s := &Survey{
		comparisonCacheSize: 1024,
	}
	for _, option := range options {
		option(s)
	}
	s.pre = NewPathIntegrator(NewSampler(pre, s.samplerOptions...), s.integratorOptions...)
	s.post = NewPathIntegrator(NewSampler(post, s.samplerOptions...), s.integratorOptions...)

	var err error
	s.comparisonCache, err = otter.New(&otter.Options[Path, Comparison]{
		MaximumSize: s.comparisonCacheSize,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func WithComparisonCacheSize(comparisonCacheSize int) SurveyOption {
	return func(s *Survey) {
		s.comparisonCacheSize = comparisonCacheSize
	}
}

func WithIntegratorOptions(integratorOptions ...IntegratorOption) SurveyOption {
	return func(s *Survey) {
		s.integratorOptions = integratorOptions
	}
}

func WithSamplerOptions(samplerOptions ...SamplerOption) SurveyOption {
	return func(s *Survey) {
		s.samplerOptions = samplerOptions
	}
}

// Compare returns the comparison of path over s's grids. Successful
// comparisons are cached.
func (s *Survey) Compare(ctx context.Context, path Path) (Comparison, error) {
	return s.comparisonCache.Get(ctx, path, otter.LoaderFunc[Path, Comparison](s.compare))
}

// compare integrates path over the pre and post grids concurrently.
func (s *Survey) compare(ctx context.Context, path Path) (Comparison, error) {
	comparison := Comparison{
		Path: path,
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comparison.Pre, err = s.pre.Distance(ctx, path.From, path.To, path.SampleCount)
		return err
	})
	g.Go(func() error {
		var err error
		comparison.Post, err = s.post.Distance(ctx, path.From, path.To, path.SampleCount)
		return err
	})
	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}
	comparisons.Inc()
	return comparison, nil
}
