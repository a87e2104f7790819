package heightgrid

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gridCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heightgrid_grid_cache_hits_total",
		Help: "The total number of hits on the grid cache",
	})
	gridCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heightgrid_grid_cache_misses_total",
		Help: "The total number of misses on the grid cache",
	})
	gridCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heightgrid_grid_cache_evictions_total",
		Help: "The total number of evictions from the grid cache",
	})
	pathSamples = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heightgrid_path_samples_total",
		Help: "The total number of world points sampled along paths, including chunk starts",
	})
	comparisons = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heightgrid_comparisons_total",
		Help: "The total number of pre/post path comparisons computed",
	})
)
