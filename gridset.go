package heightgrid

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// A GridSet is a set of named heightmap files.
type GridSet struct {
	mutex     sync.Mutex
	fsys      fs.FS
	cacheSize int
	gridCache *lru.Cache[string, *Grid]
}

// A GridSetOption sets an option on a GridSet.
type GridSetOption func(*GridSet)

// NewGridSet returns a new GridSet with the given options.
func NewGridSet(options ...GridSetOption) (*GridSet, error) {
	s := &GridSet{
		cacheSize: 8,
	}
	for _, option := range options {
		option(s)
	}
	if s.fsys == nil {
		return nil, fmt.Errorf("no filesystem: %w", ErrInvalidParameter)
	}

	var err error
	s.gridCache, err = lru.NewWithEvict(s.cacheSize, func(string, *Grid) {
		gridCacheEvictions.Inc()
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func WithCacheSize(cacheSize int) GridSetOption {
	return func(s *GridSet) {
		s.cacheSize = cacheSize
	}
}

func WithFS(fsys fs.FS) GridSetOption {
	return func(s *GridSet) {
		s.fsys = fsys
	}
}

// Grid returns the grid in the file name. Files with a .tif or .tiff
// extension are read as TIFFs, all others as raw heightmaps.
func (s *GridSet) Grid(name string) (*Grid, error) {
	if grid, ok := s.gridCache.Get(name); ok {
		gridCacheHits.Inc()
		return grid, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if grid, ok := s.gridCache.Get(name); ok {
		gridCacheHits.Inc()
		return grid, nil
	}

	gridCacheMisses.Inc()

	grid, err := s.loadGrid(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s.gridCache.Add(name, grid)
	return grid, nil
}

// loadGrid loads the grid in the file name.
func (s *GridSet) loadGrid(name string) (*Grid, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tif", ".tiff":
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, err
		}
		return LoadTIFF(bytes.NewReader(data))
	default:
		file, err := s.fsys.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return Load(file)
	}
}
