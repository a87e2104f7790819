package heightgrid

import (
	"bytes"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/alecthomas/assert/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGridSet_Grid(t *testing.T) {
	pre := make([]byte, Rows*Cols)
	pre[0] = 1
	post := make([]byte, Rows*Cols)
	post[0] = 2

	grid, err := Decode(post)
	assert.NoError(t, err)
	var tiffData bytes.Buffer
	assert.NoError(t, grid.WriteImage(&tiffData, ImageFormatTIFF))

	gridSet, err := NewGridSet(
		WithFS(fstest.MapFS{
			"pre.data":   &fstest.MapFile{Data: pre},
			"post.tif":   &fstest.MapFile{Data: tiffData.Bytes()},
			"short.data": &fstest.MapFile{Data: pre[1:]},
		}),
		WithCacheSize(1),
	)
	assert.NoError(t, err)

	hits := testutil.ToFloat64(gridCacheHits)
	misses := testutil.ToFloat64(gridCacheMisses)
	evictions := testutil.ToFloat64(gridCacheEvictions)

	preGrid, err := gridSet.Grid("pre.data")
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), preGrid.samples[0])

	preGrid2, err := gridSet.Grid("pre.data")
	assert.NoError(t, err)
	assert.True(t, preGrid == preGrid2)

	postGrid, err := gridSet.Grid("post.tif")
	assert.NoError(t, err)
	assert.Equal(t, uint8(2), postGrid.samples[0])

	assert.Equal(t, hits+1, testutil.ToFloat64(gridCacheHits))
	assert.Equal(t, misses+2, testutil.ToFloat64(gridCacheMisses))
	assert.Equal(t, evictions+1, testutil.ToFloat64(gridCacheEvictions))

	_, err = gridSet.Grid("short.data")
	assert.IsError(t, err, ErrMalformedInput)

	_, err = gridSet.Grid("missing.data")
	assert.IsError(t, err, fs.ErrNotExist)
}

func TestNewGridSet_NoFS(t *testing.T) {
	_, err := NewGridSet()
	assert.IsError(t, err, ErrInvalidParameter)
}
