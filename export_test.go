package heightgrid_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/image/bmp"

	"github.com/twpayne/go-heightgrid"
)

func TestImageFormatFromFilename(t *testing.T) {
	for _, tc := range []struct {
		filename string
		expected heightgrid.ImageFormat
	}{
		{filename: "pre.png", expected: heightgrid.ImageFormatPNG},
		{filename: "dir/post.PNG", expected: heightgrid.ImageFormatPNG},
		{filename: "pre.tif", expected: heightgrid.ImageFormatTIFF},
		{filename: "pre.tiff", expected: heightgrid.ImageFormatTIFF},
		{filename: "pre.bmp", expected: heightgrid.ImageFormatBMP},
	} {
		t.Run(tc.filename, func(t *testing.T) {
			actual, err := heightgrid.ImageFormatFromFilename(tc.filename)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}

	_, err := heightgrid.ImageFormatFromFilename("pre.data")
	assert.IsError(t, err, heightgrid.ErrInvalidParameter)
}

func TestGrid_WriteImage(t *testing.T) {
	grid := newTestGrid(t, 16, 24, func(row, col int) uint8 {
		return uint8(row*24 + col)
	})
	for _, tc := range []struct {
		format heightgrid.ImageFormat
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{
			format: heightgrid.ImageFormatPNG,
			decode: func(b *bytes.Buffer) (image.Image, error) {
				return png.Decode(b)
			},
		},
		{
			format: heightgrid.ImageFormatBMP,
			decode: func(b *bytes.Buffer) (image.Image, error) {
				return bmp.Decode(b)
			},
		},
	} {
		t.Run(tc.format.String(), func(t *testing.T) {
			var buffer bytes.Buffer
			assert.NoError(t, grid.WriteImage(&buffer, tc.format))
			img, err := tc.decode(&buffer)
			assert.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 24, 16), img.Bounds())
			for row := range 16 {
				for col := range 24 {
					expected, err := grid.At(row, col)
					assert.NoError(t, err)
					gray := color.GrayModel.Convert(img.At(col, row)).(color.Gray)
					assert.Equal(t, expected, gray.Y)
				}
			}
		})
	}

	assert.IsError(t, grid.WriteImage(&bytes.Buffer{}, heightgrid.ImageFormat(99)), heightgrid.ErrInvalidParameter)
}
