package heightgrid

import (
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// An ImageFormat is a format for diagnostic images.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatTIFF
	ImageFormatBMP
)

// ImageFormatFromFilename returns the ImageFormat for filename's extension.
func ImageFormatFromFilename(filename string) (ImageFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return ImageFormatPNG, nil
	case ".tif", ".tiff":
		return ImageFormatTIFF, nil
	case ".bmp":
		return ImageFormatBMP, nil
	default:
		return 0, fmt.Errorf("%s: unknown image format: %w", filename, ErrInvalidParameter)
	}
}

func (f ImageFormat) String() string {
	switch f {
	case ImageFormatPNG:
		return "png"
	case ImageFormatTIFF:
		return "tiff"
	case ImageFormatBMP:
		return "bmp"
	default:
		return fmt.Sprintf("ImageFormat(%d)", int(f))
	}
}

// WriteImage writes g to w as a single channel 8-bit image whose pixel at
// (col, row) is the sample at row, col.
func (g *Grid) WriteImage(w io.Writer, format ImageFormat) error {
	img := g.Image()
	switch format {
	case ImageFormatPNG:
		return png.Encode(w, img)
	case ImageFormatTIFF:
		// Uncompressed so that LoadTIFF can read it back.
		return tiff.Encode(w, img, &tiff.Options{
			Compression: tiff.Uncompressed,
		})
	case ImageFormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%s: %w", format, ErrInvalidParameter)
	}
}
