package heightgrid

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/google/tiff"
	_ "github.com/google/tiff/bigtiff"
	_ "github.com/google/tiff/geotiff"
	"golang.org/x/image/tiff/lzw"
)

const (
	tiffCompressionNone = 1
	tiffCompressionLZW  = 5

	// LZW codes are at most 12 bits wide and each encodes at least one
	// sample, so no valid strip exceeds twice the image size.
	maxStripByteCount = 2 * Rows * Cols
)

var errShortRead = errors.New("short read")

// A TIFFReader is a source of TIFF data.
type TIFFReader interface {
	io.ReadSeeker
	io.ReaderAt
}

// A grayTIFFIFD is a struct into which github.com/google/tiff can unmarshal
// the IFD of a single channel 8-bit image.
type grayTIFFIFD struct {
	ImageWidth                uint16   `tiff:"field,tag=256"`
	ImageLength               uint16   `tiff:"field,tag=257"`
	BitsPerSample             uint16   `tiff:"field,tag=258"`
	Compression               uint16   `tiff:"field,tag=259"`
	PhotometricInterpretation uint16   `tiff:"field,tag=262"`
	StripOffsets              []uint64 `tiff:"field,tag=273"`
	SamplesPerPixel           uint16   `tiff:"field,tag=277"`
	StripByteCounts           []uint64 `tiff:"field,tag=279"`
	PlanarConfiguration       uint16   `tiff:"field,tag=284"`
	Predictor                 uint16   `tiff:"field,tag=317"`
}

// LoadTIFF reads a heightmap from an 8-bit grayscale TIFF. Only uncompressed
// and LZW-compressed strips are supported.
func LoadTIFF(r TIFFReader) (*Grid, error) {
	tiffTIFF, err := tiff.Parse(r, tiff.GetTagSpace("GeoTIFF"), nil)
	if err != nil {
		return nil, err
	}

	if len(tiffTIFF.IFDs()) != 1 {
		return nil, fmt.Errorf("found %d IFDs, expected 1: %w", len(tiffTIFF.IFDs()), errors.ErrUnsupported)
	}

	var ifd grayTIFFIFD
	if err := tiff.UnmarshalIFD(tiffTIFF.IFDs()[0], &ifd); err != nil {
		return nil, err
	}

	if ifd.BitsPerSample != 8 ||
		(ifd.Compression != tiffCompressionNone && ifd.Compression != tiffCompressionLZW) ||
		ifd.PhotometricInterpretation != 1 ||
		ifd.SamplesPerPixel != 1 ||
		ifd.PlanarConfiguration > 1 ||
		ifd.Predictor > 1 {
		return nil, errors.ErrUnsupported
	}

	if int(ifd.ImageWidth) != Cols || int(ifd.ImageLength) != Rows {
		return nil, fmt.Errorf("%dx%d: %w", ifd.ImageWidth, ifd.ImageLength, ErrMalformedInput)
	}
	if len(ifd.StripOffsets) == 0 || len(ifd.StripOffsets) != len(ifd.StripByteCounts) {
		return nil, fmt.Errorf("incorrect number of strip byte counts or offsets: %w", ErrMalformedInput)
	}

	// Strips hold consecutive rows, so the decoded strips are the row-major
	// samples.
	samples := make([]byte, 0, Rows*Cols)
	for i, stripOffset := range ifd.StripOffsets {
		stripData, err := readStripData(r, stripOffset, ifd.StripByteCounts[i])
		if err != nil {
			return nil, err
		}
		if ifd.Compression == tiffCompressionLZW {
			stripData, err = decompressStripData(stripData, Rows*Cols-len(samples))
			if err != nil {
				return nil, err
			}
		}
		samples = append(samples, stripData...)
	}
	return Decode(samples)
}

// readStripData returns the byteCount bytes at offset.
func readStripData(r io.ReaderAt, offset, byteCount uint64) ([]byte, error) {
	if byteCount > maxStripByteCount {
		return nil, fmt.Errorf("strip of %d bytes: %w", byteCount, ErrMalformedInput)
	}
	data := make([]byte, byteCount)
	switch n, err := r.ReadAt(data, int64(offset)); {
	case n != int(byteCount):
		return nil, errShortRead
	case err != nil && !errors.Is(err, io.EOF):
		return nil, err
	default:
		return data, nil
	}
}

// decompressStripData decompresses the LZW-compressed compressedData, reading
// at most limit bytes.
func decompressStripData(compressedData []byte, limit int) ([]byte, error) {
	r := lzw.NewReader(bytes.NewReader(compressedData), lzw.MSB, 8)
	defer r.Close()
	return io.ReadAll(io.LimitReader(r, int64(limit)+1))
}
