package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/SummersBrian/cmsc427ps3/types"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type ImageFormat uint8

const (
	BMP ImageFormat = iota
	PNG
	TIFF
)

func (f ImageFormat) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	}
	return "bmp"
}

// Select the image format for a file based on its extension. Unknown
// extensions are encoded as bitmaps.
func FormatFromPath(path string) ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG
	case ".tif", ".tiff":
		return TIFF
	}
	return BMP
}

// A rendered frame. Pixel (0, 0) is the top-left corner of the image.
type Frame struct {
	img *image.RGBA
}

// Allocate a black frame with the given dimensions.
func NewFrame(frameW, frameH int) (*Frame, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, ErrInvalidFrameDims
	}
	return &Frame{
		img: image.NewRGBA(image.Rect(0, 0, frameW, frameH)),
	}, nil
}

// Clamp and store a pixel color. Out of bounds pixels are ignored.
func (f *Frame) SetPixel(x, y int, c types.Color) {
	f.img.SetRGBA(x, y, c.ToRGBA())
}

// Get the frame contents.
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Encode frame to w using the requested format.
func (f *Frame) Encode(w io.Writer, format ImageFormat) error {
	switch format {
	case PNG:
		return png.Encode(w, f.img)
	case TIFF:
		return tiff.Encode(w, f.img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return bmp.Encode(w, f.img)
	}
}

// Encode the frame using the format implied by the file extension and write
// it to path. Nothing is written if encoding fails.
func (f *Frame) Save(path string) error {
	format := FormatFromPath(path)

	var buf bytes.Buffer
	if err := f.Encode(&buf, format); err != nil {
		return fmt.Errorf("renderer: could not encode frame as %s: %w", format, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("renderer: could not write frame to %s: %w", path, err)
	}
	return nil
}
