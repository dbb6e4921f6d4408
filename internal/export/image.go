// Package export encodes the flattened canvas and decodes images to import.
package export

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for export file names whose extension
// names no known format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an export target.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// FormatFor picks the export format from a file name. A name without an
// extension is saved as PNG.
func FormatFor(name string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case "", ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Write encodes img in the format chosen by name.
func Write(w io.Writer, name string, img image.Image) error {
	f, err := FormatFor(name)
	if err != nil {
		return err
	}
	if f == FormatPDF {
		return WritePDF(w, img)
	}
	return WritePNG(w, img)
}

// WritePNG encodes img as PNG, keeping its alpha channel.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Decode reads any registered raster format: PNG, JPEG, GIF, BMP, TIFF or
// WebP.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}
