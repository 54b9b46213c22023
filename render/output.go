package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// Encode writes img as "png" or "tiff".
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedImage, format)
}

// WriteImage picks the encoder from the extension of path.
func WriteImage(path string, img image.Image) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format != "png" && format != "tif" && format != "tiff" {
		return fmt.Errorf("%w: %q", ErrUnsupportedImage, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, img, format)
}
