package imagefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/vova616/screenshot"
)

// ErrNotImage reports input whose content is not a raster image.
var ErrNotImage = errors.New("not an image")

// Load reads and decodes the image at path. Content is sniffed first so a
// wrong file gives a clear error instead of a decoder failure. EXIF
// orientation is applied. The result always has a zero origin.
func Load(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read image: %w", err)
	}
	return Decode(data)
}

// Decode decodes raw image bytes.
func Decode(data []byte) (*image.NRGBA, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("can't decode %s: %w", mt.String(), err)
	}
	return imaging.Clone(img), nil
}

// CaptureScreen grabs the primary display as the source image.
func CaptureScreen() (*image.NRGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("can't capture screen: %w", err)
	}
	return imaging.Clone(img), nil
}

// Save encodes img to path, choosing the format from the file extension.
// It returns the absolute path written.
func Save(path string, img image.Image) (string, error) {
	if img == nil {
		return "", errors.New("nothing to save")
	}
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("can't save %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs, nil
	}
	return path, nil
}
