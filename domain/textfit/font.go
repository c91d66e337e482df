package textfit

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrNoFont is returned when an engine is built without a font source.
var ErrNoFont = errors.New("textfit: no font source")

// fontDPI makes one point equal one pixel, so sizes are pixel heights.
const fontDPI = 72

// FontSource is a parsed scalable font plus a cache of faces keyed by size.
// It is not safe for concurrent use.
type FontSource struct {
	name  string
	font  *opentype.Font
	faces map[int]font.Face
}

// NewFontSource parses TrueType/OpenType data.
func NewFontSource(data []byte) (*FontSource, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textfit: failed to parse font: %w", err)
	}
	src := &FontSource{font: f, faces: make(map[int]font.Face)}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		src.name = name
	}
	return src, nil
}

// LoadFontFile reads and parses the font at path. An empty path selects the
// built-in Go Regular font.
func LoadFontFile(path string) (*FontSource, error) {
	if path == "" {
		return NewFontSource(goregular.TTF)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textfit: failed to read font %q: %w", path, err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" when the font carries none.
func (s *FontSource) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Face returns the face for the given pixel size, creating it on first use.
func (s *FontSource) Face(size int) (font.Face, error) {
	if s == nil || s.font == nil {
		return nil, ErrNoFont
	}
	if size < 1 {
		return nil, fmt.Errorf("textfit: invalid font size %d", size)
	}
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size: float64(size), DPI: fontDPI, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("textfit: can't make font face at size %d: %w", size, err)
	}
	s.faces[size] = f
	return f, nil
}
