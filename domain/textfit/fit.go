package textfit

import (
	"fmt"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Default bounds of the font size search, in pixels.
const (
	DefaultMinSize = 5
	DefaultMaxSize = 300
)

// Options bound the font size search. Zero fields take the defaults.
type Options struct {
	MinSize int
	MaxSize int
}

// Engine fits text into rectangles and draws it with a single font.
type Engine struct {
	src    *FontSource
	min    int
	max    int
	logger *slog.Logger
}

// NewEngine returns an engine drawing with src. The font is validated by
// building the minimum-size face so later edits cannot fail on a broken font.
func NewEngine(src *FontSource, opts Options, logger *slog.Logger) (*Engine, error) {
	if src == nil {
		return nil, ErrNoFont
	}
	if opts.MinSize < 1 {
		opts.MinSize = DefaultMinSize
	}
	if opts.MaxSize < opts.MinSize {
		opts.MaxSize = max(DefaultMaxSize, opts.MinSize)
	}
	if _, err := src.Face(opts.MinSize); err != nil {
		return nil, err
	}
	return &Engine{src: src, min: opts.MinSize, max: opts.MaxSize, logger: logger}, nil
}

// SizeRange returns the inclusive search bounds.
func (e *Engine) SizeRange() (int, int) { return e.min, e.max }

// Metrics is the measured ink box of a string at one size. Bounds is relative
// to the dot (baseline origin); Width and Height are whole pixels covering it.
type Metrics struct {
	Size   int
	Bounds fixed.Rectangle26_6
	Width  int
	Height int
}

// Fits reports whether the measured box fits a w x h rectangle.
func (m Metrics) Fits(w, h int) bool { return m.Width <= w && m.Height <= h }

// Measure returns the ink box of text at size.
func (e *Engine) Measure(text string, size int) (Metrics, error) {
	face, err := e.src.Face(size)
	if err != nil {
		return Metrics{}, err
	}
	b, _ := font.BoundString(face, text)
	return Metrics{
		Size:   size,
		Bounds: b,
		Width:  b.Max.X.Ceil() - b.Min.X.Floor(),
		Height: b.Max.Y.Ceil() - b.Min.Y.Floor(),
	}, nil
}

// Fit returns the largest size whose ink box fits w x h. Sizes are tried in
// increasing order from the minimum and the search stops at the first size
// overflowing either dimension. When the minimum already overflows it is
// returned as is. The search never passes the configured maximum.
func (e *Engine) Fit(text string, w, h int) (Metrics, error) {
	best, err := e.Measure(text, e.min)
	if err != nil {
		return Metrics{}, fmt.Errorf("textfit: measure at size %d: %w", e.min, err)
	}
	if !best.Fits(w, h) {
		if e.logger != nil {
			e.logger.Debug("text overflows at minimum size", "size", e.min, "w", w, "h", h, "text_w", best.Width, "text_h", best.Height)
		}
		return best, nil
	}
	for size := e.min + 1; size <= e.max; size++ {
		m, err := e.Measure(text, size)
		if err != nil {
			return Metrics{}, fmt.Errorf("textfit: measure at size %d: %w", size, err)
		}
		if !m.Fits(w, h) {
			break
		}
		best = m
	}
	return best, nil
}
