package textfit

import (
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Placement describes where a replacement was drawn.
type Placement struct {
	Rect image.Rectangle // normalized selection
	Box  image.Rectangle // ink box of the text, centered in Rect
	Dot  image.Point     // baseline origin handed to the drawer
	Size int
}

// Place centers the measured box of m inside r. The bound offsets are
// subtracted from the box corner so glyphs are centered by their ink, not by
// their baseline.
func Place(r image.Rectangle, m Metrics) Placement {
	x0 := r.Min.X + floorDiv(r.Dx()-m.Width, 2)
	y0 := r.Min.Y + floorDiv(r.Dy()-m.Height, 2)
	return Placement{
		Rect: r,
		Box:  image.Rect(x0, y0, x0+m.Width, y0+m.Height),
		Dot:  image.Pt(x0-m.Bounds.Min.X.Floor(), y0-m.Bounds.Min.Y.Floor()),
		Size: m.Size,
	}
}

// Replace clears the selected rectangle of dst to white and draws text in
// black, as large as fits and centered.
//
// It returns false without touching dst when the selection is incomplete or
// the text is blank. Fitting happens before the first pixel is written, so an
// error also leaves dst untouched.
func (e *Engine) Replace(dst *image.NRGBA, sel Selection, text string) (Placement, bool, error) {
	if dst == nil || !sel.Complete() || strings.TrimSpace(text) == "" {
		return Placement{}, false, nil
	}
	r := sel.Rect()
	m, err := e.Fit(text, r.Dx(), r.Dy())
	if err != nil {
		return Placement{}, false, err
	}
	face, err := e.src.Face(m.Size)
	if err != nil {
		return Placement{}, false, err
	}
	p := Place(r, m)

	draw.Draw(dst, r.Intersect(dst.Bounds()), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(p.Dot.X, p.Dot.Y),
	}
	d.DrawString(text)

	if e.logger != nil {
		e.logger.Debug("text replaced", "rect", r.String(), "size", m.Size, "dot", p.Dot.String())
	}
	return p, true, nil
}

// floorDiv divides rounding toward negative infinity, so overflowing text is
// centered the same way as fitting text.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
