package textfit

import "image"

// Selection records the corner points of a drag gesture in image pixel
// coordinates. The zero value is an empty selection.
//
// A selection is complete once exactly two points were recorded: the press
// point and the release point. Zero-area selections are complete too.
type Selection struct {
	pts [2]image.Point
	n   int
}

// NewSelection returns a complete selection spanning the two corners.
func NewSelection(a, b image.Point) Selection {
	return Selection{pts: [2]image.Point{a, b}, n: 2}
}

// Begin discards any previous points and records the first corner.
func (s *Selection) Begin(p image.Point) {
	s.pts = [2]image.Point{p}
	s.n = 1
}

// Finish records the second corner. It is ignored unless exactly one point
// has been recorded.
func (s *Selection) Finish(p image.Point) bool {
	if s.n != 1 {
		return false
	}
	s.pts[1] = p
	s.n = 2
	return true
}

// Clear drops all recorded points.
func (s *Selection) Clear() { *s = Selection{} }

// Complete reports whether both corners are recorded.
func (s Selection) Complete() bool { return s.n == 2 }

// Anchor returns the first recorded corner, if any.
func (s Selection) Anchor() (image.Point, bool) {
	if s.n == 0 {
		return image.Point{}, false
	}
	return s.pts[0], true
}

// Rect normalizes the two corners into a canonical rectangle whose width and
// height are non-negative. It returns the empty rectangle for incomplete
// selections.
func (s Selection) Rect() image.Rectangle {
	if !s.Complete() {
		return image.Rectangle{}
	}
	return image.Rectangle{Min: s.pts[0], Max: s.pts[1]}.Canon()
}
