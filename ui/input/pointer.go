package input

import "image"

// LabelPoint converts a pointer position reported relative to a widget into
// the coordinates of the content it shows, removing the widget's inset
// (border plus internal padding) on both axes.
func LabelPoint(x, y, inset int) image.Point {
	return image.Pt(x-inset, y-inset)
}
