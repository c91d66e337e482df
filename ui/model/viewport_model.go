package model

import (
	"image"
)

// ViewportModel maps between image pixels and the possibly downscaled
// display. The zero value is an identity mapping and is usable.
// No synchronization needed: updates occur on the UI thread.
type ViewportModel struct {
	image   image.Rectangle
	display image.Rectangle
}

func NewViewportModel() *ViewportModel { return &ViewportModel{} }

// SetSizes records the image bounds and the bounds of its displayed copy.
func (m *ViewportModel) SetSizes(img, display image.Rectangle) {
	if m == nil {
		return
	}
	// an empty display cannot be mapped; fall back to identity
	if display.Dx() <= 0 || display.Dy() <= 0 {
		display = img
	}
	m.image, m.display = img, display
}

// Scaled reports whether the display differs in size from the image.
func (m *ViewportModel) Scaled() bool {
	if m == nil {
		return false
	}
	return m.image.Size() != m.display.Size()
}

// ToImage converts a display point to image coordinates, clamped to the
// image bounds.
func (m *ViewportModel) ToImage(p image.Point) image.Point {
	if m == nil || m.image.Empty() {
		return p
	}
	x := m.image.Min.X + (p.X-m.display.Min.X)*m.image.Dx()/m.display.Dx()
	y := m.image.Min.Y + (p.Y-m.display.Min.Y)*m.image.Dy()/m.display.Dy()
	return image.Pt(
		min(max(x, m.image.Min.X), m.image.Max.X),
		min(max(y, m.image.Min.Y), m.image.Max.Y),
	)
}

// ToDisplay converts an image rectangle to display coordinates.
func (m *ViewportModel) ToDisplay(r image.Rectangle) image.Rectangle {
	if m == nil || m.image.Empty() || !m.Scaled() {
		return r
	}
	conv := func(p image.Point) image.Point {
		return image.Pt(
			m.display.Min.X+(p.X-m.image.Min.X)*m.display.Dx()/m.image.Dx(),
			m.display.Min.Y+(p.Y-m.image.Min.Y)*m.display.Dy()/m.image.Dy(),
		)
	}
	return image.Rectangle{Min: conv(r.Min), Max: conv(r.Max)}
}
