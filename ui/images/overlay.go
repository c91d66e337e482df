package images

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawOutline strokes the border of r with the given thickness, clipped to dst.
func DrawOutline(dst draw.Image, r image.Rectangle, c color.Color, thickness int) {
	if dst == nil || thickness < 1 {
		return
	}
	r = r.Canon()
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness),
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y),
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(r).Intersect(dst.Bounds()), src, image.Point{}, draw.Src)
	}
}

// captionPad is the backdrop margin around caption text.
const captionPad = 4

// DrawCaption writes a single line of text with its top-left corner at pt on a
// translucent backdrop. It returns the area covered.
func DrawCaption(dst draw.Image, text string, pt image.Point, fg, bg color.Color) image.Rectangle {
	if dst == nil || text == "" {
		return image.Rectangle{}
	}
	face := basicfont.Face7x13
	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	area := image.Rect(pt.X, pt.Y, pt.X+w+2*captionPad, pt.Y+h+2*captionPad)
	draw.Draw(dst, area.Intersect(dst.Bounds()), image.NewUniform(bg), image.Point{}, draw.Over)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(pt.X+captionPad, pt.Y+captionPad+m.Ascent.Ceil()),
	}
	d.DrawString(text)
	return area
}
