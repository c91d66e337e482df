package view

import (
	"image"

	"github.com/soocke/retext/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImagePane owns the label that shows the composed editor frame.
type ImagePane struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
}

// Internal state tracks the current photo so the old one is disposed before
// replacing it, preventing accumulation of off-screen image data.

// imageInset is the label border around the photo. Padding is zero so the
// photo starts exactly one inset from the label origin.
const imageInset = 1

// NewImagePane creates the label, grids it into parent and returns the pane.
func NewImagePane(parent *FrameWidget, row int) *ImagePane {
	placeholder := image.NewNRGBA(image.Rect(0, 0, 320, 200))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Borderwidth(imageInset), Padx(0), Pady(0), Relief("sunken"), Cursor("crosshair"))
	Grid(lbl, In(parent), Row(row), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	return &ImagePane{label: lbl, prevPhoto: photo}
}

// ShowFrame replaces the displayed photo. The frame is shown at its own size;
// scaling happens before it reaches the view.
func (v *ImagePane) ShowFrame(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}
