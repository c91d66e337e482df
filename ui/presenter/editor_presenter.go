package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/soocke/retext/domain/editor"
	"github.com/soocke/retext/domain/textfit"
	"github.com/soocke/retext/ui/images"
	"github.com/soocke/retext/ui/model"
	"github.com/soocke/retext/ui/theme"
)

// EditorSession provides the editor session methods the presenter requires.
type EditorSession interface {
	Handle(ev editor.Event)
	Mode() editor.Mode
	Text() string
	Selection() textfit.Selection
	DragRect() (image.Rectangle, bool)
	Working() *image.NRGBA
	Revision() uint64
}

// FrameView displays composed frames and selection details.
type FrameView interface {
	ShowFrame(img image.Image)
	SetSelectionInfo(text string)
}

// EditorPresenter forwards decoded input to the session and pushes display
// frames to the view when the session changed.
type EditorPresenter struct {
	session  EditorSession
	viewport *model.ViewportModel
	view     FrameView
	logger   *slog.Logger
	maxW     int
	maxH     int
	shown    uint64
	primed   bool
}

func NewEditorPresenter(session EditorSession, viewport *model.ViewportModel, view FrameView, maxW, maxH int, logger *slog.Logger) *EditorPresenter {
	if viewport == nil {
		viewport = model.NewViewportModel()
	}
	return &EditorPresenter{session: session, viewport: viewport, view: view, maxW: maxW, maxH: maxH, logger: logger}
}

// Dispatch maps pointer events from display to image coordinates and hands
// the event to the session.
func (p *EditorPresenter) Dispatch(ev editor.Event) {
	if p == nil || p.session == nil || ev == nil {
		return
	}
	switch e := ev.(type) {
	case editor.PointerDown:
		ev = editor.PointerDown{Pt: p.viewport.ToImage(e.Pt)}
	case editor.PointerMove:
		ev = editor.PointerMove{Pt: p.viewport.ToImage(e.Pt)}
	case editor.PointerUp:
		ev = editor.PointerUp{Pt: p.viewport.ToImage(e.Pt)}
	}
	p.session.Handle(ev)
}

// Refresh composes and shows a new frame if the session revision moved since
// the last one shown.
func (p *EditorPresenter) Refresh() {
	if p == nil || p.session == nil || p.view == nil {
		return
	}
	rev := p.session.Revision()
	if p.primed && rev == p.shown {
		return
	}
	p.primed, p.shown = true, rev
	frame := p.Compose()
	if p.logger != nil {
		p.logger.Debug("frame refreshed", "revision", rev, "scaled", p.viewport.Scaled())
	}
	p.view.ShowFrame(frame)
	p.view.SetSelectionInfo(p.selectionInfo())
}

// Compose builds the display frame: the working image scaled to the viewport
// with the drag outline and typing caption on top.
func (p *EditorPresenter) Compose() *image.NRGBA {
	work := p.session.Working()
	disp := images.ScaleToFit(work, p.maxW, p.maxH)
	p.viewport.SetSizes(work.Bounds(), disp.Bounds())
	frame := imaging.Clone(disp)
	if r, ok := p.session.DragRect(); ok {
		images.DrawOutline(frame, p.viewport.ToDisplay(r), theme.SelectionOutline, 2)
	}
	if p.session.Mode() == editor.ModeTyping {
		images.DrawCaption(frame, "Input: "+p.session.Text()+"_", image.Pt(10, 10), theme.CaptionText, theme.CaptionBackdrop)
	}
	return frame
}

func (p *EditorPresenter) selectionInfo() string {
	if r, ok := p.session.DragRect(); ok {
		return fmt.Sprintf("Selecting %dx%d", r.Dx(), r.Dy())
	}
	sel := p.session.Selection()
	if !sel.Complete() {
		return "Selection: none"
	}
	r := sel.Rect()
	return fmt.Sprintf("Selection: %dx%d at (%d,%d)", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
}
