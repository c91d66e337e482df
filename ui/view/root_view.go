package view

import (
	"image"
	"log/slog"

	"github.com/soocke/retext/domain/editor"
	"github.com/soocke/retext/ui/input"
	"github.com/soocke/retext/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and turns Tk callbacks
// into editor events. It exposes minimal exported fields for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Image *ImagePane

	// Widgets
	StateLabel   *TLabelWidget
	InfoLabel    *TLabelWidget
	MessageLabel *TLabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	ShowFrame(img image.Image)
	SetSelectionInfo(text string)
	SetStateLabel(text string)
	SetMessage(msg string, isError bool)
}

var _ UI = (*RootView)(nil)

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout and binds input. Every decoded event is passed
// to onEvent.
func (rv *RootView) Build(onEvent func(editor.Event)) {
	if rv == nil || onEvent == nil {
		return
	}
	command := func(cmd editor.Command) func() {
		return func() { onEvent(editor.KeyCommand{Cmd: cmd}) }
	}

	// Row 0: toolbar
	bar := Frame()
	Grid(bar, Row(0), Column(0), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		label string
		style string
		cmd   editor.Command
	}{
		{"Type [t]", theme.StylePrimaryButton, editor.CmdType},
		{"Save [s]", theme.StylePrimaryButton, editor.CmdSave},
		{"Reset [r]", theme.StylePrimaryButton, editor.CmdReset},
		{"Quit [q]", theme.StyleDangerButton, editor.CmdQuit},
	}
	for i, b := range buttons {
		btn := TButton(Txt(b.label), Style(b.style), Command(command(b.cmd)))
		Grid(btn, In(bar), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}

	// Row 1: image
	canvas := Frame()
	Grid(canvas, Row(1), Column(0), Sticky("nsew"))
	rv.Image = NewImagePane(canvas, 0)

	// Row 2: status bar
	status := Frame()
	Grid(status, Row(2), Column(0), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.StateLabel = TLabel(Txt("Mode: <none>"), Style(theme.StyleStateLabel))
	Grid(rv.StateLabel, In(status), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	rv.InfoLabel = TLabel(Txt("Selection: none"), Style(theme.StyleInfoLabel))
	Grid(rv.InfoLabel, In(status), Row(0), Column(1), Sticky("w"), Padx("0.2m"))
	rv.MessageLabel = TLabel(Txt("Drag to select a region, then press t"), Style(theme.StyleMessageLabel))
	Grid(rv.MessageLabel, In(status), Row(0), Column(2), Sticky("we"), Padx("0.2m"))
	GridColumnConfigure(status.Window, 2, Weight(1))

	pointer := func(mk func(image.Point) editor.Event) func(*Event) {
		return func(e *Event) { onEvent(mk(input.LabelPoint(e.X, e.Y, imageInset))) }
	}
	Bind(rv.Image.label, "<ButtonPress-1>", Command(pointer(func(p image.Point) editor.Event { return editor.PointerDown{Pt: p} })))
	Bind(rv.Image.label, "<B1-Motion>", Command(pointer(func(p image.Point) editor.Event { return editor.PointerMove{Pt: p} })))
	Bind(rv.Image.label, "<ButtonRelease-1>", Command(pointer(func(p image.Point) editor.Event { return editor.PointerUp{Pt: p} })))
	Bind(App, "<KeyPress>", Command(func(e *Event) {
		ev, ok := input.DecodeKey(e.Keysym)
		if !ok {
			if rv.logger != nil {
				rv.logger.Debug("key ignored", "keysym", e.Keysym)
			}
			return
		}
		onEvent(ev)
	}))
}

// ShowFrame proxies to the image pane.
func (rv *RootView) ShowFrame(img image.Image) {
	if rv != nil && rv.Image != nil {
		rv.Image.ShowFrame(img)
	}
}

// SetSelectionInfo updates the selection label text.
func (rv *RootView) SetSelectionInfo(text string) {
	if rv != nil && rv.InfoLabel != nil {
		rv.InfoLabel.Configure(Txt(text))
	}
}

// SetStateLabel updates the mode label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetMessage shows msg in the status bar, styled as an error if isError.
func (rv *RootView) SetMessage(msg string, isError bool) {
	if rv == nil || rv.MessageLabel == nil {
		return
	}
	style := theme.StyleMessageLabel
	if isError {
		style = theme.StyleErrorLabel
	}
	rv.MessageLabel.Configure(Txt(msg), Style(style))
}
