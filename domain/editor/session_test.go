package editor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/soocke/retext/domain/textfit"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeRenderer records calls and paints the selection black when applied.
type fakeRenderer struct {
	calls []string
	err   error
}

func (r *fakeRenderer) Replace(dst *image.NRGBA, sel textfit.Selection, text string) (textfit.Placement, bool, error) {
	r.calls = append(r.calls, text)
	if r.err != nil {
		// Simulate a renderer that damaged the image before failing.
		draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
		return textfit.Placement{}, false, r.err
	}
	if !sel.Complete() || text == "" {
		return textfit.Placement{}, false, nil
	}
	draw.Draw(dst, sel.Rect(), image.Black, image.Point{}, draw.Src)
	return textfit.Placement{Rect: sel.Rect(), Size: 12}, true, nil
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 77, A: 255})
		}
	}
	return img
}

func selectRect(s *Session, a, b image.Point) {
	s.Handle(PointerDown{Pt: a})
	s.Handle(PointerMove{Pt: b})
	s.Handle(PointerUp{Pt: b})
}

func typeString(s *Session, text string) {
	for _, c := range text {
		s.Handle(KeyChar{Char: c})
	}
}

func TestSession_SelectionFlow(t *testing.T) {
	s := NewSession(testImage(), &fakeRenderer{}, Callbacks{}, discardLogger)
	s.Handle(PointerDown{Pt: image.Pt(110, 60)})
	if s.Mode() != ModeSelecting {
		t.Fatalf("expected selecting, got %v", s.Mode())
	}
	s.Handle(PointerMove{Pt: image.Pt(10, 10)})
	if r, ok := s.DragRect(); !ok || r != image.Rect(10, 10, 110, 60) {
		t.Fatalf("unexpected drag rect %v ok=%v", r, ok)
	}
	s.Handle(PointerUp{Pt: image.Pt(10, 10)})
	if s.Mode() != ModeIdle || !s.Selection().Complete() {
		t.Fatalf("expected idle with complete selection, mode=%v", s.Mode())
	}
	if _, ok := s.DragRect(); ok {
		t.Fatalf("drag rect must disappear after release")
	}
}

func TestSession_TypingRequiresSelection(t *testing.T) {
	s := NewSession(testImage(), &fakeRenderer{}, Callbacks{}, discardLogger)
	s.Handle(KeyChar{Char: 't'})
	if s.Mode() != ModeIdle {
		t.Fatalf("typing entered without selection")
	}
	s.Handle(PointerDown{Pt: image.Pt(5, 5)})
	s.Handle(KeyCommand{Cmd: CmdType})
	if s.Mode() != ModeSelecting {
		t.Fatalf("typing entered mid-drag")
	}
	s.Handle(PointerUp{Pt: image.Pt(50, 50)})
	s.Handle(KeyChar{Char: 't'})
	if s.Mode() != ModeTyping || s.Text() != "" {
		t.Fatalf("expected typing with empty text, mode=%v text=%q", s.Mode(), s.Text())
	}
	s.Handle(KeyChar{Char: 't'})
	if s.Mode() != ModeTyping || s.Text() != "t" {
		t.Fatalf("'t' while typing is text, got mode=%v text=%q", s.Mode(), s.Text())
	}
}

func TestSession_BackspaceThenConfirm(t *testing.T) {
	r := &fakeRenderer{}
	s := NewSession(testImage(), r, Callbacks{}, discardLogger)
	selectRect(s, image.Pt(10, 10), image.Pt(110, 60))
	s.Handle(KeyChar{Char: 't'})
	typeString(s, "AB")
	s.Handle(KeyBackspace{})
	s.Handle(KeyEnter{})
	if len(r.calls) != 1 || r.calls[0] != "A" {
		t.Fatalf("expected one render of %q, got %q", "A", r.calls)
	}
	if s.Mode() != ModeIdle || s.Selection().Complete() || s.Text() != "" {
		t.Fatalf("commit must clear state: mode=%v sel=%v text=%q", s.Mode(), s.Selection().Complete(), s.Text())
	}
	if !bytes.Equal(s.Working().Pix, s.Baseline().Pix) {
		t.Fatalf("baseline must match working after commit")
	}
	if c := s.Working().NRGBAAt(50, 30); c != (color.NRGBA{A: 255}) {
		t.Fatalf("expected rendered region, got %v", c)
	}
}

func TestSession_TypingFiltersAndBackspaceOnEmpty(t *testing.T) {
	s := NewSession(testImage(), &fakeRenderer{}, Callbacks{}, discardLogger)
	selectRect(s, image.Pt(0, 0), image.Pt(20, 20))
	s.Handle(KeyCommand{Cmd: CmdType})
	s.Handle(KeyBackspace{})
	for _, c := range []rune{'\t', 0x7f, 'é', '\n', '~', ' ', 'q'} {
		s.Handle(KeyChar{Char: c})
	}
	if s.Text() != "~ q" {
		t.Fatalf("unexpected pending text %q", s.Text())
	}
	if s.Done() {
		t.Fatalf("'q' while typing must not quit")
	}
}

func TestSession_ConfirmWithoutSelectionIsNoop(t *testing.T) {
	r := &fakeRenderer{}
	s := NewSession(testImage(), r, Callbacks{}, discardLogger)
	before := bytes.Clone(s.Working().Pix)
	s.Handle(KeyEnter{})
	typeString(s, "xyz")
	s.Handle(KeyEnter{})
	if len(r.calls) != 0 {
		t.Fatalf("renderer invoked outside typing: %q", r.calls)
	}
	if !bytes.Equal(before, s.Working().Pix) {
		t.Fatalf("image changed without selection")
	}
}

func TestSession_ConfirmEmptyTextExitsTyping(t *testing.T) {
	r := &fakeRenderer{}
	s := NewSession(testImage(), r, Callbacks{}, discardLogger)
	before := bytes.Clone(s.Working().Pix)
	selectRect(s, image.Pt(10, 10), image.Pt(60, 60))
	s.Handle(KeyChar{Char: 't'})
	s.Handle(KeyEnter{})
	if s.Mode() != ModeIdle || s.Selection().Complete() {
		t.Fatalf("commit must exit typing and clear selection")
	}
	if !bytes.Equal(before, s.Working().Pix) {
		t.Fatalf("empty commit changed the image")
	}
}

func TestSession_RenderErrorLeavesImageUnchanged(t *testing.T) {
	r := &fakeRenderer{err: errors.New("broken font")}
	s := NewSession(testImage(), r, Callbacks{}, discardLogger)
	var msgs []string
	s.AddMessageListener(func(level slog.Level, msg string) {
		if level == slog.LevelError {
			msgs = append(msgs, msg)
		}
	})
	before := bytes.Clone(s.Working().Pix)
	selectRect(s, image.Pt(10, 10), image.Pt(60, 60))
	s.Handle(KeyChar{Char: 't'})
	typeString(s, "hi")
	s.Handle(KeyEnter{})
	if !bytes.Equal(before, s.Working().Pix) {
		t.Fatalf("failed edit left a partial change")
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one error message, got %v", msgs)
	}
	if s.Done() {
		t.Fatalf("font error must not end the session")
	}
}

func TestSession_ResetRestoresOriginal(t *testing.T) {
	src := testImage()
	want := bytes.Clone(src.Pix)
	s := NewSession(src, &fakeRenderer{}, Callbacks{}, discardLogger)
	for i := 0; i < 3; i++ {
		selectRect(s, image.Pt(i*10, i*10), image.Pt(100+i, 50+i))
		s.Handle(KeyChar{Char: 't'})
		typeString(s, "edit")
		s.Handle(KeyEnter{})
	}
	if bytes.Equal(want, s.Working().Pix) {
		t.Fatalf("edits did not change the image")
	}
	selectRect(s, image.Pt(1, 1), image.Pt(9, 9))
	s.Handle(KeyChar{Char: 't'})
	typeString(s, "pending")
	s.Handle(KeyCommand{Cmd: CmdReset})
	if !bytes.Equal(want, s.Working().Pix) || !bytes.Equal(want, s.Baseline().Pix) {
		t.Fatalf("reset did not restore the original decode")
	}
	if s.Mode() != ModeIdle || s.Text() != "" || s.Selection().Complete() {
		t.Fatalf("reset must clear state")
	}
	s.Handle(KeyChar{Char: 'r'})
	if !bytes.Equal(want, s.Working().Pix) {
		t.Fatalf("second reset changed the image")
	}
}

func TestSession_SaveKeepsState(t *testing.T) {
	var saved [][]byte
	s := NewSession(testImage(), &fakeRenderer{}, Callbacks{
		Save: func(img *image.NRGBA) (string, error) {
			saved = append(saved, bytes.Clone(img.Pix))
			return "out.png", nil
		},
	}, discardLogger)
	selectRect(s, image.Pt(0, 0), image.Pt(10, 10))
	rev := s.Revision()
	s.Handle(KeyChar{Char: 's'})
	s.Handle(KeyCommand{Cmd: CmdSave})
	if len(saved) != 2 || !bytes.Equal(saved[0], saved[1]) {
		t.Fatalf("expected two identical saves, got %d", len(saved))
	}
	if !s.Selection().Complete() || s.Revision() != rev {
		t.Fatalf("save must not alter state")
	}
}

func TestSession_QuitIsTerminal(t *testing.T) {
	quits := 0
	r := &fakeRenderer{}
	s := NewSession(testImage(), r, Callbacks{Quit: func() { quits++ }}, discardLogger)
	s.Handle(KeyChar{Char: 'q'})
	if !s.Done() || quits != 1 {
		t.Fatalf("expected quit, done=%v quits=%d", s.Done(), quits)
	}
	s.Handle(PointerDown{Pt: image.Pt(1, 1)})
	s.Handle(KeyCommand{Cmd: CmdQuit})
	if s.Mode() != ModeIdle || quits != 1 {
		t.Fatalf("events after quit must be ignored")
	}
}

func TestSession_PointerIgnoredWhileTyping(t *testing.T) {
	s := NewSession(testImage(), &fakeRenderer{}, Callbacks{}, discardLogger)
	selectRect(s, image.Pt(10, 10), image.Pt(60, 60))
	s.Handle(KeyChar{Char: 't'})
	s.Handle(PointerDown{Pt: image.Pt(0, 0)})
	s.Handle(PointerUp{Pt: image.Pt(5, 5)})
	if s.Mode() != ModeTyping || s.Selection().Rect() != image.Rect(10, 10, 60, 60) {
		t.Fatalf("typing selection changed: mode=%v rect=%v", s.Mode(), s.Selection().Rect())
	}
}

func TestSession_ModeListener(t *testing.T) {
	s := NewSession(testImage(), &fakeRenderer{}, Callbacks{}, discardLogger)
	var seq []Mode
	s.AddListener(func(prev, next Mode) { seq = append(seq, next) })
	selectRect(s, image.Pt(0, 0), image.Pt(30, 30))
	s.Handle(KeyChar{Char: 't'})
	s.Handle(KeyEnter{})
	want := []Mode{ModeSelecting, ModeIdle, ModeTyping, ModeIdle}
	if len(seq) != len(want) {
		t.Fatalf("transitions %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("transitions %v, want %v", seq, want)
		}
	}
}

func TestSession_WithTextfitEngine(t *testing.T) {
	src, err := textfit.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("font: %v", err)
	}
	eng, err := textfit.NewEngine(src, textfit.Options{}, discardLogger)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	s := NewSession(testImage(), eng, Callbacks{}, discardLogger)
	selectRect(s, image.Pt(10, 10), image.Pt(110, 60))
	s.Handle(KeyChar{Char: 't'})
	typeString(s, "OK")
	s.Handle(KeyEnter{})
	if c := s.Working().NRGBAAt(11, 11); c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("selection corner not cleared: %v", c)
	}
	if !bytes.Equal(s.Working().Pix, s.Baseline().Pix) {
		t.Fatalf("baseline not updated after commit")
	}
}
