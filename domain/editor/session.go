package editor

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/soocke/retext/domain/textfit"
)

// Session owns the images, selection and pending text of one editing run and
// applies events to them. All methods run on the UI thread; there is no
// locking.
type Session struct {
	logger   *slog.Logger
	renderer Renderer
	actions  Callbacks
	keymap   map[rune]Command

	original *image.NRGBA // decoded source, never mutated
	working  *image.NRGBA // displayed and edited
	baseline *image.NRGBA // last committed state of working

	mode     Mode
	sel      textfit.Selection
	drag     image.Point
	text     []rune
	done     bool
	revision uint64

	modeListeners []ModeListener
	msgListeners  []MessageListener
}

// NewSession starts a session on img. The image is copied; later changes to
// img do not affect the session.
func NewSession(img image.Image, renderer Renderer, actions Callbacks, logger *slog.Logger) *Session {
	original := imaging.Clone(img)
	return &Session{
		logger:   logger,
		renderer: renderer,
		actions:  actions,
		keymap:   DefaultKeymap,
		original: original,
		working:  imaging.Clone(original),
		baseline: imaging.Clone(original),
	}
}

// Handle applies one event. Events after quit are ignored.
func (s *Session) Handle(ev Event) {
	if s.done {
		return
	}
	switch e := ev.(type) {
	case PointerDown:
		s.pointerDown(e.Pt)
	case PointerMove:
		if s.mode == ModeSelecting && e.Pt != s.drag {
			s.drag = e.Pt
			s.revision++
		}
	case PointerUp:
		s.pointerUp(e.Pt)
	case KeyChar:
		s.keyChar(e.Char)
	case KeyBackspace:
		if s.mode == ModeTyping && len(s.text) > 0 {
			s.text = s.text[:len(s.text)-1]
			s.revision++
		}
	case KeyEnter:
		if s.mode == ModeTyping {
			s.commit()
		}
	case KeyCommand:
		s.command(e.Cmd)
	}
}

func (s *Session) pointerDown(pt image.Point) {
	if s.mode == ModeTyping {
		s.debug("pointer ignored while typing", "x", pt.X, "y", pt.Y)
		return
	}
	s.sel.Begin(pt)
	s.drag = pt
	s.transition(ModeSelecting)
	s.revision++
}

func (s *Session) pointerUp(pt image.Point) {
	if s.mode != ModeSelecting {
		return
	}
	s.sel.Finish(pt)
	copy(s.working.Pix, s.baseline.Pix)
	s.transition(ModeIdle)
	s.revision++
	r := s.sel.Rect()
	s.debug("selection finalized", "rect", r.String(), "w", r.Dx(), "h", r.Dy())
}

func (s *Session) keyChar(c rune) {
	if s.mode == ModeTyping {
		if IsPrintable(c) {
			s.text = append(s.text, c)
			s.revision++
		}
		return
	}
	if cmd, ok := s.keymap[c]; ok {
		s.command(cmd)
	}
}

func (s *Session) command(cmd Command) {
	switch cmd {
	case CmdType:
		s.beginTyping()
	case CmdReset:
		s.reset()
	case CmdSave:
		s.save()
	case CmdQuit:
		s.quit()
	}
}

func (s *Session) beginTyping() {
	if s.mode != ModeIdle || !s.sel.Complete() {
		s.debug("typing request ignored", "mode", s.mode.String(), "selection", s.sel.Complete())
		return
	}
	s.text = s.text[:0]
	s.transition(ModeTyping)
	s.revision++
}

// commit hands the pending text to the renderer. Selection and text are
// consumed whatever the outcome.
func (s *Session) commit() {
	text := string(s.text)
	p, ok, err := s.renderer.Replace(s.working, s.sel, text)
	switch {
	case err != nil:
		copy(s.working.Pix, s.baseline.Pix)
		s.notify(slog.LevelError, fmt.Sprintf("Font error: %v", err))
	case ok:
		copy(s.baseline.Pix, s.working.Pix)
		s.notify(slog.LevelInfo, fmt.Sprintf("Replaced %dx%d region with %q at %dpx", p.Rect.Dx(), p.Rect.Dy(), text, p.Size))
	default:
		s.debug("replacement skipped", "selection", s.sel.Complete(), "text", text)
	}
	s.sel.Clear()
	s.text = s.text[:0]
	s.transition(ModeIdle)
	s.revision++
}

func (s *Session) reset() {
	copy(s.working.Pix, s.original.Pix)
	copy(s.baseline.Pix, s.original.Pix)
	s.sel.Clear()
	s.text = s.text[:0]
	s.transition(ModeIdle)
	s.revision++
	s.notify(slog.LevelInfo, "Image reset")
}

func (s *Session) save() {
	if s.actions.Save == nil {
		return
	}
	path, err := s.actions.Save(s.working)
	if err != nil {
		s.notify(slog.LevelError, fmt.Sprintf("Save failed: %v", err))
		return
	}
	s.notify(slog.LevelInfo, "Saved as "+path)
}

func (s *Session) quit() {
	s.done = true
	if s.logger != nil {
		s.logger.Info("session closed")
	}
	if s.actions.Quit != nil {
		s.actions.Quit()
	}
}

func (s *Session) transition(next Mode) {
	prev := s.mode
	if prev == next {
		return
	}
	s.mode = next
	s.debug("editor mode transition", "from", prev.String(), "to", next.String())
	for _, l := range s.modeListeners {
		l(prev, next)
	}
}

func (s *Session) notify(level slog.Level, msg string) {
	if s.logger != nil {
		s.logger.Log(context.Background(), level, msg)
	}
	for _, l := range s.msgListeners {
		l(level, msg)
	}
}

func (s *Session) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

// AddListener registers a mode transition listener.
func (s *Session) AddListener(l ModeListener) { s.modeListeners = append(s.modeListeners, l) }

// AddMessageListener registers a listener for user-facing messages.
func (s *Session) AddMessageListener(l MessageListener) {
	s.msgListeners = append(s.msgListeners, l)
}

func (s *Session) Mode() Mode                   { return s.mode }
func (s *Session) Text() string                 { return string(s.text) }
func (s *Session) Selection() textfit.Selection { return s.sel }
func (s *Session) Done() bool                   { return s.done }

// Working returns the current working image. Callers must not modify it.
func (s *Session) Working() *image.NRGBA { return s.working }

// Baseline returns the last committed image. Callers must not modify it.
func (s *Session) Baseline() *image.NRGBA { return s.baseline }

// Revision increases whenever the displayed state may have changed.
func (s *Session) Revision() uint64 { return s.revision }

// DragRect returns the rectangle being dragged while selecting.
func (s *Session) DragRect() (image.Rectangle, bool) {
	if s.mode != ModeSelecting {
		return image.Rectangle{}, false
	}
	a, ok := s.sel.Anchor()
	if !ok {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: a, Max: s.drag}.Canon(), true
}
