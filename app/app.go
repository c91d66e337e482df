package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/retext/config"
	"github.com/soocke/retext/domain/editor"
	"github.com/soocke/retext/ui/view"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

type app struct {
	container *AppContainer
	logger    *slog.Logger
	poll      time.Duration
	afterID   string
	closed    bool
}

// NewApp builds the container for img and prepares the main window.
func NewApp(title string, cfg *config.Config, img image.Image, logger *slog.Logger) (*app, error) {
	a := &app{logger: logger, poll: time.Duration(cfg.PollMillis) * time.Millisecond}
	c, err := BuildContainer(cfg, img, logger, a.exitHandler)
	if err != nil {
		return nil, err
	}
	a.container = c

	App.WmTitle(fmt.Sprintf("%s [%s]", title, c.Fonts.Name()))
	WmProtocol(App, "WM_DELETE_WINDOW", a.closeRequested)
	return a, nil
}

// Start builds the UI, starts the update loop and blocks until the window is
// destroyed.
func (a *app) Start() {
	view.InitStyles()
	c := a.container
	c.RootView.Build(c.EditorPresenter.Dispatch)
	c.Loop.Schedule = a.scheduleUpdate
	c.Loop.Tick()
	App.Wait()
}

// closeRequested routes the window manager close through the session so the
// quit path is the same as the keyboard and toolbar.
func (a *app) closeRequested() {
	if s := a.container.Session; s != nil && !s.Done() {
		a.container.EditorPresenter.Dispatch(editor.KeyCommand{Cmd: editor.CmdQuit})
		return
	}
	a.exitHandler()
}

func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	if a.closed {
		return
	}
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.poll, func() { a.container.Loop.Tick() })
}
