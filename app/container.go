package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/retext/config"
	"github.com/soocke/retext/domain/editor"
	"github.com/soocke/retext/domain/imagefile"
	"github.com/soocke/retext/domain/textfit"
	"github.com/soocke/retext/ui/model"
	"github.com/soocke/retext/ui/presenter"
	"github.com/soocke/retext/ui/view"
)

// AppContainer assembles the engine, session, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Fonts    *textfit.FontSource
	Engine   *textfit.Engine
	Session  *editor.Session
	Viewport *model.ViewportModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	EditorPresenter *presenter.EditorPresenter
	StatusPresenter *presenter.StatusPresenter
	Loop            *presenter.Loop
}

// BuildContainer constructs all components for editing img. The font is read
// here so a bad font fails before any window exists. quit is called once when
// the session ends.
func BuildContainer(cfg *config.Config, img image.Image, logger *slog.Logger, quit func()) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	fonts, err := textfit.LoadFontFile(cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	c.Fonts = fonts
	c.Engine, err = textfit.NewEngine(fonts, textfit.Options{MinSize: cfg.MinFontSize, MaxSize: cfg.MaxFontSize}, logger)
	if err != nil {
		return nil, fmt.Errorf("font engine: %w", err)
	}
	lo, hi := c.Engine.SizeRange()
	logger.Info("font loaded", "family", fonts.Name(), "min_size", lo, "max_size", hi)

	c.Session = editor.NewSession(img, c.Engine, editor.Callbacks{
		Save: func(working *image.NRGBA) (string, error) {
			return imagefile.Save(cfg.OutputPath, working)
		},
		Quit: quit,
	}, logger)

	// View
	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView

	// Presenters
	c.Viewport = model.NewViewportModel()
	c.EditorPresenter = presenter.NewEditorPresenter(c.Session, c.Viewport, c.UI, cfg.MaxDisplayW, cfg.MaxDisplayH, logger)
	c.StatusPresenter = presenter.NewStatusPresenter(c.UI)
	c.Session.AddListener(c.StatusPresenter.OnMode)
	c.Session.AddMessageListener(c.StatusPresenter.OnMessage)
	// Loop schedule set by the app once Tk is running.
	c.Loop = presenter.NewLoop(c.EditorPresenter, c.StatusPresenter, nil)
	return c, nil
}
