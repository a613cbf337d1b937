package app

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"flashdeck/internal/config"
	"flashdeck/internal/deck"
	"flashdeck/internal/gui"
	"flashdeck/internal/logger"
	"flashdeck/internal/session"
)

const (
	AppName    = "Flashdeck"
	AppID      = "io.flashdeck.app"
	AppVersion = "1.0.0"
)

// Application wires configuration, logging, the loaded deck and the
// Fyne window together for one study session.
type Application struct {
	cfg    *config.Config
	logger logger.Logger

	fyneApp fyne.App
	window  fyne.Window

	session    *session.Session
	view       *gui.View
	controller *gui.Controller
}

// New loads the deck named by cfg and builds the main window. A deck
// that cannot be loaded is returned as an error; a missing or broken
// font file is only a warning.
func New(cfg *config.Config, log logger.Logger) (*Application, error) {
	cards, err := deck.Load(cfg.CardsPath)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(cards)
	if err != nil {
		return nil, err
	}

	log.Info("app", "deck loaded", map[string]interface{}{
		"cards_path": cfg.CardsPath,
		"cards":      sess.Size(),
	})

	fyneApp := app.NewWithID(AppID)

	deckTheme, err := gui.NewTheme(cfg.FontPath)
	if err != nil {
		log.Warning("app", "font unavailable, using built-in font", map[string]interface{}{
			"font_path": cfg.FontPath,
			"error":     err.Error(),
		})
	}
	fyneApp.Settings().SetTheme(deckTheme)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.CenterOnScreen()
	window.SetMaster()

	view := gui.NewView(window)
	controller := gui.NewController(sess, view, window, log)

	return &Application{
		cfg:        cfg,
		logger:     log,
		fyneApp:    fyneApp,
		window:     window,
		session:    sess,
		view:       view,
		controller: controller,
	}, nil
}

// Run shows the window and blocks until it closes or ctx is
// cancelled. Closing the window, ESC included, ends the session
// unconditionally.
func (a *Application) Run(ctx context.Context) error {
	a.controller.Attach()

	go a.watchShutdown(ctx)

	a.logger.Info("app", "starting UI", map[string]interface{}{
		"version": AppVersion,
	})
	a.window.ShowAndRun()

	a.logger.Info("app", "session ended", nil)
	return nil
}

// watchShutdown quits the UI loop when the context is cancelled, so
// SIGINT and SIGTERM unwind through the same path as a window close.
func (a *Application) watchShutdown(ctx context.Context) {
	<-ctx.Done()
	a.logger.Info("app", "shutdown requested", nil)
	fyne.Do(func() {
		a.fyneApp.Quit()
	})
}
