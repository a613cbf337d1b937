package gui

import (
	"fyne.io/fyne/v2"

	"flashdeck/internal/logger"
	"flashdeck/internal/session"
)

// Controller translates key presses into session operations and
// refreshes the view. It owns the only mutable state of the UI, the
// session, so navigation stays testable without a display.
type Controller struct {
	session *session.Session
	view    *View
	window  fyne.Window
	logger  logger.Logger
}

func NewController(s *session.Session, view *View, window fyne.Window, log logger.Logger) *Controller {
	return &Controller{
		session: s,
		view:    view,
		window:  window,
		logger:  log,
	}
}

// Attach installs the keyboard handler on the window canvas and
// renders the initial card.
func (c *Controller) Attach() {
	c.window.Canvas().SetOnTypedKey(c.handleKey)
	c.view.ShowSession(c.session)

	c.logger.Info("controller", "session started", map[string]interface{}{
		"cards": c.session.Size(),
	})
}

// handleKey applies at most one navigation or flip operation per
// event. ESC closes the window immediately.
func (c *Controller) handleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeySpace, fyne.KeyUp:
		c.session.Flip()
	case fyne.KeyRight:
		c.session.Next()
	case fyne.KeyLeft:
		c.session.Previous()
	case fyne.KeyEscape:
		c.logger.Info("controller", "exit requested", nil)
		c.window.Close()
		return
	default:
		return
	}

	c.logger.Debug("controller", "card state changed", map[string]interface{}{
		"index":   c.session.Index(),
		"flipped": c.session.Flipped(),
	})
	c.view.ShowSession(c.session)
}
