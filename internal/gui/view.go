package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"flashdeck/internal/gui/components"
	"flashdeck/internal/session"
)

// View is the single-window presentation of a study session.
type View struct {
	window fyne.Window

	cardFace      *components.CardFace
	statusFooter  *components.StatusFooter
	mainContainer *fyne.Container
}

// NewView builds the window content: the card face centered above the
// status footer.
func NewView(window fyne.Window) *View {
	view := &View{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (v *View) initializeComponents() {
	v.cardFace = components.NewCardFace()
	v.statusFooter = components.NewStatusFooter()
}

func (v *View) buildLayout() {
	v.mainContainer = container.NewBorder(
		nil,
		v.statusFooter.GetContainer(),
		nil,
		nil,
		container.NewCenter(v.cardFace.GetContainer()),
	)

	v.window.SetContent(v.mainContainer)
}

// ShowSession renders the session's current card, side indicator and
// position counter.
func (v *View) ShowSession(s *session.Session) {
	v.cardFace.SetCard(s.CurrentText(), s.Flipped())
	v.statusFooter.SetFlipped(s.Flipped())
	v.statusFooter.SetCounter(s.Counter())
}

// CardFace exposes the card face component.
func (v *View) CardFace() *components.CardFace {
	return v.cardFace
}

// StatusFooter exposes the footer component.
func (v *View) StatusFooter() *components.StatusFooter {
	return v.statusFooter
}
