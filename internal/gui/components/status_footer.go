package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const instructions = "SPACE/UP: Flip  |  LEFT/RIGHT: Navigate"

// StatusFooter shows which side of the card is up, the position in
// the deck, and the key bindings.
type StatusFooter struct {
	container *fyne.Container
	side      *canvas.Text
	counter   *canvas.Text
	hint      *canvas.Text
}

// NewStatusFooter creates the footer in its initial question-side state.
func NewStatusFooter() *StatusFooter {
	sf := &StatusFooter{}
	sf.createComponents()
	sf.buildLayout()
	return sf
}

func (sf *StatusFooter) createComponents() {
	sf.side = canvas.NewText("QUESTION", ColorMuted)
	sf.side.TextSize = 20
	sf.side.Alignment = fyne.TextAlignCenter

	sf.counter = canvas.NewText("", ColorMuted)
	sf.counter.TextSize = 18
	sf.counter.Alignment = fyne.TextAlignCenter

	sf.hint = canvas.NewText(instructions, ColorHint)
	sf.hint.TextSize = 16
	sf.hint.Alignment = fyne.TextAlignCenter
}

func (sf *StatusFooter) buildLayout() {
	sf.container = container.NewVBox(
		container.NewCenter(sf.side),
		container.NewCenter(sf.counter),
		container.NewCenter(sf.hint),
	)
}

// SetFlipped switches the side indicator between QUESTION and ANSWER.
func (sf *StatusFooter) SetFlipped(flipped bool) {
	fyne.Do(func() {
		if flipped {
			sf.side.Text = "ANSWER"
		} else {
			sf.side.Text = "QUESTION"
		}
		sf.side.Refresh()
	})
}

// SetCounter updates the deck position line.
func (sf *StatusFooter) SetCounter(counter string) {
	fyne.Do(func() {
		sf.counter.Text = counter
		sf.counter.Refresh()
	})
}

// Side returns the current side indicator text.
func (sf *StatusFooter) Side() string {
	return sf.side.Text
}

// Counter returns the current deck position text.
func (sf *StatusFooter) Counter() string {
	return sf.counter.Text
}

// GetContainer returns the footer container.
func (sf *StatusFooter) GetContainer() *fyne.Container {
	return sf.container
}
