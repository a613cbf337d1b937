package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	cardTextSize  float32 = 28
	cardWrapWidth         = 550
	cardMinWidth  float32 = 600
	cardMinHeight float32 = 350
)

// CardFace renders the face-up side of the current card: a rounded
// rectangle whose fill tracks the flip state, with the card text
// wrapped and centered over it.
type CardFace struct {
	container *fyne.Container
	rect      *canvas.Rectangle
	lines     *fyne.Container

	text    string
	flipped bool
}

// NewCardFace creates the card face showing nothing yet.
func NewCardFace() *CardFace {
	cf := &CardFace{}
	cf.createComponents()
	cf.buildLayout()
	return cf
}

func (cf *CardFace) createComponents() {
	cf.rect = canvas.NewRectangle(ColorQuestion)
	cf.rect.StrokeColor = ColorBorder
	cf.rect.StrokeWidth = 2
	cf.rect.CornerRadius = 16
	cf.rect.SetMinSize(fyne.NewSize(cardMinWidth, cardMinHeight))

	cf.lines = container.NewVBox()
}

func (cf *CardFace) buildLayout() {
	cf.container = container.NewStack(cf.rect, container.NewCenter(cf.lines))
}

// SetCard updates the face to show text, with the answer-side styling
// when flipped is true.
func (cf *CardFace) SetCard(text string, flipped bool) {
	fyne.Do(func() {
		cf.text = text
		cf.flipped = flipped

		fill, ink := ColorQuestion, ColorQuestionText
		if flipped {
			fill, ink = ColorAnswer, ColorAnswerText
		}
		cf.rect.FillColor = fill

		cf.lines.RemoveAll()
		for _, line := range WrapText(text, cardWrapWidth, int(cardTextSize)) {
			t := canvas.NewText(line, ink)
			t.TextSize = cardTextSize
			t.Alignment = fyne.TextAlignCenter
			cf.lines.Add(t)
		}

		cf.container.Refresh()
	})
}

// Text returns the text currently on the face.
func (cf *CardFace) Text() string {
	return cf.text
}

// Flipped reports whether the face shows answer-side styling.
func (cf *CardFace) Flipped() bool {
	return cf.flipped
}

// GetContainer returns the card face container.
func (cf *CardFace) GetContainer() *fyne.Container {
	return cf.container
}
