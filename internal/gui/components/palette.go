package components

import "image/color"

// The session palette, lifted from the flat-UI scheme the card faces
// were designed around.
var (
	ColorWindow   = color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}
	ColorQuestion = color.NRGBA{R: 0xEC, G: 0xF0, B: 0xF1, A: 0xFF}
	ColorAnswer   = color.NRGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}
	ColorBorder   = color.NRGBA{R: 0x34, G: 0x49, B: 0x5E, A: 0xFF}
	ColorMuted    = color.NRGBA{R: 0x95, G: 0xA5, B: 0xA6, A: 0xFF}
	ColorHint     = color.NRGBA{R: 0x7F, G: 0x8C, B: 0x8D, A: 0xFF}
)

// Question text is dark-on-light, answer text light-on-blue.
var (
	ColorQuestionText = ColorWindow
	ColorAnswerText   = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)
