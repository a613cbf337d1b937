package components

import (
	"strings"
	"unicode/utf8"
)

// WrapText splits text into lines that fit maxWidth pixels, assuming
// an average glyph width of half the font size. A single word longer
// than the limit gets a line of its own rather than being broken.
func WrapText(text string, maxWidth, fontSize int) []string {
	charWidth := fontSize / 2

	var (
		lines   []string
		current string
	)
	for _, word := range strings.Fields(text) {
		test := word
		if current != "" {
			test = current + " " + word
		}

		if utf8.RuneCountInString(test)*charWidth > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = word
			} else {
				lines = append(lines, word)
			}
		} else {
			current = test
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
