package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyDeck reports a cards file that contains no usable rows.
var ErrEmptyDeck = errors.New("no valid flashcards found")

// Load reads and parses the cards file at path.
func Load(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cards file unreadable: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads CSV lines from r and returns the surviving cards in
// input order. Lines that are blank, have fewer than two fields, or
// have an empty question or answer after trimming are dropped without
// error; only a deck with zero cards fails, with ErrEmptyDeck.
func Parse(r io.Reader) (Deck, error) {
	var cards Deck

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) < 2 {
			continue
		}
		question, answer := fields[0], fields[1]
		if question == "" || answer == "" {
			continue
		}

		cards = append(cards, Card{Question: question, Answer: answer})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cards file unreadable: %w", err)
	}

	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	return cards, nil
}

// Tokenizer states. A quote in an unquoted field opens quote mode
// mid-field, so `a"b,c"d` is the single field `ab,cd`.
type scanState int

const (
	stateUnquoted scanState = iota
	stateQuoted
	stateQuoteEnd
)

// splitFields tokenizes one CSV line. Commas inside an open quoted
// field are literal, a doubled quote inside one collapses to a single
// literal quote, and every field is whitespace-trimmed.
func splitFields(line string) []string {
	var (
		fields []string
		field  strings.Builder
		state  = stateUnquoted
	)

	endField := func() {
		fields = append(fields, strings.TrimSpace(field.String()))
		field.Reset()
	}

	for _, r := range line {
		switch state {
		case stateUnquoted:
			switch r {
			case '"':
				state = stateQuoted
			case ',':
				endField()
			default:
				field.WriteRune(r)
			}
		case stateQuoted:
			if r == '"' {
				state = stateQuoteEnd
			} else {
				field.WriteRune(r)
			}
		case stateQuoteEnd:
			switch r {
			case '"':
				field.WriteRune('"')
				state = stateQuoted
			case ',':
				endField()
				state = stateUnquoted
			default:
				field.WriteRune(r)
				state = stateUnquoted
			}
		}
	}
	endField()

	return fields
}
