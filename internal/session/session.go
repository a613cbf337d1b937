// Package session tracks which card of a loaded deck is showing and
// which side of it faces up. The deck itself is read-only for the
// lifetime of the session.
package session

import (
	"fmt"

	"flashdeck/internal/deck"
)

// Session is the mutable view state over an immutable deck.
type Session struct {
	cards   deck.Deck
	index   int
	flipped bool
}

// New creates a session positioned at the first card, question side
// up. A session over an empty deck cannot exist.
func New(cards deck.Deck) (*Session, error) {
	if len(cards) == 0 {
		return nil, deck.ErrEmptyDeck
	}
	return &Session{cards: cards}, nil
}

// Flip toggles between the question and answer side.
func (s *Session) Flip() {
	s.flipped = !s.flipped
}

// Next advances to the following card, question side up. At the last
// card it does nothing.
func (s *Session) Next() {
	if s.index < len(s.cards)-1 {
		s.index++
		s.flipped = false
	}
}

// Previous steps back to the preceding card, question side up. At the
// first card it does nothing.
func (s *Session) Previous() {
	if s.index > 0 {
		s.index--
		s.flipped = false
	}
}

// Current returns the card under the cursor.
func (s *Session) Current() deck.Card {
	return s.cards[s.index]
}

// CurrentText returns the face-up text of the current card.
func (s *Session) CurrentText() string {
	if s.flipped {
		return s.cards[s.index].Answer
	}
	return s.cards[s.index].Question
}

// Flipped reports whether the answer side is showing.
func (s *Session) Flipped() bool {
	return s.flipped
}

// Index returns the zero-based position of the current card.
func (s *Session) Index() int {
	return s.index
}

// Size returns the number of cards in the deck.
func (s *Session) Size() int {
	return len(s.cards)
}

// Counter formats the position indicator shown under the card.
func (s *Session) Counter() string {
	return fmt.Sprintf("Card %d / %d", s.index+1, len(s.cards))
}
