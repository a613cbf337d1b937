package deck

// Card is a single question/answer pair. Both sides are non-empty and
// immutable once constructed.
type Card struct {
	Question string
	Answer   string
}

// Deck is the ordered collection of cards loaded for one session. It
// is built once by the loader and never mutated afterwards.
type Deck []Card
