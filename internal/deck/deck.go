package deck

import (
	"errors"

	"github.com/arcanaland/bj21/internal/card"
)

// ErrEmpty is returned when dealing from an exhausted deck
var ErrEmpty = errors.New("deck is empty")

// Deck is an ordered sequence of cards dealt from the front.
// It only shrinks; a new round gets a new deck.
type Deck struct {
	cards []card.Card
}

// New returns a deck holding cards in the given order
func New(cards []card.Card) *Deck {
	d := &Deck{cards: make([]card.Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// NewShuffled builds the full catalog and shuffles it once with s
func NewShuffled(s *Shuffler) (*Deck, error) {
	cards, err := s.Shuffle(card.Catalog())
	if err != nil {
		return nil, err
	}
	return &Deck{cards: cards}, nil
}

// Deal removes and returns the top card
func (d *Deck) Deal() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmpty
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards, top first
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}
