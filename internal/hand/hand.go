package hand

import (
	"strings"

	"github.com/arcanaland/bj21/internal/card"
)

// Blackjack is the best possible hand total
const Blackjack = 21

// Score returns the best Blackjack total for cards. Every Ace starts at 1
// and as many Aces as fit are promoted to 11 without exceeding 21.
func Score(cards []card.Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for aces > 0 && total+10 <= Blackjack {
		total += 10
		aces--
	}

	return total
}

// Hand is an append-only sequence of cards held by the player or dealer
type Hand struct {
	cards []card.Card
}

// New returns a hand holding cards, in order
func New(cards ...card.Card) *Hand {
	h := &Hand{cards: make([]card.Card, 0, 8)}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends c to the hand
func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the held cards
func (h *Hand) Cards() []card.Card {
	out := make([]card.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Card returns the i-th card dealt to the hand
func (h *Hand) Card(i int) card.Card {
	return h.cards[i]
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Score() int {
	return Score(h.cards)
}

// IsBust reports whether the hand total exceeds 21
func (h *Hand) IsBust() bool {
	return h.Score() > Blackjack
}

func (h *Hand) String() string {
	names := make([]string, len(h.cards))
	for i, c := range h.cards {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
