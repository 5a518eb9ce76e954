package card

import (
	"fmt"
	"strings"
)

// Suit represents one of the four French suits
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Hearts
	Clubs
)

// Rank represents a card rank, Ace through King
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suits lists the suits in catalog order
var Suits = [...]Suit{Spades, Diamonds, Hearts, Clubs}

// Ranks lists the ranks in catalog order
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var suitNames = map[Suit]string{
	Spades:   "Spades",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
	Clubs:    "Clubs",
}

var rankNames = map[Rank]string{
	Ace:   "Ace",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the card name, e.g. "Ace of Spades" or "10 of Clubs"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Value returns the base Blackjack point value of the card.
// Aces count 1 here; promotion to 11 is the evaluator's job.
func (c Card) Value() int {
	return Value(c)
}

// IsAce reports whether the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Value returns the base Blackjack point value of c
func Value(c Card) int {
	switch {
	case c.Rank >= Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// catalog is built once and never mutated; Catalog hands out copies.
var catalog = buildCatalog()

func buildCatalog() []Card {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Catalog returns the 52 distinct cards in suit-major order
func Catalog() []Card {
	out := make([]Card, len(catalog))
	copy(out, catalog)
	return out
}

// Size is the number of cards in the catalog
const Size = 52

// Parse resolves a card identifier. Accepted forms are "Ace of Spades",
// "A of spades", "ace.spades" and "10.clubs", all case-insensitive.
func Parse(id string) (Card, error) {
	s := strings.ToLower(strings.TrimSpace(id))

	var rankPart, suitPart string
	if r, su, ok := strings.Cut(s, " of "); ok {
		rankPart, suitPart = strings.TrimSpace(r), strings.TrimSpace(su)
	} else if r, su, ok := strings.Cut(s, "."); ok {
		rankPart, suitPart = r, su
	} else {
		return Card{}, fmt.Errorf("invalid card ID format: %s", id)
	}

	rank, err := parseRank(rankPart)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card ID %q: %w", id, err)
	}
	suit, err := parseSuit(suitPart)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card ID %q: %w", id, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "a", "ace", "1":
		return Ace, nil
	case "j", "jack":
		return Jack, nil
	case "q", "queen":
		return Queen, nil
	case "k", "king":
		return King, nil
	}

	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && fmt.Sprint(n) == s && n >= 2 && n <= 10 {
		return Rank(n), nil
	}

	words := []string{"two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}
	for i, w := range words {
		if s == w {
			return Rank(i + 2), nil
		}
	}

	return 0, fmt.Errorf("unknown rank: %s", s)
}

func parseSuit(s string) (Suit, error) {
	for suit, name := range suitNames {
		lower := strings.ToLower(name)
		if s == lower || s == strings.TrimSuffix(lower, "s") {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("unknown suit: %s", s)
}
