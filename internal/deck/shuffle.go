package deck

import (
	"io"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/arcanaland/bj21/internal/card"
	"github.com/arcanaland/bj21/internal/entropy"
)

// Shuffler permutes a deck by repeatedly splitting it into sub-decks and
// recombining them in random order.
//
// The entropy stream decides which sub-deck every card starts in. The order
// generator only reorders at most four sub-decks per pass and need not be
// cryptographic.
type Shuffler struct {
	entropy io.Reader
	order   *rand.Rand
	log     *zap.SugaredLogger
}

// NewShuffler returns a Shuffler drawing from r. A nil order generator is
// replaced by a randomly seeded PCG.
func NewShuffler(r io.Reader, order *rand.Rand, log *zap.SugaredLogger) *Shuffler {
	if order == nil {
		order = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Shuffler{entropy: r, order: order, log: log}
}

// Shuffle returns a permutation of cards. The input is left untouched.
// Inputs of zero or one card are returned as-is without drawing entropy.
// Any entropy failure aborts the shuffle with an error wrapping
// entropy.ErrUnavailable.
func (s *Shuffler) Shuffle(cards []card.Card) ([]card.Card, error) {
	if len(cards) <= 1 {
		return cards, nil
	}

	a, b, err := s.partition(cards)
	if err != nil {
		s.log.Errorw("shuffle aborted", "error", err)
		return nil, err
	}

	a1, a2 := splitAlternating(a)
	b1, b2 := splitAlternating(b)
	c := s.concatRandom(a1, a2, b1, b2)

	c1, c2 := splitAlternating(c)
	d := s.concatRandom(c1, c2)

	d1, d2 := splitTriples(d)
	result := s.concatRandom(d1, d2)

	s.log.Debugw("deck shuffled",
		"cards", len(result),
		"even", len(a),
		"odd", len(b),
	)

	return result, nil
}

// partition routes each card by the parity of a fresh 32-bit entropy draw
func (s *Shuffler) partition(cards []card.Card) ([]card.Card, []card.Card, error) {
	var even, odd []card.Card
	for _, c := range cards {
		n, err := entropy.Uint32(s.entropy)
		if err != nil {
			return nil, nil, err
		}
		if n%2 == 0 {
			even = append(even, c)
		} else {
			odd = append(odd, c)
		}
	}
	return even, odd, nil
}

// concatRandom shuffles the order of the sub-decks, not their contents,
// and joins them.
func (s *Shuffler) concatRandom(decks ...[]card.Card) []card.Card {
	s.order.Shuffle(len(decks), func(i, j int) {
		decks[i], decks[j] = decks[j], decks[i]
	})

	n := 0
	for _, d := range decks {
		n += len(d)
	}
	out := make([]card.Card, 0, n)
	for _, d := range decks {
		out = append(out, d...)
	}
	return out
}

// splitAlternating sends even positions to the first result and odd
// positions to the second, preserving relative order.
func splitAlternating[T any](in []T) (first, second []T) {
	for i, v := range in {
		if i%2 == 0 {
			first = append(first, v)
		} else {
			second = append(second, v)
		}
	}
	return first, second
}

// splitTriples deals consecutive runs of three to alternating results.
// A trailing short run goes to whichever result is next.
func splitTriples[T any](in []T) (first, second []T) {
	for i := 0; i < len(in); i += 3 {
		end := min(i+3, len(in))
		if (i/3)%2 == 0 {
			first = append(first, in[i:end]...)
		} else {
			second = append(second, in[i:end]...)
		}
	}
	return first, second
}
