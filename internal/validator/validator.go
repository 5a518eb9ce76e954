package validator

import (
	"fmt"

	"github.com/arcanaland/bj21/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
	Stats    Stats
}

// Stats summarizes a batch of shuffles
type Stats struct {
	Runs int
	// MeanFixedPoints is the average number of cards left at their input position
	MeanFixedPoints float64
	// MeanAdjacentKept is the average number of input neighbours still adjacent
	MeanAdjacentKept float64
	// MaxPositionChiSquare is the worst chi-square over output positions
	MaxPositionChiSquare float64
}

// Shuffler is anything that permutes a deck
type Shuffler interface {
	Shuffle(cards []card.Card) ([]card.Card, error)
}

type Validator struct {
	Shuffler Shuffler
	Runs     int
	Results  ValidationResults
}

func NewValidator(s Shuffler, runs int) *Validator {
	return &Validator{
		Shuffler: s,
		Runs:     runs,
		Results:  ValidationResults{},
	}
}

// Validate shuffles the catalog Runs times. Broken permutations are errors;
// positional skew is only reported as a warning.
func (v *Validator) Validate() (ValidationResults, error) {
	if v.Runs < 1 {
		return v.Results, fmt.Errorf("runs must be at least 1, got %d", v.Runs)
	}

	input := card.Catalog()
	index := make(map[card.Card]int, len(input))
	for i, c := range input {
		index[c] = i
	}

	// counts[pos][card index]
	counts := make([][]int, len(input))
	for i := range counts {
		counts[i] = make([]int, len(input))
	}

	fixed := 0
	adjacent := 0
	for run := 0; run < v.Runs; run++ {
		out, err := v.Shuffler.Shuffle(input)
		if err != nil {
			return v.Results, fmt.Errorf("shuffle %d: %w", run+1, err)
		}

		if err := CheckDeck(out); err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("run %d: %v", run+1, err))
			continue
		}

		for pos, c := range out {
			i := index[c]
			counts[pos][i]++
			if i == pos {
				fixed++
			}
			if pos > 0 && index[out[pos-1]]+1 == i {
				adjacent++
			}
		}
	}

	v.Results.Stats = Stats{
		Runs:                 v.Runs,
		MeanFixedPoints:      float64(fixed) / float64(v.Runs),
		MeanAdjacentKept:     float64(adjacent) / float64(v.Runs),
		MaxPositionChiSquare: maxChiSquare(counts, v.Runs),
	}
	v.checkSkew()

	return v.Results, nil
}

// checkSkew compares the stats against what a uniform shuffle of 52 cards gives:
// one fixed point and about one kept neighbour pair per deck.
func (v *Validator) checkSkew() {
	s := v.Results.Stats
	if s.Runs < 100 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("only %d runs; skew statistics are not meaningful below 100", s.Runs))
		return
	}

	if s.MeanFixedPoints > 2 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%.2f cards per deck stay in place on average (uniform: 1.00)", s.MeanFixedPoints))
	}
	if s.MeanAdjacentKept > 2 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%.2f neighbour pairs per deck survive on average (uniform: ~0.98)", s.MeanAdjacentKept))
	}

	// 51 degrees of freedom; 3x is far past any plausible noise
	if s.MaxPositionChiSquare > 3*float64(card.Size-1) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("card distribution at some position is skewed (chi-square %.1f)", s.MaxPositionChiSquare))
	}
}

func maxChiSquare(counts [][]int, runs int) float64 {
	expected := float64(runs) / float64(len(counts))
	worst := 0.0
	for _, row := range counts {
		var chi float64
		for _, c := range row {
			diff := float64(c) - expected
			chi += diff * diff / expected
		}
		if chi > worst {
			worst = chi
		}
	}
	return worst
}

// CheckDeck verifies that cards is exactly the 52-card catalog in some order
func CheckDeck(cards []card.Card) error {
	if len(cards) != card.Size {
		return fmt.Errorf("deck has %d cards, expected %d", len(cards), card.Size)
	}
	return CheckConservation(cards)
}

// CheckConservation verifies that the undealt deck and the hands together hold
// every catalog card exactly once.
func CheckConservation(deck []card.Card, hands ...[]card.Card) error {
	seen := make(map[card.Card]bool, card.Size)

	add := func(c card.Card) error {
		if seen[c] {
			return fmt.Errorf("duplicate card: %s", c)
		}
		seen[c] = true
		return nil
	}

	for _, c := range deck {
		if err := add(c); err != nil {
			return err
		}
	}
	for _, h := range hands {
		for _, c := range h {
			if err := add(c); err != nil {
				return err
			}
		}
	}

	for _, c := range card.Catalog() {
		if !seen[c] {
			return fmt.Errorf("missing card: %s", c)
		}
	}
	if len(seen) != card.Size {
		return fmt.Errorf("found %d distinct cards, expected %d", len(seen), card.Size)
	}

	return nil
}
