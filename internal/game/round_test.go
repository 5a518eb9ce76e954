package game

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/arcanaland/bj21/internal/card"
	"github.com/arcanaland/bj21/internal/console"
	"github.com/arcanaland/bj21/internal/deck"
	"github.com/arcanaland/bj21/internal/hand"
	"github.com/arcanaland/bj21/internal/validator"
)

func cd(r card.Rank, s card.Suit) card.Card {
	return card.Card{Rank: r, Suit: s}
}

// stacked returns a full deck whose top cards are top, in order.
// Deal order is player, dealer, player, dealer, then hits.
func stacked(top ...card.Card) *deck.Deck {
	used := map[card.Card]bool{}
	cards := make([]card.Card, 0, card.Size)
	for _, c := range top {
		used[c] = true
		cards = append(cards, c)
	}
	for _, c := range card.Catalog() {
		if !used[c] {
			cards = append(cards, c)
		}
	}
	return deck.New(cards)
}

func playScripted(t *testing.T, d *deck.Deck, input string) (*Round, Result, string) {
	t.Helper()
	var out bytes.Buffer
	r := NewRound(d, console.New(strings.NewReader(input), &out, false), nil)

	res, err := r.Play()
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput:\n%s", err, out.String())
	}
	if err := validator.CheckConservation(r.Deck().Cards(), r.Player().Cards(), r.Dealer().Cards()); err != nil {
		t.Fatalf("cards not conserved: %v", err)
	}
	return r, res, out.String()
}

func TestRound_Outcomes(t *testing.T) {
	tests := []struct {
		name        string
		top         []card.Card
		input       string
		want        Result
		dealerCards int
	}{
		{
			name: "player stays and wins",
			top: []card.Card{
				cd(card.King, card.Spades), cd(card.Seven, card.Clubs),
				cd(card.Nine, card.Hearts), cd(card.Queen, card.Diamonds),
			},
			input:       "s\n",
			want:        Result{Outcome: PlayerWins, PlayerTotal: 19, DealerTotal: 17},
			dealerCards: 2,
		},
		{
			name: "equal totals tie",
			top: []card.Card{
				cd(card.King, card.Spades), cd(card.Jack, card.Clubs),
				cd(card.Queen, card.Hearts), cd(card.Ten, card.Diamonds),
			},
			input:       "S\n",
			want:        Result{Outcome: Tie, PlayerTotal: 20, DealerTotal: 20},
			dealerCards: 2,
		},
		{
			name: "dealer draws to 17 and wins",
			top: []card.Card{
				cd(card.Ten, card.Spades), cd(card.Two, card.Clubs),
				cd(card.Eight, card.Hearts), cd(card.Three, card.Diamonds),
				cd(card.Four, card.Spades), cd(card.Five, card.Hearts), cd(card.Six, card.Clubs),
			},
			input:       "s\n",
			want:        Result{Outcome: DealerWins, PlayerTotal: 18, DealerTotal: 20},
			dealerCards: 5,
		},
		{
			name: "dealer busts",
			top: []card.Card{
				cd(card.Ten, card.Spades), cd(card.Ten, card.Clubs),
				cd(card.Nine, card.Hearts), cd(card.Six, card.Diamonds),
				cd(card.King, card.Hearts),
			},
			input:       "s\n",
			want:        Result{Outcome: PlayerWins, PlayerTotal: 19, DealerTotal: 26, DealerBust: true},
			dealerCards: 3,
		},
		{
			name: "dealer stands on soft 17",
			top: []card.Card{
				cd(card.Ten, card.Spades), cd(card.Ace, card.Clubs),
				cd(card.Six, card.Hearts), cd(card.Six, card.Diamonds),
			},
			input:       "s\n",
			want:        Result{Outcome: DealerWins, PlayerTotal: 16, DealerTotal: 17},
			dealerCards: 2,
		},
		{
			name: "natural 21 ends the turn without a prompt",
			top: []card.Card{
				cd(card.Ace, card.Spades), cd(card.Ten, card.Clubs),
				cd(card.King, card.Hearts), cd(card.Seven, card.Diamonds),
			},
			input:       "",
			want:        Result{Outcome: PlayerWins, PlayerTotal: 21, DealerTotal: 17},
			dealerCards: 2,
		},
		{
			name: "hitting to 21 ends the turn",
			top: []card.Card{
				cd(card.Five, card.Spades), cd(card.Ten, card.Clubs),
				cd(card.Six, card.Hearts), cd(card.Eight, card.Diamonds),
				cd(card.Queen, card.Hearts),
			},
			input:       "h\n",
			want:        Result{Outcome: PlayerWins, PlayerTotal: 21, DealerTotal: 18},
			dealerCards: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, res, out := playScripted(t, stacked(tt.top...), tt.input)
			if res != tt.want {
				t.Fatalf("got %+v want %+v\noutput:\n%s", res, tt.want, out)
			}
			if r.Dealer().Len() != tt.dealerCards {
				t.Fatalf("dealer holds %d cards, want %d", r.Dealer().Len(), tt.dealerCards)
			}
		})
	}
}

func TestRound_BustShortCircuitsDealer(t *testing.T) {
	d := stacked(
		cd(card.Ten, card.Spades), cd(card.Five, card.Clubs),
		cd(card.Six, card.Hearts), cd(card.Four, card.Diamonds),
		cd(card.King, card.Hearts),
	)

	r, res, out := playScripted(t, d, "h\n")

	want := Result{Outcome: DealerWins, PlayerTotal: 26, DealerTotal: 9, PlayerBust: true}
	if res != want {
		t.Fatalf("got %+v want %+v", res, want)
	}
	if r.Dealer().Len() != 2 {
		t.Fatalf("dealer drew after player bust: %d cards", r.Dealer().Len())
	}
	if r.Deck().Remaining() != card.Size-5 {
		t.Fatalf("deck has %d cards left, want %d", r.Deck().Remaining(), card.Size-5)
	}
	if !strings.Contains(out, "Bust! Dealer wins.") {
		t.Fatalf("missing bust message:\n%s", out)
	}
	if strings.Contains(out, "Dealer's hand") {
		t.Fatalf("dealer turn ran after bust:\n%s", out)
	}
}

func TestRound_InvalidInputRetries(t *testing.T) {
	d := stacked(
		cd(card.Two, card.Spades), cd(card.Ten, card.Clubs),
		cd(card.Three, card.Hearts), cd(card.Seven, card.Diamonds),
		cd(card.Four, card.Hearts),
	)

	r, res, out := playScripted(t, d, "x\n H \ns\n")

	if strings.Count(out, "Invalid option.") != 1 {
		t.Fatalf("expected one invalid option message:\n%s", out)
	}
	if r.Player().Len() != 3 {
		t.Fatalf("player holds %d cards, want 3", r.Player().Len())
	}
	want := Result{Outcome: DealerWins, PlayerTotal: 9, DealerTotal: 17}
	if res != want {
		t.Fatalf("got %+v want %+v", res, want)
	}
}

func TestRound_RevealsOnlySecondDealerCard(t *testing.T) {
	d := stacked(
		cd(card.King, card.Spades), cd(card.Ace, card.Diamonds),
		cd(card.Nine, card.Hearts), cd(card.Seven, card.Clubs),
	)

	_, _, out := playScripted(t, d, "s\n")

	beforeReveal := out[:strings.Index(out, "Dealer's hand")]
	if !strings.Contains(beforeReveal, "Dealer shows: 7 of Clubs") {
		t.Fatalf("second dealer card not shown:\n%s", out)
	}
	if strings.Contains(beforeReveal, "Ace of Diamonds") {
		t.Fatalf("hole card revealed early:\n%s", out)
	}
}

func TestRound_DealerThreshold(t *testing.T) {
	// Dealer starts on 12 and must draw exactly until reaching 17 or more.
	d := stacked(
		cd(card.Ten, card.Spades), cd(card.Ten, card.Clubs),
		cd(card.Eight, card.Hearts), cd(card.Two, card.Diamonds),
		cd(card.Ace, card.Hearts), cd(card.Three, card.Spades), cd(card.Two, card.Clubs), cd(card.Nine, card.Clubs),
	)

	r, res, _ := playScripted(t, d, "s\n")

	// 12 -> 13 -> 16 -> 18, stands before the nine
	if r.Dealer().Len() != 5 {
		t.Fatalf("dealer holds %d cards, want 5", r.Dealer().Len())
	}
	if res.DealerTotal != 18 || res.Outcome != Tie {
		t.Fatalf("got %+v", res)
	}
	cards := r.Dealer().Cards()
	for i := 2; i <= len(cards); i++ {
		score := hand.Score(cards[:i])
		hit := i < len(cards)
		if hit != (score < DealerStandsOn) {
			t.Fatalf("dealer at %d: hit=%v", score, hit)
		}
	}
}

func TestRound_InputClosed(t *testing.T) {
	d := stacked(
		cd(card.Two, card.Spades), cd(card.Ten, card.Clubs),
		cd(card.Three, card.Hearts), cd(card.Seven, card.Diamonds),
	)
	r := NewRound(d, console.New(strings.NewReader(""), io.Discard, false), nil)

	if _, err := r.Play(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestRound_ShortDeck(t *testing.T) {
	d := deck.New([]card.Card{cd(card.Two, card.Spades), cd(card.Ten, card.Clubs)})
	r := NewRound(d, console.New(strings.NewReader(""), io.Discard, false), nil)

	if _, err := r.Play(); !errors.Is(err, deck.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestRound_Reproducible(t *testing.T) {
	top := []card.Card{
		cd(card.Four, card.Spades), cd(card.Six, card.Clubs),
		cd(card.Five, card.Hearts), cd(card.Three, card.Diamonds),
		cd(card.Two, card.Hearts), cd(card.Eight, card.Clubs), cd(card.Jack, card.Hearts),
	}

	_, first, outFirst := playScripted(t, stacked(top...), "h\nh\ns\n")
	_, second, outSecond := playScripted(t, stacked(top...), "h\nh\ns\n")

	if first != second || outFirst != outSecond {
		t.Fatalf("same deck and script gave %+v and %+v", first, second)
	}
}
