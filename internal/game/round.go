package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/bj21/internal/card"
	"github.com/arcanaland/bj21/internal/deck"
	"github.com/arcanaland/bj21/internal/hand"
)

// DealerStandsOn is the lowest total the dealer stands on
const DealerStandsOn = 17

// UI is the console surface a round talks to
type UI interface {
	Prompt(label string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
	Card(c card.Card) string
	Hand(cards []card.Card) string
}

type Outcome int

const (
	PlayerWins Outcome = iota + 1
	DealerWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "player wins"
	case DealerWins:
		return "dealer wins"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of one round and the final totals
type Result struct {
	Outcome     Outcome
	PlayerTotal int
	DealerTotal int
	PlayerBust  bool
	DealerBust  bool
}

// Round is one deal of single-player Blackjack against the dealer
type Round struct {
	deck   *deck.Deck
	player *hand.Hand
	dealer *hand.Hand
	ui     UI
	log    *zap.SugaredLogger
}

// NewRound prepares a round played from d, top card first
func NewRound(d *deck.Deck, ui UI, log *zap.SugaredLogger) *Round {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Round{
		deck:   d,
		player: hand.New(),
		dealer: hand.New(),
		ui:     ui,
		log:    log,
	}
}

func (r *Round) Player() *hand.Hand { return r.player }
func (r *Round) Dealer() *hand.Hand { return r.dealer }
func (r *Round) Deck() *deck.Deck { return r.deck }

// Play deals, runs the player's turn and then the dealer's, and reports the
// outcome. A player bust ends the round before the dealer draws.
func (r *Round) Play() (Result, error) {
	if err := r.dealInitial(); err != nil {
		return Result{}, err
	}

	r.ui.Printf("Dealer shows: %s\n", r.ui.Card(r.dealer.Card(1)))
	r.ui.Printf("Your hand: %s\n", r.ui.Hand(r.player.Cards()))

	if err := r.playerTurn(); err != nil {
		return Result{}, err
	}

	if r.player.IsBust() {
		r.ui.Println("Bust! Dealer wins.")
		return r.finish(Result{
			Outcome:     DealerWins,
			PlayerTotal: r.player.Score(),
			DealerTotal: r.dealer.Score(),
			PlayerBust:  true,
		}), nil
	}

	if err := r.dealerTurn(); err != nil {
		return Result{}, err
	}

	return r.finish(r.settle()), nil
}

// dealInitial deals two cards each, alternating player and dealer
func (r *Round) dealInitial() error {
	for i := 0; i < 2; i++ {
		if _, err := r.hit(r.player); err != nil {
			return err
		}
		if _, err := r.hit(r.dealer); err != nil {
			return err
		}
	}
	return nil
}

func (r *Round) hit(h *hand.Hand) (card.Card, error) {
	c, err := r.deck.Deal()
	if err != nil {
		return card.Card{}, fmt.Errorf("dealing card: %w", err)
	}
	h.Add(c)
	return c, nil
}

// playerTurn prompts for Hit or Stay until the player stays or reaches 21 or more
func (r *Round) playerTurn() error {
	for r.player.Score() < hand.Blackjack {
		action, err := r.ui.Prompt("Hit or Stay? (H/S): ")
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(action)) {
		case "h":
			if _, err := r.hit(r.player); err != nil {
				return err
			}
			r.ui.Printf("Your hand: %s\n", r.ui.Hand(r.player.Cards()))
		case "s":
			return nil
		default:
			r.ui.Println("Invalid option.")
		}
	}
	return nil
}

// dealerTurn reveals the hole card and draws below 17
func (r *Round) dealerTurn() error {
	r.ui.Printf("Dealer's hand: %s\n", r.ui.Hand(r.dealer.Cards()))

	for r.dealer.Score() < DealerStandsOn {
		c, err := r.hit(r.dealer)
		if err != nil {
			return err
		}
		r.ui.Printf("Dealer hits: %s\n", r.ui.Card(c))
		r.ui.Printf("Dealer's updated hand: %s\n", r.ui.Hand(r.dealer.Cards()))
	}
	return nil
}

func (r *Round) settle() Result {
	res := Result{
		PlayerTotal: r.player.Score(),
		DealerTotal: r.dealer.Score(),
	}

	if r.dealer.IsBust() {
		res.DealerBust = true
		res.Outcome = PlayerWins
		r.ui.Println("Dealer busts! You win.")
		return res
	}

	r.ui.Printf("Your total: %d\n", res.PlayerTotal)
	r.ui.Printf("Dealer total: %d\n", res.DealerTotal)

	switch {
	case res.PlayerTotal > res.DealerTotal:
		res.Outcome = PlayerWins
		r.ui.Println("You win!")
	case res.PlayerTotal < res.DealerTotal:
		res.Outcome = DealerWins
		r.ui.Println("Dealer wins.")
	default:
		res.Outcome = Tie
		r.ui.Println("It's a tie!")
	}
	return res
}

func (r *Round) finish(res Result) Result {
	r.log.Infow("round finished",
		"outcome", res.Outcome.String(),
		"player_total", res.PlayerTotal,
		"dealer_total", res.DealerTotal,
		"cards_left", r.deck.Remaining(),
	)
	return res
}
