package game

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/bj21/internal/deck"
)

// DeckFunc supplies a freshly shuffled deck for every round
type DeckFunc func() (*deck.Deck, error)

// Session is the outer game loop: mode selection, rounds and replay
type Session struct {
	ui      UI
	newDeck DeckFunc
	log     *zap.SugaredLogger
	results []Result
}

func NewSession(ui UI, newDeck DeckFunc, log *zap.SugaredLogger) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{ui: ui, newDeck: newDeck, log: log}
}

// Results returns the outcomes of the rounds played so far
func (s *Session) Results() []Result {
	return s.results
}

// Run plays until the player declines a replay or input ends.
// Closed input is a normal way to leave and is not reported as an error.
func (s *Session) Run() error {
	err := s.run()
	if errors.Is(err, io.EOF) {
		s.ui.Println()
		return nil
	}
	return err
}

func (s *Session) run() error {
	s.ui.Println("Welcome to BJ21!")

	mode, err := s.ui.Prompt("1 or 2 Players?: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(mode) != "1" {
		s.twoPlayer()
		return nil
	}

	for {
		if _, err := s.StartRound(); err != nil {
			return err
		}

		again, err := s.PlayAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// StartRound plays one round against the dealer with a freshly shuffled deck
func (s *Session) StartRound() (Result, error) {
	s.ui.Println("You versus the Dealer")

	d, err := s.newDeck()
	if err != nil {
		return Result{}, fmt.Errorf("error shuffling deck: %w", err)
	}

	res, err := NewRound(d, s.ui, s.log).Play()
	if err != nil {
		return Result{}, err
	}

	s.results = append(s.results, res)
	return res, nil
}

// PlayAgain asks for a replay. Only "y" or "Y" continues.
func (s *Session) PlayAgain() (bool, error) {
	answer, err := s.ui.Prompt("Would you like to play again? Y/N: ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

func (s *Session) twoPlayer() {
	s.log.Debug("two-player mode requested")
	s.ui.Println("Two-player mode is under development. Check back soon!")
}
