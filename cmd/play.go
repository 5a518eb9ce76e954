package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/bj21/internal/console"
	"github.com/arcanaland/bj21/internal/deck"
	"github.com/arcanaland/bj21/internal/game"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Blackjack against the dealer",
	Long: `Play deals a round of Blackjack against the dealer.
Answer H to hit or S to stay; the dealer draws until reaching 17.
After each round you can play again with a freshly shuffled deck.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	RootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	shuffler, src, err := openShuffler()
	if err != nil {
		return err
	}
	defer src.Close()

	ui := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), useColor())
	newDeck := func() (*deck.Deck, error) {
		return deck.NewShuffled(shuffler)
	}

	return game.NewSession(ui, newDeck, log).Run()
}
