package cmd

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/bj21/internal/card"
	"github.com/arcanaland/bj21/internal/console"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display a card and its Blackjack value",
	Long: `Show displays a single card from the catalog with its suit and point value.
Cards can be named in full or in short dotted form.

Examples:
  bj21 show "Ace of Spades"
  bj21 show "10 of Clubs"
  bj21 show queen.hearts
  bj21 show k.diamonds`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		displayCard(cmd.OutOrStdout(), c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// displayCard displays the card information
func displayCard(w io.Writer, c card.Card) {
	symbol := console.SuitSymbol(c.Suit)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+colorize.CyanString("Card:  ")+suitColor(c.Suit).Sprint(c.String()))
	fmt.Fprintln(w, "  "+colorize.CyanString("Suit:  ")+colorize.HiWhiteString("%s · %s", c.Suit, suitColor(c.Suit).Sprint(symbol)))
	fmt.Fprintln(w, "  "+colorize.CyanString("Rank:  ")+colorize.HiWhiteString("%s", c.Rank))

	if c.IsAce() {
		fmt.Fprintln(w, "  "+colorize.CyanString("Value: ")+colorize.HiWhiteString("1 or 11 (soft)"))
	} else {
		fmt.Fprintln(w, "  "+colorize.CyanString("Value: ")+colorize.HiWhiteString("%d", c.Value()))
	}
	fmt.Fprintln(w)
}
