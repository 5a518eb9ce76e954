package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/bj21/internal/card"
	"github.com/arcanaland/bj21/internal/console"
	"github.com/arcanaland/bj21/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the card catalog and the shuffler",
	Long:  `Commands for listing the 52-card catalog and printing shuffled decks.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every card in the catalog with its point value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog(cmd.OutOrStdout())
	},
}

// deckShuffleCmd represents the deck shuffle command
var deckShuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print one freshly shuffled deck, top card first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shuffler, src, err := openShuffler()
		if err != nil {
			return err
		}
		defer src.Close()

		d, err := deck.NewShuffled(shuffler)
		if err != nil {
			return fmt.Errorf("error shuffling deck: %w", err)
		}

		printColumns(cmd.OutOrStdout(), d.Cards(), console.Width(os.Stdout))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShuffleCmd)
}

// printCatalog prints one line per suit
func printCatalog(w io.Writer) {
	cards := card.Catalog()
	for _, suit := range card.Suits {
		fmt.Fprintf(w, "%s %s\n", suitLabel(suit), colorize.CyanString(suit.String()))

		var entries []string
		for _, c := range cards {
			if c.Suit == suit {
				entries = append(entries, fmt.Sprintf("%s=%d", c.Rank, c.Value()))
			}
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(entries, "  "))
	}
}

// printColumns lays cards out column-major to fit width
func printColumns(w io.Writer, cards []card.Card, width int) {
	const cellWidth = 24 // "52. Queen of Diamonds" plus padding

	cols := width / cellWidth
	if cols < 1 {
		cols = 1
	}
	rows := (len(cards) + cols - 1) / cols

	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(cards) {
				break
			}
			cell := fmt.Sprintf("%2d. %s", i+1, cards[i])
			// pad on the plain text so ANSI codes do not skew alignment
			pad := cellWidth - len(cell)
			fmt.Fprintf(&line, "%2d. ", i+1)
			line.WriteString(suitColor(cards[i].Suit).Sprint(cards[i].String()))
			if c < cols-1 && pad > 0 {
				line.WriteString(strings.Repeat(" ", pad))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

func suitColor(s card.Suit) *colorize.Color {
	if s.IsRed() {
		return colorize.New(colorize.FgHiRed)
	}
	return colorize.New(colorize.FgHiWhite)
}

func suitLabel(s card.Suit) string {
	return suitColor(s).Sprint(console.SuitSymbol(s))
}
