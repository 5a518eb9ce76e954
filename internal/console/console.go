package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/bj21/internal/card"
)

// Console reads answers line by line from in and writes everything else to out
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	red   *color.Color
	black *color.Color
	label *color.Color
}

// New returns a Console. Colors are forced on or off by useColor,
// regardless of what the underlying writer is.
func New(in io.Reader, out io.Writer, useColor bool) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		red:   color.New(color.FgHiRed, color.Bold),
		black: color.New(color.FgHiWhite, color.Bold),
		label: color.New(color.FgCyan),
	}

	for _, col := range []*color.Color{c.red, c.black, c.label} {
		if useColor {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}

	return c
}

// Prompt writes label and returns the next input line without its line ending.
// A closed input yields io.EOF.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, c.label.Sprint(label))

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Card renders a card name in its suit color
func (c *Console) Card(cd card.Card) string {
	if cd.Suit.IsRed() {
		return c.red.Sprint(cd.String())
	}
	return c.black.Sprint(cd.String())
}

// Hand renders cards as a bracketed, comma separated list
func (c *Console) Hand(cards []card.Card) string {
	names := make([]string, len(cards))
	for i, cd := range cards {
		names[i] = c.Card(cd)
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of f, or 80 when it cannot be determined
func Width(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// SuitSymbol returns the Unicode pip for s
func SuitSymbol(s card.Suit) string {
	switch s {
	case card.Spades:
		return "♠"
	case card.Diamonds:
		return "♦"
	case card.Hearts:
		return "♥"
	case card.Clubs:
		return "♣"
	default:
		return "•"
	}
}
