// path: internal/cli/console.go
// Package cli adapts an interactive text stream to the session's
// collaborator interfaces: it prompts for and parses moves, asks the
// yes/no offers, and renders board snapshots.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/VolkovaDiana666/OOP-chess/internal/game"
)

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// NextMove prompts for two cell tokens such as "E2 E4" and resolves them.
// Parse failures wrap game.ErrInvalidCoordinate so the session re-prompts
// instead of aborting.
func (c *Console) NextMove(player game.Color) (game.Move, error) {
	fmt.Fprintf(c.out, "Player %s, enter your move (for example E2 E4): ", player)
	line, err := c.readLine()
	if err != nil {
		return game.Move{}, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("%w: want two cells, got %q", game.ErrInvalidCoordinate, line)
	}
	from, err := game.ParseCell(fields[0])
	if err != nil {
		return game.Move{}, err
	}
	to, err := game.ParseCell(fields[1])
	if err != nil {
		return game.Move{}, err
	}
	return game.Move{From: from, To: to}, nil
}

// Confirm asks a yes/no question. Only a case-insensitive "yes" accepts;
// any other answer declines.
func (c *Console) Confirm(player game.Color, what game.Decision) (bool, error) {
	switch what {
	case game.DecideCastle:
		fmt.Fprintf(c.out, "Player %s, castling is available. Castle? (yes/no): ", player)
	default:
		fmt.Fprintf(c.out, "Player %s, undo the last move? (yes/no): ", player)
	}
	line, err := c.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}

// ChooseVariant prompts for one of the game variants by name and returns
// the raw answer.
func (c *Console) ChooseVariant() (string, error) {
	fmt.Fprint(c.out, "Choose a game (chess, checkers, extended): ")
	return c.readLine()
}

// ShowBoard prints the grid with column letters across the top and row
// digits down the left edge. White pieces render uppercase, Black
// lowercase, empty cells as a dot.
func (c *Console) ShowBoard(g game.Grid) {
	var b strings.Builder
	b.WriteString("  A B C D E F G H\n")
	for r := 0; r < 8; r++ {
		b.WriteByte(byte('1' + r))
		for col := 0; col < 8; col++ {
			b.WriteByte(' ')
			if pc := g[r][col]; pc != nil {
				b.WriteByte(pc.Kind.Glyph(pc.Color))
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(c.out, b.String())
}

// Announce relays a session message to the players.
func (c *Console) Announce(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
