// path: internal/game/types.go
package game

import (
	"fmt"
	"strings"
)

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceKind uint8

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	Ghost
	Snake
	CheckersMan
	PromotedFlier

	pieceKindCount
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ghost:
		return "ghost"
	case Snake:
		return "snake"
	case CheckersMan:
		return "man"
	case PromotedFlier:
		return "flier"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// kindTraits collects the per-kind capabilities the rules consult, so that
// call sites ask for a capability instead of matching kind sets.
type kindTraits struct {
	glyph           byte // White's letter; Black renders it lowercase
	leaper          bool // path clearance is never consulted
	chainsOnCapture bool // capturing keeps the turn with the mover
}

var traitsByKind = [pieceKindCount]kindTraits{
	Pawn:          {glyph: 'P'},
	Rook:          {glyph: 'R'},
	Knight:        {glyph: 'N', leaper: true},
	Bishop:        {glyph: 'B'},
	Queen:         {glyph: 'Q'},
	King:          {glyph: 'K'},
	Ghost:         {glyph: 'G', leaper: true},
	Snake:         {glyph: 'S', chainsOnCapture: true},
	CheckersMan:   {glyph: 'O'},
	PromotedFlier: {glyph: 'F'},
}

// IsLeaper reports whether the kind ignores intervening pieces on its way
// to a target.
func (k PieceKind) IsLeaper() bool { return traitsByKind[k].leaper }

// ChainsOnCapture reports whether a capture by this kind grants its owner
// another move before the turn passes.
func (k PieceKind) ChainsOnCapture() bool { return traitsByKind[k].chainsOnCapture }

func (k PieceKind) Glyph(c Color) byte {
	g := traitsByKind[k].glyph
	if c == Black {
		g += 'a' - 'A'
	}
	return g
}

// Cell addresses one grid square by zero-based row and column. Rows and
// columns stay plain ints because several kinds generate off-board
// candidates on purpose; the board, not the cell, rejects those.
type Cell struct {
	Row, Col int
}

func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < 8 && c.Col >= 0 && c.Col < 8
}

func (c Cell) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{byte('A' + c.Col), byte('1' + c.Row)})
}

// ParseCell resolves a two-character token naming one cell: a column
// letter A-H and a row digit 1-8, in either order, case-insensitive.
// Anything else wraps ErrInvalidCoordinate.
func ParseCell(token string) (Cell, error) {
	if len(token) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, token)
	}
	row, col := -1, -1
	for i := 0; i < 2; i++ {
		switch ch := token[i]; {
		case ch >= '1' && ch <= '8':
			row = int(ch - '1')
		case ch >= 'A' && ch <= 'H':
			col = int(ch - 'A')
		case ch >= 'a' && ch <= 'h':
			col = int(ch - 'a')
		default:
			return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, token)
		}
	}
	if row < 0 || col < 0 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, token)
	}
	return Cell{Row: row, Col: col}, nil
}

type Move struct {
	From, To Cell
}

func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

type Variant uint8

const (
	VariantChess Variant = iota
	VariantCheckers
	VariantExtended
)

func (v Variant) String() string {
	switch v {
	case VariantChess:
		return "chess"
	case VariantCheckers:
		return "checkers"
	case VariantExtended:
		return "extended"
	default:
		return fmt.Sprintf("variant(%d)", v)
	}
}

func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chess":
		return VariantChess, true
	case "checkers":
		return VariantCheckers, true
	case "extended":
		return VariantExtended, true
	default:
		return VariantChess, false
	}
}

// OffersUndo reports whether sessions of this variant prompt for a
// rollback each turn. Checkers sessions never do.
func (v Variant) OffersUndo() bool { return v != VariantCheckers }
