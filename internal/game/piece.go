// path: internal/game/piece.go
package game

import "fmt"

// Piece occupies one board cell. The board owns every piece it holds: a
// move transfers the occupant between cells, a capture destroys the
// previous occupant of the destination.
type Piece struct {
	Kind  PieceKind
	Color Color
	Pos   Cell

	// chained marks a mid-sequence capture; the session consumes it to
	// keep the turn with the same player.
	chained bool
}

func newPiece(kind PieceKind, color Color, pos Cell) *Piece {
	return &Piece{Kind: kind, Color: color, Pos: pos}
}

// Geometry returns the piece's pseudo-legal targets: every cell its
// movement shape can name from the current position, ignoring occupancy
// and turn context.
func (p *Piece) Geometry() []Cell {
	return geometryFor(p.Kind, p.Color, p.Pos)
}

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {1, -2}, {2, -1}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}}
	kingOffsets   = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}}

	cardinalDirections = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// geometryFor generates the candidate targets for a kind at a position.
// Pawn and the sliding kinds clip at the board edge; Knight, King, Snake
// and CheckersMan report raw offsets and leave bounds to the board.
func geometryFor(kind PieceKind, color Color, at Cell) []Cell {
	switch kind {
	case Pawn:
		return pawnGeometry(color, at)
	case Rook:
		return rookGeometry(at)
	case Knight:
		return offsetGeometry(at, knightOffsets)
	case Bishop, PromotedFlier:
		return slideGeometry(at, diagonalDirections)
	case Queen:
		return append(rookGeometry(at), slideGeometry(at, diagonalDirections)...)
	case King, Snake:
		// A snake steps exactly like a king and is obstructed like one.
		return offsetGeometry(at, kingOffsets)
	case Ghost:
		return slideGeometry(at, cardinalDirections)
	case CheckersMan:
		return forwardDiagonals(color, at)
	default:
		panic(fmt.Sprintf("game: no geometry for %v", kind))
	}
}

func pawnGeometry(color Color, at Cell) []Cell {
	forward, start := -1, 6
	if color == Black {
		forward, start = 1, 1
	}
	candidates := []Cell{{Row: at.Row + forward, Col: at.Col}}
	if at.Row == start {
		candidates = append(candidates, Cell{Row: at.Row + 2*forward, Col: at.Col})
	}
	out := make([]Cell, 0, len(candidates))
	for _, c := range candidates {
		if c.InBounds() {
			out = append(out, c)
		}
	}
	return out
}

func rookGeometry(at Cell) []Cell {
	out := make([]Cell, 0, 14)
	for i := 0; i < 8; i++ {
		if i != at.Row {
			out = append(out, Cell{Row: i, Col: at.Col})
		}
		if i != at.Col {
			out = append(out, Cell{Row: at.Row, Col: i})
		}
	}
	return out
}

func offsetGeometry(at Cell, offsets [8][2]int) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		out = append(out, Cell{Row: at.Row + d[0], Col: at.Col + d[1]})
	}
	return out
}

func slideGeometry(at Cell, directions [4][2]int) []Cell {
	var out []Cell
	for _, d := range directions {
		next := Cell{Row: at.Row + d[0], Col: at.Col + d[1]}
		for next.InBounds() {
			out = append(out, next)
			next = Cell{Row: next.Row + d[0], Col: next.Col + d[1]}
		}
	}
	return out
}

// forwardDiagonals are the two diagonal cells ahead of a piece, where
// ahead means row-decreasing for White and row-increasing for Black. They
// are the checkers man's step geometry and double as the pawn's capture
// cells.
func forwardDiagonals(color Color, at Cell) []Cell {
	forward := -1
	if color == Black {
		forward = 1
	}
	return []Cell{
		{Row: at.Row + forward, Col: at.Col + 1},
		{Row: at.Row + forward, Col: at.Col - 1},
	}
}

func containsCell(cells []Cell, target Cell) bool {
	for _, c := range cells {
		if c == target {
			return true
		}
	}
	return false
}
