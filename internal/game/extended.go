// path: internal/game/extended.go
package game

// ExtendedBoard plays the chess rules over an opening that adds a second
// rank of snakes, ghosts and checkers men in front of each side's pawns.
// Legality, captures, castling and the check heuristic are all the
// embedded Board's; men on this board move by their forward-diagonal
// geometry under the ordinary validator, and snakes chain on capture.
type ExtendedBoard struct {
	Board
}

func NewExtendedBoard() *ExtendedBoard {
	xb := &ExtendedBoard{}
	xb.setupChess()
	xb.setupCourt()
	xb.saveState()
	return xb
}

// setupCourt places the extra pieces on row 5 for White and row 2 for
// Black: snakes on the outer files, ghosts beside them, men on files 2
// and 5.
func (xb *ExtendedBoard) setupCourt() {
	for _, group := range []struct {
		kind PieceKind
		cols [2]int
	}{
		{Snake, [2]int{0, 7}},
		{Ghost, [2]int{1, 6}},
		{CheckersMan, [2]int{2, 5}},
	} {
		for _, col := range group.cols {
			xb.placePiece(group.kind, White, Cell{Row: 5, Col: col})
			xb.placePiece(group.kind, Black, Cell{Row: 2, Col: col})
		}
	}
}
