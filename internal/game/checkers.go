// path: internal/game/checkers.go
package game

// CheckersBoard replaces the chess legality, capture and termination
// rules with the checkers ones: forward diagonal steps, two-cell jumps
// over an occupied midpoint, promotion to a flier on the far row, and a
// chain flag that keeps the turn with a capturing piece.
type CheckersBoard struct {
	Board
}

// NewCheckersBoard returns a board with twelve men per color on the dark
// squares of rows 0-2 (Black) and 5-7 (White).
func NewCheckersBoard() *CheckersBoard {
	cb := &CheckersBoard{}
	cb.setupMen()
	cb.saveState()
	return cb
}

func (cb *CheckersBoard) setupMen() {
	for col := 0; col < 8; col++ {
		if col%2 == 1 {
			cb.placePiece(CheckersMan, Black, Cell{Row: 0, Col: col})
			cb.placePiece(CheckersMan, Black, Cell{Row: 2, Col: col})
			cb.placePiece(CheckersMan, White, Cell{Row: 6, Col: col})
		} else {
			cb.placePiece(CheckersMan, Black, Cell{Row: 1, Col: col})
			cb.placePiece(CheckersMan, White, Cell{Row: 5, Col: col})
			cb.placePiece(CheckersMan, White, Cell{Row: 7, Col: col})
		}
	}
}

// CheckMove reports move legality under checkers rules. Only men and
// fliers move. A man may jump two cells diagonally whenever the midpoint
// is occupied, in any diagonal direction, or step onto a forward diagonal
// with a clear path; a flier may pick any cell of its diagonal geometry
// regardless of obstruction.
func (cb *CheckersBoard) CheckMove(from, to Cell) bool {
	pc := cb.PieceAt(from)
	if pc == nil {
		return false
	}
	switch pc.Kind {
	case CheckersMan:
		if absInt(to.Row-from.Row) == 2 && absInt(to.Col-from.Col) == 2 && !cb.IsPathClear(from, to) {
			return true
		}
		return containsCell(pc.Geometry(), to) && cb.IsPathClear(from, to)
	case PromotedFlier:
		return containsCell(pc.Geometry(), to)
	default:
		return false
	}
}

// MakeMove applies a validated checkers move. An obstructed path means a
// capture run: a man's jump removes the midpoint piece, a flier removes
// everything it passes over, and either sets the mover's chain flag. A
// man reaching the far row for its color is replaced by a fresh flier,
// which drops any chain. Every applied move pushes a history snapshot.
func (cb *CheckersBoard) MakeMove(from, to Cell) MoveReport {
	pc := cb.grid[from.Row][from.Col]
	if pc == nil {
		panic("game: MakeMove from empty cell " + from.String())
	}
	var report MoveReport
	if !cb.IsPathClear(from, to) {
		switch pc.Kind {
		case CheckersMan:
			mid := Cell{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}
			if victim := cb.grid[mid.Row][mid.Col]; victim != nil {
				report.Captured = true
				report.CapturedKind = victim.Kind
				cb.grid[mid.Row][mid.Col] = nil
			}
			pc.chained = true
		case PromotedFlier:
			cb.sweep(from, to, &report)
			pc.chained = true
		}
	}
	cb.relocate(pc, from, to)
	if pc.Kind == CheckersMan && to.Row == promotionRow(pc.Color) {
		cb.placePiece(PromotedFlier, pc.Color, to)
		report.Promoted = true
	}
	cb.saveState()
	return report
}

// sweep clears every occupied cell strictly between two diagonal
// endpoints, friend or foe.
func (cb *CheckersBoard) sweep(from, to Cell, report *MoveReport) {
	stepRow, stepCol := normalize(to.Row-from.Row), normalize(to.Col-from.Col)
	for row, col := from.Row+stepRow, from.Col+stepCol; row != to.Row; row, col = row+stepRow, col+stepCol {
		if victim := cb.grid[row][col]; victim != nil {
			report.Captured = true
			report.CapturedKind = victim.Kind
			cb.grid[row][col] = nil
		}
	}
}

// promotionRow is the far row a man promotes on: 0 for White, 7 for
// Black.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// Evaluate declares the game over when either color has no men left, or
// when no piece on the whole board has a single CheckMove-accepted
// target. Fliers keep their side playable only through the second path;
// the material count looks at men alone.
func (cb *CheckersBoard) Evaluate() Verdict {
	var whiteMen, blackMen, anyMove bool
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			pc := cb.grid[r][c]
			if pc == nil {
				continue
			}
			if pc.Kind == CheckersMan {
				if pc.Color == White {
					whiteMen = true
				} else {
					blackMen = true
				}
			}
			if anyMove {
				continue
			}
			at := Cell{Row: r, Col: c}
			for _, t := range pc.Geometry() {
				if cb.CheckMove(at, t) {
					anyMove = true
					break
				}
			}
		}
	}
	return Verdict{Over: !whiteMen || !blackMen || !anyMove}
}
