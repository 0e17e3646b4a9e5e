// path: internal/game/board.go
// Package game implements the board-game rule engine: per-kind move
// geometry, path clearance and move legality, captures with chain
// continuation, castling, the check heuristic, the checkers and extended
// variants, and the turn-driving session.
package game

// Grid is the 8x8 playing field. Empty cells hold nil.
type Grid [8][8]*Piece

// clone duplicates the grid and every piece in it, so the copy shares no
// memory with the original. The chain flag is turn state, not board
// state, and is not carried into copies.
func (g Grid) clone() Grid {
	var out Grid
	for r := range g {
		for c, pc := range g[r] {
			if pc != nil {
				cp := *pc
				cp.chained = false
				out[r][c] = &cp
			}
		}
	}
	return out
}

// Board owns the grid, the snapshot history and the chess movement rules.
// The variant boards embed it, replacing setup and the legality and
// capture logic while sharing occupancy, path clearance, castling and
// history handling.
type Board struct {
	grid    Grid
	history []Grid
}

// NewBoard returns the standard chess arrangement: the Black back rank on
// row 0 with its pawns on row 1, White mirrored on rows 7 and 6.
func NewBoard() *Board {
	b := &Board{}
	b.setupChess()
	b.saveState()
	return b
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func (b *Board) setupChess() {
	for col := 0; col < 8; col++ {
		b.placePiece(backRank[col], Black, Cell{Row: 0, Col: col})
		b.placePiece(Pawn, Black, Cell{Row: 1, Col: col})
		b.placePiece(Pawn, White, Cell{Row: 6, Col: col})
		b.placePiece(backRank[col], White, Cell{Row: 7, Col: col})
	}
}

func (b *Board) placePiece(kind PieceKind, color Color, at Cell) {
	b.grid[at.Row][at.Col] = newPiece(kind, color, at)
}

// PieceAt returns the occupant of a cell, or nil when the cell is empty
// or off the board.
func (b *Board) PieceAt(at Cell) *Piece {
	if !at.InBounds() {
		return nil
	}
	return b.grid[at.Row][at.Col]
}

// IsPathClear reports whether every cell strictly between the two
// endpoints is empty. Rows, columns and diagonals are the only understood
// pairings; anything else reports not clear. Identical endpoints are
// vacuously clear.
func (b *Board) IsPathClear(from, to Cell) bool {
	switch {
	case from.Row == to.Row:
		lo, hi := minInt(from.Col, to.Col), maxInt(from.Col, to.Col)
		for col := lo + 1; col < hi; col++ {
			if b.grid[from.Row][col] != nil {
				return false
			}
		}
		return true
	case from.Col == to.Col:
		lo, hi := minInt(from.Row, to.Row), maxInt(from.Row, to.Row)
		for row := lo + 1; row < hi; row++ {
			if b.grid[row][from.Col] != nil {
				return false
			}
		}
		return true
	case absInt(from.Row-to.Row) == absInt(from.Col-to.Col):
		stepRow, stepCol := normalize(to.Row-from.Row), normalize(to.Col-from.Col)
		for row, col := from.Row+stepRow, from.Col+stepCol; row != to.Row; row, col = row+stepRow, col+stepCol {
			if b.grid[row][col] != nil {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CheckMove reports whether moving the piece at from to to is legal under
// the chess rules: the destination must be in the piece's pseudo-legal
// geometry, swapped for the two capture diagonals when a pawn aims at an
// opposing piece, and the path to it must be clear unless the kind leaps.
// Friendly occupancy of the destination is not rejected here.
func (b *Board) CheckMove(from, to Cell) bool {
	pc := b.PieceAt(from)
	if pc == nil {
		return false
	}
	targets := pc.Geometry()
	if pc.Kind == Pawn {
		if victim := b.PieceAt(to); victim != nil && victim.Color != pc.Color {
			targets = forwardDiagonals(pc.Color, from)
		}
	}
	if !containsCell(targets, to) {
		return false
	}
	if pc.Kind.IsLeaper() {
		return true
	}
	return b.IsPathClear(from, to)
}

// MoveReport describes what a move application did beyond relocating the
// piece.
type MoveReport struct {
	Captured     bool
	CapturedKind PieceKind
	Promoted     bool
}

// MakeMove relocates the piece at from to to, destroying whatever
// occupied the destination, and pushes a history snapshot. Callers
// validate with CheckMove first; moving from an empty cell is a
// programming fault.
func (b *Board) MakeMove(from, to Cell) MoveReport {
	pc := b.grid[from.Row][from.Col]
	if pc == nil {
		panic("game: MakeMove from empty cell " + from.String())
	}
	var report MoveReport
	if victim := b.grid[to.Row][to.Col]; victim != nil {
		report.Captured = true
		report.CapturedKind = victim.Kind
		if pc.Kind.ChainsOnCapture() {
			pc.chained = true
		}
	}
	b.relocate(pc, from, to)
	b.saveState()
	return report
}

func (b *Board) relocate(pc *Piece, from, to Cell) {
	b.grid[to.Row][to.Col] = pc
	pc.Pos = to
	b.grid[from.Row][from.Col] = nil
}

// castleRow is the row castling inspects and mutates: 0 for White, 7 for
// Black, wherever the kings actually stand.
func castleRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// CanCastle reports whether the kingside castle is currently available
// for a color: a king of that color on column 4 and a rook of that color
// on column 7 of the castle row, with the cells between them empty. Prior
// movement of either piece is not tracked; only the current arrangement
// counts.
func (b *Board) CanCastle(c Color) bool {
	row := castleRow(c)
	kingCell := Cell{Row: row, Col: 4}
	rookCell := Cell{Row: row, Col: 7}
	king := b.PieceAt(kingCell)
	if king == nil || king.Kind != King || king.Color != c {
		return false
	}
	rook := b.PieceAt(rookCell)
	if rook == nil || rook.Kind != Rook || rook.Color != c {
		return false
	}
	return b.IsPathClear(kingCell, rookCell)
}

// Castle performs the kingside castle for a color whose CanCastle holds:
// the king lands on column 6 and the rook on column 5 of the castle row.
// Castling does not push a history snapshot; only regular moves do.
func (b *Board) Castle(c Color) {
	row := castleRow(c)
	b.relocate(b.grid[row][4], Cell{Row: row, Col: 4}, Cell{Row: row, Col: 6})
	b.relocate(b.grid[row][7], Cell{Row: row, Col: 7}, Cell{Row: row, Col: 5})
}

func (b *Board) saveState() {
	b.history = append(b.history, b.grid.clone())
}

// Undo discards the newest snapshot and restores the previous one. The
// initial snapshot is never popped; undoing past it reports
// ErrNothingToUndo and leaves the board untouched.
func (b *Board) Undo() error {
	if len(b.history) <= 1 {
		return ErrNothingToUndo
	}
	b.history = b.history[:len(b.history)-1]
	b.grid = b.history[len(b.history)-1].clone()
	return nil
}

// Snapshot returns an independent copy of the current grid for rendering
// and inspection.
func (b *Board) Snapshot() Grid {
	return b.grid.clone()
}

// ConsumeChainFlag reports and clears the chain flag of the piece at a
// cell. A set flag means the piece's last capture keeps the turn with its
// owner.
func (b *Board) ConsumeChainFlag(at Cell) bool {
	pc := b.PieceAt(at)
	if pc == nil || !pc.chained {
		return false
	}
	pc.chained = false
	return true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func normalize(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
