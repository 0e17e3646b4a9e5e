// path: internal/game/status.go
package game

// Verdict is the outcome of a game-over evaluation. InCheck names at most
// one color per evaluation: Black is examined first and, when threatened,
// White is not examined at all.
type Verdict struct {
	InCheck bool
	Checked Color
	Over    bool
}

// Evaluate runs the check heuristic. A piece contributes its whole
// pseudo-legal geometry to the threat set against the enemy king whenever
// it has a clear straight or diagonal line of sight to the king's cell;
// line of sight is the only gate, not the legality of any particular
// move. A checked color loses when every pseudo-legal king target is also
// threatened. A color without a king on the grid is never in check, and
// stalemate is never detected.
func (b *Board) Evaluate() Verdict {
	var whiteKing, blackKing Cell
	var whiteFound, blackFound bool
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			pc := b.grid[r][c]
			if pc == nil || pc.Kind != King {
				continue
			}
			if pc.Color == White {
				whiteKing, whiteFound = Cell{Row: r, Col: c}, true
			} else {
				blackKing, blackFound = Cell{Row: r, Col: c}, true
			}
		}
	}

	againstWhite := make(map[Cell]struct{})
	againstBlack := make(map[Cell]struct{})
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			pc := b.grid[r][c]
			if pc == nil {
				continue
			}
			at := Cell{Row: r, Col: c}
			if pc.Color == White && blackFound && b.IsPathClear(at, blackKing) {
				for _, t := range pc.Geometry() {
					againstBlack[t] = struct{}{}
				}
			}
			if pc.Color == Black && whiteFound && b.IsPathClear(at, whiteKing) {
				for _, t := range pc.Geometry() {
					againstWhite[t] = struct{}{}
				}
			}
		}
	}

	if blackFound {
		if _, threatened := againstBlack[blackKing]; threatened {
			return Verdict{
				InCheck: true,
				Checked: Black,
				Over:    allThreatened(geometryFor(King, Black, blackKing), againstBlack),
			}
		}
	}
	if whiteFound {
		if _, threatened := againstWhite[whiteKing]; threatened {
			return Verdict{
				InCheck: true,
				Checked: White,
				Over:    allThreatened(geometryFor(King, White, whiteKing), againstWhite),
			}
		}
	}
	return Verdict{}
}

// allThreatened holds when every candidate cell, the off-board ones
// included, is in the threat set. A king on the edge therefore needs its
// off-board neighbors covered too, which only the offset kinds can do.
func allThreatened(cells []Cell, threats map[Cell]struct{}) bool {
	for _, c := range cells {
		if _, ok := threats[c]; !ok {
			return false
		}
	}
	return true
}
