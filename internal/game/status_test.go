// path: internal/game/status_test.go
package game

import "testing"

func TestEvaluateQuietBoard(t *testing.T) {
	b := NewBoard()
	v := b.Evaluate()
	if v.InCheck || v.Over {
		t.Fatalf("opening position evaluated as %+v", v)
	}
}

func TestEvaluateCheckWithoutMate(t *testing.T) {
	b := emptyBoard()
	b.placePiece(King, Black, Cell{Row: 0, Col: 4})
	b.placePiece(Rook, White, Cell{Row: 7, Col: 4})

	v := b.Evaluate()
	if !v.InCheck || v.Checked != Black {
		t.Fatalf("black king not reported in check: %+v", v)
	}
	if v.Over {
		t.Fatalf("escape squares remain, yet the game is over")
	}
}

func TestEvaluateMateByThreeRooks(t *testing.T) {
	b := emptyBoard()
	b.placePiece(King, Black, Cell{Row: 4, Col: 4})
	b.placePiece(Rook, White, Cell{Row: 3, Col: 4})
	b.placePiece(Rook, White, Cell{Row: 5, Col: 4})
	b.placePiece(Rook, White, Cell{Row: 4, Col: 0})

	v := b.Evaluate()
	if !v.InCheck || v.Checked != Black {
		t.Fatalf("mated king not reported in check: %+v", v)
	}
	if !v.Over {
		t.Fatalf("every escape square is covered, yet the game goes on")
	}
}

func TestEvaluateBlockedLineOfSightDropsThreats(t *testing.T) {
	// Same position as the three-rook mate, with a white pawn cutting
	// the third rook's line of sight to the king. The rook then
	// contributes nothing, the diagonal escapes open up, and only the
	// check remains.
	b := emptyBoard()
	b.placePiece(King, Black, Cell{Row: 4, Col: 4})
	b.placePiece(Rook, White, Cell{Row: 3, Col: 4})
	b.placePiece(Rook, White, Cell{Row: 5, Col: 4})
	b.placePiece(Rook, White, Cell{Row: 4, Col: 0})
	b.placePiece(Pawn, White, Cell{Row: 4, Col: 2})

	v := b.Evaluate()
	if !v.InCheck || v.Checked != Black {
		t.Fatalf("check lost after blocking one line: %+v", v)
	}
	if v.Over {
		t.Fatalf("game over although (4,3) and (4,5) are no longer covered")
	}
}

func TestEvaluateThreatRequiresLineOfSight(t *testing.T) {
	// A knight a knight's jump away could capture the king, but it has
	// no straight or diagonal line to it, so it never registers as a
	// checking piece.
	b := emptyBoard()
	b.placePiece(King, Black, Cell{Row: 4, Col: 4})
	b.placePiece(Knight, White, Cell{Row: 2, Col: 3})

	if v := b.Evaluate(); v.InCheck {
		t.Fatalf("knight without line of sight reported check: %+v", v)
	}
}

func TestEvaluateEveryKindThreatens(t *testing.T) {
	tests := []struct {
		name string
		kind PieceKind
		from Cell
	}{
		{"checkers man", CheckersMan, Cell{Row: 5, Col: 3}},
		{"ghost", Ghost, Cell{Row: 4, Col: 0}},
		{"snake", Snake, Cell{Row: 5, Col: 5}},
		// Threats come from movement geometry, so a pawn checks the
		// cell straight ahead rather than its capture diagonals.
		{"pawn", Pawn, Cell{Row: 5, Col: 4}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b := emptyBoard()
			b.placePiece(King, Black, Cell{Row: 4, Col: 4})
			b.placePiece(tt.kind, White, tt.from)
			v := b.Evaluate()
			if !v.InCheck || v.Checked != Black {
				t.Fatalf("%s does not check the king: %+v", tt.kind, v)
			}
		})
	}
}

func TestEvaluateWithoutKings(t *testing.T) {
	b := emptyBoard()
	b.placePiece(Rook, White, Cell{Row: 0, Col: 0})
	b.placePiece(Rook, Black, Cell{Row: 7, Col: 7})

	if v := b.Evaluate(); v.InCheck || v.Over {
		t.Fatalf("kingless board evaluated as %+v", v)
	}
}

func TestEvaluateReportsBlackFirst(t *testing.T) {
	b := emptyBoard()
	b.placePiece(King, White, Cell{Row: 0, Col: 0})
	b.placePiece(King, Black, Cell{Row: 7, Col: 7})
	b.placePiece(Rook, White, Cell{Row: 7, Col: 0})
	b.placePiece(Rook, Black, Cell{Row: 0, Col: 7})

	v := b.Evaluate()
	if !v.InCheck || v.Checked != Black {
		t.Fatalf("with both kings attacked the verdict is %+v, want black checked", v)
	}
	if v.Over {
		t.Fatalf("edge king with off-board escapes reported mated")
	}
}
