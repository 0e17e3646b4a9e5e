// path: internal/game/types_test.go
package game

import (
	"errors"
	"testing"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		token string
		want  Cell
	}{
		{"E2", Cell{Row: 1, Col: 4}},
		{"2E", Cell{Row: 1, Col: 4}},
		{"e2", Cell{Row: 1, Col: 4}},
		{"A1", Cell{Row: 0, Col: 0}},
		{"H8", Cell{Row: 7, Col: 7}},
		{"8h", Cell{Row: 7, Col: 7}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseCell(tt.token)
			if err != nil {
				t.Fatalf("ParseCell(%q): %v", tt.token, err)
			}
			if got != tt.want {
				t.Fatalf("ParseCell(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseCellRejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"", "E", "E2X", "E9", "I2", "EE", "22", "??", "e0"} {
		token := token
		t.Run("token "+token, func(t *testing.T) {
			if _, err := ParseCell(token); !errors.Is(err, ErrInvalidCoordinate) {
				t.Fatalf("ParseCell(%q) = %v, want ErrInvalidCoordinate", token, err)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	if got := (Cell{Row: 1, Col: 4}).String(); got != "E2" {
		t.Fatalf("cell string %q, want E2", got)
	}
	if got := (Cell{Row: 7, Col: 0}).String(); got != "A8" {
		t.Fatalf("cell string %q, want A8", got)
	}
	if got := (Cell{Row: -1, Col: 4}).String(); got != "(-1,4)" {
		t.Fatalf("off-board cell string %q", got)
	}
}

func TestMoveString(t *testing.T) {
	mv := Move{From: Cell{Row: 1, Col: 4}, To: Cell{Row: 3, Col: 4}}
	if got := mv.String(); got != "E2 E4" {
		t.Fatalf("move string %q, want E2 E4", got)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		ok   bool
	}{
		{"chess", VariantChess, true},
		{"Checkers", VariantCheckers, true},
		{" EXTENDED ", VariantExtended, true},
		{"go", VariantChess, false},
		{"", VariantChess, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseVariant(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("ParseVariant(%q) = %v, %v", tt.in, got, ok)
			}
		})
	}
}

func TestVariantOffersUndo(t *testing.T) {
	if !VariantChess.OffersUndo() || !VariantExtended.OffersUndo() {
		t.Fatalf("chess variants must offer undo")
	}
	if VariantCheckers.OffersUndo() {
		t.Fatalf("checkers must not offer undo")
	}
}

func TestGlyphs(t *testing.T) {
	tests := []struct {
		kind  PieceKind
		color Color
		want  byte
	}{
		{Pawn, White, 'P'},
		{Pawn, Black, 'p'},
		{Knight, White, 'N'},
		{Ghost, Black, 'g'},
		{Snake, White, 'S'},
		{CheckersMan, Black, 'o'},
		{PromotedFlier, White, 'F'},
	}
	for _, tt := range tests {
		if got := tt.kind.Glyph(tt.color); got != tt.want {
			t.Fatalf("%s %s glyph %q, want %q", tt.color, tt.kind, got, tt.want)
		}
	}
}

func TestColorOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Fatalf("opposite colors broken")
	}
}

func TestKindTraits(t *testing.T) {
	for k := Pawn; k < pieceKindCount; k++ {
		wantLeaper := k == Knight || k == Ghost
		if k.IsLeaper() != wantLeaper {
			t.Fatalf("%s leaper = %v", k, k.IsLeaper())
		}
		wantChain := k == Snake
		if k.ChainsOnCapture() != wantChain {
			t.Fatalf("%s chains = %v", k, k.ChainsOnCapture())
		}
	}
}
