package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKnightMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
		from   string
		want   SquareSet
	}{
		{
			name:   "corner",
			pieces: map[string]Piece{"a1": wN},
			from:   "a1",
			want:   set(t, "b3", "c2"),
		},
		{
			name:   "centre",
			pieces: map[string]Piece{"d4": wN},
			from:   "d4",
			want:   set(t, "b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"),
		},
		{
			name:   "centre with own and enemy pieces",
			pieces: map[string]Piece{"d4": wN, "e6": wP, "c2": wB, "f5": bP, "b3": bR},
			from:   "d4",
			want:   set(t, "b3", "b5", "c6", "e2", "f3", "f5"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.pieces)
			got := PseudoMoves(&b, sq(t, tt.from))
			if got != tt.want {
				t.Errorf("PseudoMoves(%s) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestSlidingPiecesStopAtFirstOccupant(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
		from   string
		want   SquareSet
	}{
		{
			name:   "rook",
			pieces: map[string]Piece{"d4": wR, "d6": bP, "f4": wP, "d2": wN},
			from:   "d4",
			// enemy on d6 included, own pieces on f4 and d2 excluded
			want: set(t, "d5", "d6", "e4", "a4", "b4", "c4", "d3"),
		},
		{
			name:   "bishop",
			pieces: map[string]Piece{"c1": wB, "e3": bN, "b2": wP},
			from:   "c1",
			want:   set(t, "d2", "e3"),
		},
		{
			name:   "queen",
			pieces: map[string]Piece{"a1": wQ, "a3": bP, "c3": wP, "c1": bR},
			from:   "a1",
			want:   set(t, "a2", "a3", "b2", "b1", "c1"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.pieces)
			got := PseudoMoves(&b, sq(t, tt.from))
			if diff := cmp.Diff(tt.want.Squares(), got.Squares()); diff != "" {
				t.Errorf("PseudoMoves(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestSlidingAttacksIncludeFriendlyBlocker(t *testing.T) {
	b := boardOf(t, map[string]Piece{"a1": wR, "a3": wP, "c1": bN})
	got := AttackSquares(&b, sq(t, "a1"))
	want := set(t, "a2", "a3", "b1", "c1")
	if got != want {
		t.Errorf("AttackSquares(a1) = %v, want %v", got, want)
	}
}

func TestPawnHomeRankDoubleStep(t *testing.T) {
	b := NewBoard()
	for file := 0; file < BoardSize; file++ {
		for _, c := range []Color{White, Black} {
			from := Square{Rank: c.pawnRank(), File: file}
			one, _ := from.Offset(c.forward(), 0)
			two, _ := from.Offset(2*c.forward(), 0)
			got := PseudoMoves(&b, from)
			if want := NewSquareSet(one, two); got != want {
				t.Errorf("%s pawn on %s: %v, want %v", c, from, got, want)
			}
		}
	}
}

func TestPawnMoves(t *testing.T) {
	movedWhite := Piece{Type: Pawn, Color: White, HasMoved: true}
	tests := []struct {
		name   string
		pieces map[string]Piece
		from   string
		want   SquareSet
	}{
		{"blocked", map[string]Piece{"e2": wP, "e3": bN}, "e2", 0},
		{"double step blocked", map[string]Piece{"e2": wP, "e4": bN}, "e2", set(t, "e3")},
		{"moved pawn single step", map[string]Piece{"e3": movedWhite}, "e3", set(t, "e4")},
		{"unmoved pawn off home rank", map[string]Piece{"e3": wP}, "e3", set(t, "e4")},
		{"captures enemies only", map[string]Piece{"e4": movedWhite, "d5": bP, "f5": wN}, "e4", set(t, "e5", "d5")},
		{"black advances down", map[string]Piece{"c7": bP, "b6": wP}, "c7", set(t, "c6", "c5", "b6")},
		{"edge file", map[string]Piece{"a2": wP, "b3": bP}, "a2", set(t, "a3", "a4", "b3")},
		{"last rank", map[string]Piece{"h8": movedWhite}, "h8", 0},
		{"white en passant", map[string]Piece{"e5": movedWhite, "d5": bP}, "e5", set(t, "e6", "d6")},
		{"black en passant", map[string]Piece{"d4": {Type: Pawn, Color: Black, HasMoved: true}, "c4": wP, "e4": wP}, "d4", set(t, "d3", "c3", "e3")},
		{"no en passant off rank", map[string]Piece{"e4": movedWhite, "d4": bP}, "e4", set(t, "e5")},
		{"no en passant beside a piece", map[string]Piece{"e5": movedWhite, "d5": bN}, "e5", set(t, "e6")},
		{"no en passant onto own piece", map[string]Piece{"e5": movedWhite, "d5": bP, "d6": wN}, "e5", set(t, "e6")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.pieces)
			got := PseudoMoves(&b, sq(t, tt.from))
			if got != tt.want {
				t.Errorf("PseudoMoves(%s) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestPawnAttackSquares(t *testing.T) {
	b := boardOf(t, map[string]Piece{"e4": wP, "e5": bP, "a5": bP})
	if got, want := AttackSquares(&b, sq(t, "e4")), set(t, "d5", "f5"); got != want {
		t.Errorf("white pawn e4 attacks %v, want %v", got, want)
	}
	if got, want := AttackSquares(&b, sq(t, "a5")), set(t, "b4"); got != want {
		t.Errorf("black pawn a5 attacks %v, want %v", got, want)
	}
	if AttackSquares(&b, sq(t, "e4")).Has(sq(t, "e5")) {
		t.Error("pawn must not attack the square straight ahead")
	}
}

func TestKingMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
		from   string
		want   SquareSet
	}{
		{
			name:   "open board",
			pieces: map[string]Piece{"e4": wK},
			from:   "e4",
			want:   set(t, "d3", "d4", "d5", "e3", "e5", "f3", "f4", "f5"),
		},
		{
			name:   "attacked squares dropped",
			pieces: map[string]Piece{"e1": wK, "a2": bR},
			from:   "e1",
			want:   set(t, "d1", "f1"),
		},
		{
			name:   "undefended enemy captured",
			pieces: map[string]Piece{"e1": wK, "e2": bQ},
			from:   "e1",
			want:   set(t, "e2"),
		},
		{
			name:   "defended enemy not captured",
			pieces: map[string]Piece{"e1": wK, "e2": bQ, "e8": bR},
			from:   "e1",
			want:   0,
		},
		{
			name:   "kings keep apart",
			pieces: map[string]Piece{"e1": wK, "e3": bK},
			from:   "e1",
			want:   set(t, "d1", "f1"),
		},
		{
			name:   "pawn threat on empty square",
			pieces: map[string]Piece{"a1": wK, "b3": bP},
			from:   "a1",
			want:   set(t, "b1", "b2"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.pieces)
			got := PseudoMoves(&b, sq(t, tt.from))
			if got != tt.want {
				t.Errorf("PseudoMoves(%s) = %v, want %v\n%s", tt.from, got, tt.want, b.String())
			}
		})
	}
}
