package model

import (
	"errors"
	"testing"
)

func TestInCheck(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[string]Piece
		color  Color
		want   bool
	}{
		{"initial", map[string]Piece{"e1": wK, "e8": bK}, White, false},
		{"rook on file", map[string]Piece{"e1": wK, "e8": bR, "a8": bK}, White, true},
		{"rook blocked", map[string]Piece{"e1": wK, "e8": bR, "e4": bP, "a8": bK}, White, false},
		{"knight", map[string]Piece{"e1": wK, "f3": bN, "a8": bK}, White, true},
		{"pawn diagonal", map[string]Piece{"e8": bK, "d7": wP, "a1": wK}, Black, true},
		{"pawn straight ahead", map[string]Piece{"e8": bK, "e7": wP, "a1": wK}, Black, false},
		{"own piece does not check", map[string]Piece{"e1": wK, "e8": wR, "a8": bK}, White, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(t, tt.pieces)
			if got := InCheck(&b, tt.color); got != tt.want {
				t.Errorf("InCheck(%s) = %v, want %v\n%s", tt.color, got, tt.want, b.String())
			}
		})
	}
}

func TestFindKingRequiresExactlyOne(t *testing.T) {
	none := boardOf(t, map[string]Piece{"e8": bK})
	if _, err := FindKing(&none, White); !errors.Is(err, ErrMissingKing) {
		t.Errorf("FindKing with no king: err = %v, want ErrMissingKing", err)
	}

	two := boardOf(t, map[string]Piece{"e1": wK, "d1": wK})
	_, err := FindKing(&two, White)
	var inv *InvariantError
	if !errors.As(err, &inv) || inv.Kings != 2 {
		t.Errorf("FindKing with two kings: err = %v, want InvariantError with 2 kings", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("InCheck on a board without a king should panic")
		}
	}()
	InCheck(&none, White)
}

func TestLegalMovesPinnedPiece(t *testing.T) {
	b := boardOf(t, map[string]Piece{"e1": wK, "e2": wN, "e8": bR, "a8": bK})
	if got := LegalMoves(&b, sq(t, "e2")); !got.Empty() {
		t.Errorf("pinned knight has moves %v", got)
	}

	// a pinned rook may still slide along the pin line
	b = boardOf(t, map[string]Piece{"e1": wK, "e2": wR, "e8": bR, "a8": bK})
	want := set(t, "e3", "e4", "e5", "e6", "e7", "e8")
	if got := LegalMoves(&b, sq(t, "e2")); got != want {
		t.Errorf("pinned rook moves = %v, want %v", got, want)
	}
}

func TestLegalMovesMustAnswerCheck(t *testing.T) {
	b := boardOf(t, map[string]Piece{"e1": wK, "e8": bR, "a8": bK, "c3": wN, "h4": wB, "a2": wP})
	if got, want := LegalMoves(&b, sq(t, "c3")), set(t, "e2", "e4"); got != want {
		t.Errorf("knight blocks = %v, want %v", got, want)
	}
	if got, want := LegalMoves(&b, sq(t, "h4")), set(t, "e7"); got != want {
		t.Errorf("bishop block = %v, want %v", got, want)
	}
	if got := LegalMoves(&b, sq(t, "a2")); !got.Empty() {
		t.Errorf("pawn ignoring check has moves %v", got)
	}
}

func TestKingCannotRetreatAlongCheckingRay(t *testing.T) {
	b := boardOf(t, map[string]Piece{"d1": wK, "a1": bR, "h8": bK})
	got := LegalMoves(&b, sq(t, "d1"))
	if got.Has(sq(t, "e1")) {
		t.Errorf("king stepped along the rook's ray: %v", got)
	}
	if want := set(t, "c2", "d2", "e2"); got != want {
		t.Errorf("LegalMoves(d1) = %v, want %v", got, want)
	}
}

func TestLegalMovesLeaveBoardUntouched(t *testing.T) {
	b := NewBoard()
	before := b
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			LegalMoves(&b, Square{Rank: rank, File: file})
		}
	}
	if b != before {
		t.Errorf("LegalMoves mutated the board:\n%s", b.String())
	}
}

// TestNoLegalMoveSelfChecks walks a deterministic game and checks every legal move of every
// position along the way.
func TestNoLegalMoveSelfChecks(t *testing.T) {
	g := NewGame()
	for ply := 0; ply < 60 && !g.Status().Over(); ply++ {
		movable := g.Movable().Squares()
		for _, from := range movable {
			g.QueryMoves(from).Each(func(to Square) {
				scratch := g.Board()
				scratch.Move(from, to)
				if InCheck(&scratch, g.ToMove()) {
					t.Fatalf("ply %d: %s-%s leaves %s in check\n%s", ply, from, to, g.ToMove(), scratch.String())
				}
			})
		}

		from := movable[(ply*7)%len(movable)]
		targets := g.QueryMoves(from).Squares()
		next, err := g.AttemptMove(from, targets[(ply*3)%len(targets)])
		if err != nil {
			t.Fatalf("ply %d: %v", ply, err)
		}
		g = next
	}
}
