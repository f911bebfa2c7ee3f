package model

import "testing"

func sq(t *testing.T, label string) Square {
	t.Helper()
	s, err := ParseSquare(label)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", label, err)
	}
	return s
}

func set(t *testing.T, labels ...string) SquareSet {
	t.Helper()
	var out SquareSet
	for _, l := range labels {
		out = out.Add(sq(t, l))
	}
	return out
}

// boardOf builds a board from square labels.
func boardOf(t *testing.T, pieces map[string]Piece) Board {
	t.Helper()
	b := EmptyBoard()
	for label, p := range pieces {
		b.Set(sq(t, label), p)
	}
	return b
}

func gameOf(t *testing.T, toMove Color, pieces map[string]Piece) GameState {
	t.Helper()
	b := boardOf(t, pieces)
	var snap Snapshot
	snap.ToMove = toMove
	b.Each(func(at Square, p Piece) {
		snap.Pieces = append(snap.Pieces, PlacedPiece{Square: at, Piece: p})
	})
	g, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	return g
}

func play(t *testing.T, g GameState, moves ...string) GameState {
	t.Helper()
	for _, m := range moves {
		next, err := g.AttemptMove(sq(t, m[:2]), sq(t, m[2:]))
		if err != nil {
			t.Fatalf("AttemptMove(%s): %v\n%s", m, err, g.board.String())
		}
		g = next
	}
	return g
}

var (
	wK = Piece{Type: King, Color: White}
	wQ = Piece{Type: Queen, Color: White}
	wR = Piece{Type: Rook, Color: White}
	wB = Piece{Type: Bishop, Color: White}
	wN = Piece{Type: Knight, Color: White}
	wP = Piece{Type: Pawn, Color: White}
	bK = Piece{Type: King, Color: Black}
	bQ = Piece{Type: Queen, Color: Black}
	bR = Piece{Type: Rook, Color: Black}
	bB = Piece{Type: Bishop, Color: Black}
	bN = Piece{Type: Knight, Color: Black}
	bP = Piece{Type: Pawn, Color: Black}
)
