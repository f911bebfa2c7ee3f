package model

import "fmt"

// PlacedPiece is one occupied square of a snapshot.
type PlacedPiece struct {
	Square
	Piece
}

// Snapshot is the persisted form of a game: side to move plus every piece with its pawn moved
// flag. Selection, history and derived caches are rebuilt on load.
type Snapshot struct {
	ToMove Color         `json:"toMove"`
	Pieces []PlacedPiece `json:"pieces"`
}

func (s GameState) Snapshot() Snapshot {
	snap := Snapshot{ToMove: s.toMove, Pieces: make([]PlacedPiece, 0, 32)}
	s.board.Each(func(at Square, p Piece) {
		snap.Pieces = append(snap.Pieces, PlacedPiece{Square: at, Piece: p})
	})
	return snap
}

// Board rebuilds the board described by the snapshot after validating every piece.
func (snap Snapshot) Board() (Board, error) {
	board := EmptyBoard()
	for _, placed := range snap.Pieces {
		if !placed.Square.Valid() {
			return Board{}, fmt.Errorf("%w: %w %v", ErrInvalidSnapshot, ErrInvalidSquare, placed.Square)
		}
		if !placed.Type.Valid() || !placed.Color.Valid() {
			return Board{}, fmt.Errorf("%w: unknown piece %q/%q on %s", ErrInvalidSnapshot, placed.Color, placed.Type, placed.Square)
		}
		if placed.HasMoved && placed.Type != Pawn {
			return Board{}, fmt.Errorf("%w: moved flag on %s %s", ErrInvalidSnapshot, placed.Color, placed.Type)
		}
		if _, occupied := board.At(placed.Square); occupied {
			return Board{}, fmt.Errorf("%w: two pieces on %s", ErrInvalidSnapshot, placed.Square)
		}
		board.Set(placed.Square, placed.Piece)
	}
	return board, nil
}

// FromSnapshot restores a game. The position must have exactly one king per color and the side
// that just moved must not be left in check.
func FromSnapshot(snap Snapshot) (GameState, error) {
	if !snap.ToMove.Valid() {
		return GameState{}, fmt.Errorf("%w: side to move %q", ErrInvalidSnapshot, snap.ToMove)
	}
	board, err := snap.Board()
	if err != nil {
		return GameState{}, err
	}
	for _, color := range []Color{White, Black} {
		if _, err := FindKing(&board, color); err != nil {
			return GameState{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}
	if InCheck(&board, snap.ToMove.Opposite()) {
		return GameState{}, fmt.Errorf("%w: %s to move but %s is in check", ErrInvalidSnapshot, snap.ToMove, snap.ToMove.Opposite())
	}
	return newGameState(board, snap.ToMove), nil
}
