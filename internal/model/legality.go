package model

// LegalMoves filters the pseudo moves of the piece on from down to those that leave its own king
// out of check. Each candidate is played on a scratch copy; b is never modified.
func LegalMoves(b *Board, from Square) SquareSet {
	piece, ok := b.At(from)
	if !ok {
		return 0
	}
	var legal SquareSet
	piece.PseudoMoves(b, from).Each(func(to Square) {
		if keepsKingSafe(b, piece.Color, from, to) {
			legal = legal.Add(to)
		}
	})
	return legal
}

func keepsKingSafe(b *Board, color Color, from, to Square) bool {
	scratch := *b
	scratch.Move(from, to)
	return !InCheck(&scratch, color)
}

// MovableSquares returns the squares holding a piece of color with at least one legal move.
func MovableSquares(b *Board, color Color) SquareSet {
	var movable SquareSet
	b.Each(func(at Square, p Piece) {
		if p.Color == color && !LegalMoves(b, at).Empty() {
			movable = movable.Add(at)
		}
	})
	return movable
}
