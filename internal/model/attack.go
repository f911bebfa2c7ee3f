package model

// SquareAttackedBy reports whether any piece of color by threatens sq.
func SquareAttackedBy(b *Board, sq Square, by Color) bool {
	if !sq.Valid() {
		return false
	}
	attacked := false
	b.Each(func(at Square, p Piece) {
		if attacked || p.Color != by {
			return
		}
		attacked = p.AttackSquares(b, at).Has(sq)
	})
	return attacked
}

// FindKing locates color's king. Any count other than one is an *InvariantError.
func FindKing(b *Board, color Color) (Square, error) {
	var found Square
	kings := 0
	b.Each(func(at Square, p Piece) {
		if p.Type == King && p.Color == color {
			found = at
			kings++
		}
	})
	if kings != 1 {
		return Square{}, &InvariantError{Color: color, Kings: kings}
	}
	return found, nil
}

// InCheck reports whether color's king is attacked. It panics with an *InvariantError when the
// board does not hold exactly one king of that color: such a board can only come from a bug in
// move application.
func InCheck(b *Board, color Color) bool {
	king, err := FindKing(b, color)
	if err != nil {
		panic(err)
	}
	return SquareAttackedBy(b, king, color.Opposite())
}
