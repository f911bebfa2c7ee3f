package model

type direction struct {
	dr, df int
}

var (
	rookDirs   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = append(append([]direction{}, rookDirs...), bishopDirs...)
	kingDirs   = queenDirs
	knightDirs = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// PseudoMoves returns the squares p could reach from at, ignoring whether its own king would be
// left in check.
func (p Piece) PseudoMoves(b *Board, at Square) SquareSet {
	switch p.Type {
	case Pawn:
		return p.pawnMoves(b, at)
	case Knight:
		return p.stepMoves(b, at, knightDirs)
	case Bishop:
		return p.slideMoves(b, at, bishopDirs)
	case Rook:
		return p.slideMoves(b, at, rookDirs)
	case Queen:
		return p.slideMoves(b, at, queenDirs)
	case King:
		return p.kingMoves(b, at)
	default:
		return 0
	}
}

// AttackSquares returns the squares p threatens from at. Pawns threaten both forward diagonals
// whether or not they are occupied, and never the square straight ahead.
func (p Piece) AttackSquares(b *Board, at Square) SquareSet {
	switch p.Type {
	case Pawn:
		return p.pawnAttacks(at)
	case Knight:
		return stepAttacks(at, knightDirs)
	case Bishop:
		return slideAttacks(b, at, bishopDirs)
	case Rook:
		return slideAttacks(b, at, rookDirs)
	case Queen:
		return slideAttacks(b, at, queenDirs)
	case King:
		return stepAttacks(at, kingDirs)
	default:
		return 0
	}
}

// PseudoMoves looks up the piece on at and returns its pseudo-legal destinations.
func PseudoMoves(b *Board, at Square) SquareSet {
	p, ok := b.At(at)
	if !ok {
		return 0
	}
	return p.PseudoMoves(b, at)
}

func AttackSquares(b *Board, at Square) SquareSet {
	p, ok := b.At(at)
	if !ok {
		return 0
	}
	return p.AttackSquares(b, at)
}

// canLand reports whether p may end on target: empty or enemy-occupied.
func (p Piece) canLand(b *Board, target Square) bool {
	occupant, occupied := b.At(target)
	return !occupied || occupant.Color != p.Color
}

func (p Piece) pawnMoves(b *Board, at Square) SquareSet {
	var moves SquareSet
	dir := p.Color.forward()

	if one, ok := at.Offset(dir, 0); ok {
		if _, blocked := b.At(one); !blocked {
			moves = moves.Add(one)
			if two, ok := at.Offset(2*dir, 0); ok && !p.HasMoved && at.Rank == p.Color.pawnRank() {
				if _, blocked := b.At(two); !blocked {
					moves = moves.Add(two)
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		target, ok := at.Offset(dir, df)
		if !ok {
			continue
		}
		if occupant, occupied := b.At(target); occupied {
			if occupant.Color != p.Color {
				moves = moves.Add(target)
			}
			continue
		}
		// en passant: the pawn lands behind an enemy pawn standing beside it; the
		// passed pawn itself stays on the board.
		if at.Rank != p.Color.enPassantRank() {
			continue
		}
		beside, ok := at.Offset(0, df)
		if !ok {
			continue
		}
		if neighbour, occupied := b.At(beside); occupied && neighbour.Type == Pawn && neighbour.Color != p.Color {
			moves = moves.Add(target)
		}
	}
	return moves
}

func (p Piece) pawnAttacks(at Square) SquareSet {
	var attacks SquareSet
	for _, df := range []int{-1, 1} {
		if target, ok := at.Offset(p.Color.forward(), df); ok {
			attacks = attacks.Add(target)
		}
	}
	return attacks
}

func (p Piece) stepMoves(b *Board, at Square, dirs []direction) SquareSet {
	var moves SquareSet
	for _, d := range dirs {
		if target, ok := at.Offset(d.dr, d.df); ok && p.canLand(b, target) {
			moves = moves.Add(target)
		}
	}
	return moves
}

func stepAttacks(at Square, dirs []direction) SquareSet {
	var attacks SquareSet
	for _, d := range dirs {
		if target, ok := at.Offset(d.dr, d.df); ok {
			attacks = attacks.Add(target)
		}
	}
	return attacks
}

func (p Piece) slideMoves(b *Board, at Square, dirs []direction) SquareSet {
	var moves SquareSet
	for _, d := range dirs {
		target, ok := at.Offset(d.dr, d.df)
		for ok {
			occupant, occupied := b.At(target)
			if occupied {
				if occupant.Color != p.Color {
					moves = moves.Add(target)
				}
				break
			}
			moves = moves.Add(target)
			target, ok = target.Offset(d.dr, d.df)
		}
	}
	return moves
}

func slideAttacks(b *Board, at Square, dirs []direction) SquareSet {
	var attacks SquareSet
	for _, d := range dirs {
		target, ok := at.Offset(d.dr, d.df)
		for ok {
			attacks = attacks.Add(target)
			if _, occupied := b.At(target); occupied {
				break
			}
			target, ok = target.Offset(d.dr, d.df)
		}
	}
	return attacks
}

// kingMoves drops adjacent squares the enemy attacks. An enemy piece defended by another enemy
// piece is attacked on its own square, so it cannot be captured either.
func (p Piece) kingMoves(b *Board, at Square) SquareSet {
	var moves SquareSet
	enemy := p.Color.Opposite()
	for _, d := range kingDirs {
		target, ok := at.Offset(d.dr, d.df)
		if !ok || !p.canLand(b, target) {
			continue
		}
		if SquareAttackedBy(b, target, enemy) {
			continue
		}
		moves = moves.Add(target)
	}
	return moves
}
