package model

import "strings"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

// forward is the rank step of this color's pawns.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) pawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// enPassantRank is where this color's pawns stand beside an enemy pawn that has just
// made its double step.
func (c Color) enPassantRank() int {
	enemy := c.Opposite()
	return enemy.pawnRank() + 2*enemy.forward()
}

func (c Color) backRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// Piece is a value owned by the square it stands on. The zero Piece is an empty square.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
	// HasMoved is only tracked for pawns.
	HasMoved bool `json:"hasMoved,omitempty"`
}

func (p Piece) IsZero() bool { return p.Type == "" }

var glyphs = map[Color]map[PieceType]rune{
	White: {King: '♔', Queen: '♕', Rook: '♖', Bishop: '♗', Knight: '♘', Pawn: '♙'},
	Black: {King: '♚', Queen: '♛', Rook: '♜', Bishop: '♝', Knight: '♞', Pawn: '♟'},
}

func (p Piece) Symbol() rune {
	if r, ok := glyphs[p.Color][p.Type]; ok {
		return r
	}
	return '·'
}

// moved returns the copy of p that lands on the destination square.
func (p Piece) moved() Piece {
	if p.Type == Pawn {
		p.HasMoved = true
	}
	return p
}

// Board is an 8x8 grid indexed [rank][file]. Copying a Board copies every piece.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

var backRankOrder = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func EmptyBoard() Board {
	return Board{}
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	b := EmptyBoard()
	for _, color := range []Color{White, Black} {
		for file := 0; file < BoardSize; file++ {
			b.squares[color.backRank()][file] = Piece{Type: backRankOrder[file], Color: color}
			b.squares[color.pawnRank()][file] = Piece{Type: Pawn, Color: color}
		}
	}
	return b
}

// At returns the occupant of sq. Off-board squares read as empty.
func (b *Board) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.squares[sq.Rank][sq.File]
	return p, !p.IsZero()
}

func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.squares[sq.Rank][sq.File] = p
	}
}

func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Move clears from and places a moved copy of its occupant on to, returning what was captured.
func (b *Board) Move(from, to Square) (captured Piece, ok bool) {
	piece, exists := b.At(from)
	if !exists || !to.Valid() {
		return Piece{}, false
	}
	captured, _ = b.At(to)
	b.Clear(from)
	b.Set(to, piece.moved())
	return captured, true
}

// Each visits every occupied square, rank 0 first.
func (b *Board) Each(fn func(Square, Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[rank][file]; !p.IsZero() {
				fn(Square{Rank: rank, File: file}, p)
			}
		}
	}
}

func (b *Board) Count(color Color) int {
	n := 0
	b.Each(func(_ Square, p Piece) {
		if p.Color == color {
			n++
		}
	})
	return n
}

func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			sb.WriteRune(b.squares[rank][file].Symbol())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
