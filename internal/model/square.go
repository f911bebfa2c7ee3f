package model

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strings"
)

const BoardSize = 8

// Square is a board coordinate. Rank 0 is White's back rank, file 0 is the a-file.
type Square struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square dr ranks and df files away, or false when it falls off the board.
func (s Square) Offset(dr, df int) (Square, bool) {
	target := Square{Rank: s.Rank + dr, File: s.File + df}
	return target, target.Valid()
}

func (s Square) index() int {
	return s.Rank*BoardSize + s.File
}

func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Rank, s.File)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// ParseSquare reads a coordinate label such as "e2".
func ParseSquare(label string) (Square, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, label)
	}
	sq := Square{Rank: int(label[1] - '1'), File: int(label[0] - 'a')}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, label)
	}
	return sq, nil
}

func squareAt(index int) Square {
	return Square{Rank: index / BoardSize, File: index % BoardSize}
}

// SquareSet is a 64-bit set of squares, one bit per square in rank-major order.
type SquareSet uint64

func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq.index())
}

func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq.index())) != 0
}

func (s SquareSet) Union(other SquareSet) SquareSet { return s | other }

func (s SquareSet) Empty() bool { return s == 0 }

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Each calls fn for every member, lowest rank first.
func (s SquareSet) Each(fn func(Square)) {
	rest := uint64(s)
	for rest != 0 {
		idx := bits.TrailingZeros64(rest)
		fn(squareAt(idx))
		rest &= rest - 1
	}
}

func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	s.Each(func(sq Square) {
		out = append(out, sq)
	})
	return out
}

func NewSquareSet(squares ...Square) SquareSet {
	var set SquareSet
	for _, sq := range squares {
		set = set.Add(sq)
	}
	return set
}

func (s SquareSet) String() string {
	labels := make([]string, 0, s.Len())
	s.Each(func(sq Square) {
		labels = append(labels, sq.String())
	})
	return "{" + strings.Join(labels, " ") + "}"
}

func (s SquareSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Squares())
}

func (s *SquareSet) UnmarshalJSON(data []byte) error {
	var squares []Square
	if err := json.Unmarshal(data, &squares); err != nil {
		return err
	}
	var set SquareSet
	for _, sq := range squares {
		if !sq.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidSquare, sq)
		}
		set = set.Add(sq)
	}
	*s = set
	return nil
}
