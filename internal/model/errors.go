package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSquare marks coordinates outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrMoveRejected is returned for illegal, out-of-turn or empty-source moves.
	ErrMoveRejected = errors.New("move rejected")

	// ErrMissingKing marks a board without exactly one king of a color.
	ErrMissingKing = errors.New("missing king")

	// ErrInvalidSnapshot is returned when a snapshot does not describe a playable position.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

type RejectReason string

const (
	ReasonInvalidSquare      RejectReason = "square off the board"
	ReasonEmptySource        RejectReason = "no piece at from square"
	ReasonOutOfTurn          RejectReason = "not your turn"
	ReasonIllegalDestination RejectReason = "destination not legal"
	ReasonGameOver           RejectReason = "game is over"
)

// MoveError describes a rejected move. It unwraps to ErrMoveRejected.
type MoveError struct {
	From   Square
	To     Square
	Reason RejectReason
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v: %s-%s: %s", ErrMoveRejected, e.From, e.To, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return ErrMoveRejected
}

// InvariantError reports a malformed board. It unwraps to ErrMissingKing.
type InvariantError struct {
	Color Color
	Kings int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s has %d kings", ErrMissingKing, e.Color, e.Kings)
}

func (e *InvariantError) Unwrap() error {
	return ErrMissingKing
}
