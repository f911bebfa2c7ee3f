package model

type Outcome string

const (
	Ongoing   Outcome = "ongoing"
	Checkmate Outcome = "checkmate"
	Stalemate Outcome = "stalemate"
)

// Status is the verdict for the side to move. Winner is only set on checkmate.
type Status struct {
	Outcome Outcome `json:"outcome"`
	Winner  Color   `json:"winner,omitempty"`
}

func (s Status) Over() bool {
	return s.Outcome != Ongoing
}

func (s Status) String() string {
	if s.Outcome == Checkmate {
		return "checkmate, " + string(s.Winner) + " wins"
	}
	return string(s.Outcome)
}

// GameState is one game as a value: every operation takes a state and returns a new one, so
// a rejected move or an abandoned query can never leave a partial change behind.
type GameState struct {
	board  Board
	toMove Color

	status  Status
	inCheck bool
	movable SquareSet

	selected      Square
	hasSelection  bool
	selectedMoves SquareSet

	history []Ply
}

// NewGame returns the standard starting position with White to move.
func NewGame() GameState {
	return newGameState(NewBoard(), White)
}

func newGameState(board Board, toMove Color) GameState {
	s := GameState{board: board, toMove: toMove}
	s.evaluateTurn()
	return s
}

// evaluateTurn collects every legal move of the side to move before classifying the position:
// checkmate and stalemate only differ in whether the king is attacked.
func (s *GameState) evaluateTurn() {
	s.movable = MovableSquares(&s.board, s.toMove)
	s.inCheck = InCheck(&s.board, s.toMove)
	switch {
	case !s.movable.Empty():
		s.status = Status{Outcome: Ongoing}
	case s.inCheck:
		s.status = Status{Outcome: Checkmate, Winner: s.toMove.Opposite()}
	default:
		s.status = Status{Outcome: Stalemate}
	}
}

func (s GameState) Board() Board { return s.board }
func (s GameState) ToMove() Color { return s.toMove }
func (s GameState) Status() Status { return s.status }
func (s GameState) InCheck() bool { return s.inCheck }
func (s GameState) Movable() SquareSet { return s.movable }

func (s GameState) Selected() (Square, bool) {
	return s.selected, s.hasSelection
}

func (s GameState) SelectedMoves() SquareSet {
	return s.selectedMoves
}

func (s GameState) History() []Ply {
	return append([]Ply(nil), s.history...)
}

// LastMove returns the most recent accepted ply.
func (s GameState) LastMove() (Ply, bool) {
	if len(s.history) == 0 {
		return Ply{}, false
	}
	return s.history[len(s.history)-1], true
}

// QueryMoves returns the legal destinations of the piece on sq. It is empty when the square is
// empty, off the board, or holds a piece of the side not to move.
func (s GameState) QueryMoves(sq Square) SquareSet {
	piece, ok := s.board.At(sq)
	if !ok || piece.Color != s.toMove || !s.movable.Has(sq) {
		return 0
	}
	return LegalMoves(&s.board, sq)
}

// Select marks sq as the active piece and caches its legal moves. Selecting the active square
// again, or a square with nothing to move, clears the selection.
func (s GameState) Select(sq Square) GameState {
	if s.hasSelection && s.selected == sq {
		return s.clearSelection()
	}
	moves := s.QueryMoves(sq)
	if moves.Empty() {
		return s.clearSelection()
	}
	s.selected = sq
	s.hasSelection = true
	s.selectedMoves = moves
	return s
}

func (s GameState) clearSelection() GameState {
	s.selected = Square{}
	s.hasSelection = false
	s.selectedMoves = 0
	return s
}

// AttemptMove plays from-to if it is legal for the side to move and returns the next state.
// On rejection the returned state is s unchanged and the error is a *MoveError.
func (s GameState) AttemptMove(from, to Square) (GameState, error) {
	if err := s.validateMove(from, to); err != nil {
		return s, err
	}

	next := s
	piece, _ := next.board.At(from)
	captured, _ := next.board.Move(from, to)

	ply := Ply{Piece: piece, From: from, To: to}
	if !captured.IsZero() {
		ply.CapturedPiece = &captured
	}
	next.history = append(s.history[:len(s.history):len(s.history)], ply)

	next.toMove = s.toMove.Opposite()
	next = next.clearSelection()
	next.evaluateTurn()
	return next, nil
}

func (s GameState) validateMove(from, to Square) error {
	reject := func(reason RejectReason) error {
		return &MoveError{From: from, To: to, Reason: reason}
	}
	if !from.Valid() || !to.Valid() {
		return reject(ReasonInvalidSquare)
	}
	if s.status.Over() {
		return reject(ReasonGameOver)
	}
	piece, ok := s.board.At(from)
	if !ok {
		return reject(ReasonEmptySource)
	}
	if piece.Color != s.toMove {
		return reject(ReasonOutOfTurn)
	}
	if !s.QueryMoves(from).Has(to) {
		return reject(ReasonIllegalDestination)
	}
	return nil
}
