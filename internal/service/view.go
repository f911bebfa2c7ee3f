package service

import (
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// GameView is what a presentation client renders: the position, the verdict and the caches
// it needs to enable or disable squares.
type GameView struct {
	GameID         string          `json:"gameId"`
	CreatedAt      time.Time       `json:"createdAt"`
	Board          model.Snapshot  `json:"board"`
	Status         model.Status    `json:"status"`
	IsCheck        bool            `json:"isCheck"`
	Movable        model.SquareSet `json:"movable"`
	SelectedSquare *model.Square   `json:"selectedSquare"`
	LegalMoves     model.SquareSet `json:"legalMoves"`
	LastMove       *model.Ply      `json:"lastMove"`
	MoveHistory    []model.Ply     `json:"moveHistory"`
}

func newGameView(gameID string, createdAt time.Time, state model.GameState) GameView {
	view := GameView{
		GameID:      gameID,
		CreatedAt:   createdAt,
		Board:       state.Snapshot(),
		Status:      state.Status(),
		IsCheck:     state.InCheck(),
		Movable:     state.Movable(),
		LegalMoves:  state.SelectedMoves(),
		MoveHistory: state.History(),
	}
	if selected, ok := state.Selected(); ok {
		view.SelectedSquare = &selected
	}
	if last, ok := state.LastMove(); ok {
		view.LastMove = &last
	}
	return view
}
