package service

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"go.uber.org/zap"
)

// GameService is the surface the controllers call into.
type GameService struct {
	gameManager *GameManager
	logger      *zap.Logger
}

func NewGameService(gameManager *GameManager, logger *zap.Logger) *GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameService{
		gameManager: gameManager,
		logger:      logger,
	}
}

func (gs *GameService) CreateGame(clientID string) (string, error) {
	session, err := gs.gameManager.CreateGame(clientID)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return session.ID, nil
}

func (gs *GameService) ImportGame(clientID string, snap model.Snapshot) (string, error) {
	session, err := gs.gameManager.ImportGame(clientID, snap)
	if err != nil {
		return "", fmt.Errorf("failed to import game: %w", err)
	}
	return session.ID, nil
}

func (gs *GameService) GetGameView(gameID string) (GameView, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return GameView{}, err
	}
	return session.View(), nil
}

func (gs *GameService) GetSnapshot(gameID string) (model.Snapshot, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (gs *GameService) QueryMoves(gameID string, sq model.Square) (model.SquareSet, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return 0, err
	}
	return session.QueryMoves(sq), nil
}

func (gs *GameService) SelectSquare(gameID, clientID string, sq model.Square) (GameView, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return GameView{}, err
	}
	return session.Select(clientID, sq)
}

func (gs *GameService) HandleMove(gameID, clientID string, move model.Move) (GameView, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return GameView{}, err
	}
	return session.Move(clientID, move.From, move.To)
}

func (gs *GameService) Stats() Stats {
	return gs.gameManager.Stats()
}

func (gs *GameService) DeleteGame(gameID, clientID string) error {
	return gs.gameManager.RemoveGame(gameID, clientID)
}

func (gs *GameService) RegisterConnection(gameID, clientID string, conn Observer) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, clientID string) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		gs.logger.Debug("unregister on unknown game", zap.String("game_id", gameID))
		return
	}
	session.UnregisterConnection(clientID)
}
