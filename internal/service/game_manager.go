// service/game_manager.go
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameExists        = errors.New("game already exists")
	ErrNotSessionOwner   = errors.New("client does not own this game")
	ErrDuplicateObserver = errors.New("client already observes this game")
)

// GameManager owns every live session. Sessions never share state.
type GameManager struct {
	games  map[string]*Session
	mu     sync.RWMutex
	logger *zap.Logger
	newID  func() string
}

func NewGameManager(logger *zap.Logger) *GameManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameManager{
		games:  make(map[string]*Session),
		logger: logger,
		newID: func() string {
			return uuid.New().String()
		},
	}
}

// CreateGame starts a session from the standard position.
func (gm *GameManager) CreateGame(ownerID string) (*Session, error) {
	return gm.addGame(gm.newID(), ownerID, model.NewGame())
}

// ImportGame starts a session from a persisted snapshot.
func (gm *GameManager) ImportGame(ownerID string, snap model.Snapshot) (*Session, error) {
	state, err := model.FromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	return gm.addGame(gm.newID(), ownerID, state)
}

func (gm *GameManager) addGame(gameID, ownerID string, state model.GameState) (*Session, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}

	session := newSession(gameID, ownerID, state, gm.logger)
	gm.games[gameID] = session
	gm.logger.Info("game created",
		zap.String("game_id", gameID),
		zap.String("owner", ownerID),
		zap.String("to_move", string(state.ToMove())),
		zap.Stringer("status", state.Status()),
	)
	return session, nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return session, nil
}

func (gm *GameManager) RemoveGame(gameID, clientID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	session, exists := gm.games[gameID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if !session.canControl(clientID) {
		return ErrNotSessionOwner
	}
	delete(gm.games, gameID)
	gm.logger.Info("game removed", zap.String("game_id", gameID))
	return nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

// Stats counts live sessions and the websocket observers attached to them.
type Stats struct {
	Games     int `json:"games"`
	Observers int `json:"observers"`
}

func (gm *GameManager) Stats() Stats {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	stats := Stats{Games: len(gm.games)}
	for _, session := range gm.games {
		stats.Observers += session.ObserverCount()
	}
	return stats
}
