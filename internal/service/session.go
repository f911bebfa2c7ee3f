package service

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// Observer receives state pushes for a session. *websocket.Conn satisfies it.
type Observer interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// lockedObserver serializes writes to a connection that is written from more than one goroutine:
// session broadcasts and the connection's own read loop.
type lockedObserver struct {
	mu   sync.Mutex
	conn Observer
}

// Synchronized wraps conn so concurrent writers take turns. Wrapping twice is a no-op.
func Synchronized(conn Observer) Observer {
	if locked, ok := conn.(*lockedObserver); ok {
		return locked
	}
	return &lockedObserver{conn: conn}
}

func (o *lockedObserver) WriteJSON(v interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.conn.WriteJSON(v)
}

func (o *lockedObserver) WriteMessage(messageType int, data []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.conn.WriteMessage(messageType, data)
}

// Close does not wait for the write lock so it can unblock a stalled writer.
func (o *lockedObserver) Close() error {
	return o.conn.Close()
}

// The observers of a specific session
type sessionConnections struct {
	observers map[string]Observer // clientID -> connection
	mu        sync.Mutex
}

// Session is one independent game. Its state is never shared with another session.
type Session struct {
	ID        string
	Owner     string
	CreatedAt time.Time

	mu    sync.Mutex
	state model.GameState

	connections *sessionConnections
	logger      *zap.Logger
}

func newSession(id, owner string, state model.GameState, logger *zap.Logger) *Session {
	return &Session{
		ID:        id,
		Owner:     owner,
		CreatedAt: time.Now(),
		state:     state,
		connections: &sessionConnections{
			observers: make(map[string]Observer),
		},
		logger: logger.With(zap.String("game_id", id)),
	}
}

func (s *Session) View() GameView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view()
}

// view must be called with s.mu held.
func (s *Session) view() GameView {
	return newGameView(s.ID, s.CreatedAt, s.state)
}

func (s *Session) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Snapshot()
}

func (s *Session) QueryMoves(sq model.Square) model.SquareSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.QueryMoves(sq)
}

func (s *Session) canControl(clientID string) bool {
	return s.Owner == "" || s.Owner == clientID
}

// Select toggles the selected piece for the owning client and pushes the new view.
func (s *Session) Select(clientID string, sq model.Square) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canControl(clientID) {
		return GameView{}, ErrNotSessionOwner
	}
	s.state = s.state.Select(sq)
	view := s.view()
	s.broadcast(view)
	return view, nil
}

// Move plays from-to. A rejected move leaves the session untouched.
func (s *Session) Move(clientID string, from, to model.Square) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canControl(clientID) {
		return GameView{}, ErrNotSessionOwner
	}

	next, err := s.state.AttemptMove(from, to)
	if err != nil {
		s.logger.Info("move rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Error(err),
		)
		return GameView{}, err
	}
	s.state = next

	status := next.Status()
	s.logger.Info("move accepted",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("to_move", string(next.ToMove())),
		zap.Bool("check", next.InCheck()),
	)
	if status.Over() {
		s.logger.Info("game finished", zap.Stringer("status", status))
	}

	view := s.view()
	s.broadcast(view)
	return view, nil
}

// RegisterConnection adds an observer and sends it the current view. The session lock is held
// throughout so no move can slip in between the view and the registration.
func (s *Session) RegisterConnection(clientID string, conn Observer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if _, exists := s.connections.observers[clientID]; exists {
		// keep the healthy connection, reject the duplicate
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "Connection already exists"),
		)
		conn.Close()
		return ErrDuplicateObserver
	}
	conn = Synchronized(conn)
	s.connections.observers[clientID] = conn
	s.logger.Info("observer connected", zap.String("client_id", clientID))

	if err := s.send(clientID, conn, s.view()); err != nil {
		delete(s.connections.observers, clientID)
		return err
	}
	return nil
}

func (s *Session) UnregisterConnection(clientID string) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if _, exists := s.connections.observers[clientID]; exists {
		delete(s.connections.observers, clientID)
		s.logger.Info("observer disconnected", zap.String("client_id", clientID))
	}
}

func (s *Session) ObserverCount() int {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	return len(s.connections.observers)
}

// broadcast pushes view to every observer, dropping the ones that fail.
func (s *Session) broadcast(view GameView) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	for clientID, conn := range s.connections.observers {
		if err := s.send(clientID, conn, view); err != nil {
			delete(s.connections.observers, clientID)
		}
	}
}

// send must be called with connections.mu held.
func (s *Session) send(clientID string, conn Observer, view GameView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		s.logger.Error("failed to marshal game view", zap.Error(err))
		return fmt.Errorf("marshal game view: %w", err)
	}
	if err := conn.WriteJSON(ws.Message{Type: ws.MessageTypeGameState, Payload: payload}); err != nil {
		s.logger.Warn("failed to send state", zap.String("client_id", clientID), zap.Error(err))
		return fmt.Errorf("send state to %s: %w", clientID, err)
	}
	return nil
}
