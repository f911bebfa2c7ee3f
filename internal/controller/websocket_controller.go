package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

type WebSocketController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewWebSocketController(gameService *service.GameService, logger *zap.Logger) *WebSocketController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebSocketController{
		gameService: gameService,
		logger:      logger,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	clientID, _ := c.Locals(middleware.ClientIDLocal).(string)
	logger := wsc.logger.With(zap.String("game_id", gameID), zap.String("client_id", clientID))

	// Replies from this loop and session broadcasts share one write lock
	conn := service.Synchronized(c)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, clientID, conn); err != nil {
		logger.Warn("failed to register connection", zap.Error(err))
		wsc.sendError(conn, err)
		c.Close()
		return
	}

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.Debug("read loop finished", zap.Error(err))
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Debug("parse error", zap.Error(err))
			wsc.sendError(conn, fmt.Errorf("malformed message: %w", err))
			continue
		}

		if err := wsc.handleMessage(conn, gameID, clientID, msg); err != nil {
			logger.Debug("handle error", zap.String("type", string(msg.Type)), zap.Error(err))
			wsc.sendError(conn, err)
		}
	}

	// Clean up when connection closes
	wsc.gameService.UnregisterConnection(gameID, clientID)
}

// Handle different types of incoming messages. State changes reach this connection through the
// session broadcast; only query answers are written back directly.
func (wsc *WebSocketController) handleMessage(c service.Observer, gameID, clientID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.Move
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, clientID, move)
		return err

	case ws.MessageTypeSelect:
		var payload ws.SquarePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		_, err := wsc.gameService.SelectSquare(gameID, clientID, payload.Square)
		return err

	case ws.MessageTypeQuery:
		var payload ws.SquarePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		moves, err := wsc.gameService.QueryMoves(gameID, payload.Square)
		if err != nil {
			return err
		}
		body, err := json.Marshal(ws.MovesPayload{Square: payload.Square, Moves: moves})
		if err != nil {
			return err
		}
		return c.WriteJSON(ws.Message{Type: ws.MessageTypeMoves, Payload: body})

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(c service.Observer, cause error) {
	body, err := json.Marshal(ws.ErrorPayload{Error: cause.Error()})
	if err != nil {
		return
	}
	if err := c.WriteJSON(ws.Message{Type: ws.MessageTypeError, Payload: body}); err != nil {
		wsc.logger.Debug("failed to send error", zap.Error(err))
	}
}
