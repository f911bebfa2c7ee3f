package ws

import (
	"encoding/json"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeSelect    MessageType = "select"
	MessageTypeQuery     MessageType = "query"
	MessageTypeMoves     MessageType = "moves"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SquarePayload carries the square of a select or query message.
type SquarePayload struct {
	Square model.Square `json:"square"`
}

// MovesPayload answers a query message.
type MovesPayload struct {
	Square model.Square    `json:"square"`
	Moves  model.SquareSet `json:"moves"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
