package controller

import (
	"errors"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GameController struct {
	gameService *service.GameService
	logger      *zap.Logger
}

func NewGameController(gameService *service.GameService, logger *zap.Logger) *GameController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameController{gameService: gameService, logger: logger}
}

// MoveRequest names squares by label, e.g. {"from":"e2","to":"e4"}.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame(middleware.ClientID(c))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) ImportGame(c *fiber.Ctx) error {
	var snap model.Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid snapshot body",
		})
	}
	gameID, err := gc.gameService.ImportGame(middleware.ClientID(c), snap)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game imported",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	view, err := gc.gameService.GetGameView(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) GetSnapshot(c *fiber.Ctx) error {
	snap, err := gc.gameService.GetSnapshot(c.Params("gameId"))
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(snap)
}

func (gc *GameController) GetMoves(c *fiber.Ctx) error {
	sq, err := model.ParseSquare(c.Params("square"))
	if err != nil {
		return gc.fail(c, err)
	}
	moves, err := gc.gameService.QueryMoves(c.Params("gameId"), sq)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"square": sq,
		"moves":  moves,
	})
}

func (gc *GameController) SelectSquare(c *fiber.Ctx) error {
	sq, err := model.ParseSquare(c.Params("square"))
	if err != nil {
		return gc.fail(c, err)
	}
	view, err := gc.gameService.SelectSquare(c.Params("gameId"), middleware.ClientID(c), sq)
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}
	from, err := model.ParseSquare(req.From)
	if err != nil {
		return gc.fail(c, err)
	}
	to, err := model.ParseSquare(req.To)
	if err != nil {
		return gc.fail(c, err)
	}

	view, err := gc.gameService.HandleMove(c.Params("gameId"), middleware.ClientID(c), model.Move{From: from, To: to})
	if err != nil {
		return gc.fail(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId"), middleware.ClientID(c)); err != nil {
		return gc.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Health reports liveness with session and observer counts.
func (gc *GameController) Health(c *fiber.Ctx) error {
	stats := gc.gameService.Stats()
	return c.JSON(fiber.Map{
		"status":    "ok",
		"games":     stats.Games,
		"observers": stats.Observers,
	})
}

// fail maps service and engine errors onto HTTP statuses.
func (gc *GameController) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		gc.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameExists), errors.Is(err, service.ErrDuplicateObserver):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrNotSessionOwner):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrMoveRejected), errors.Is(err, model.ErrInvalidSnapshot):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidSquare):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
