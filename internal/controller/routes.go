package controller

import (
	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes mounts the REST API under /api, the state stream under /ws and an unauthenticated
// /health check.
func SetupRoutes(app *fiber.App, gc *GameController, wsc *WebSocketController, wsConfig websocket.Config) {
	app.Get("/health", gc.Health)

	app.Get("/ws/game/:gameId",
		middleware.EnsureClientID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsc.HandleConnection, wsConfig),
	)

	api := app.Group("/api", middleware.EnsureClientID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/", gc.CreateGame)
	gameRoutes.Post("/import", gc.ImportGame)
	gameRoutes.Get("/:gameId", gc.GetGameState)
	gameRoutes.Delete("/:gameId", gc.DeleteGame)
	gameRoutes.Get("/:gameId/snapshot", gc.GetSnapshot)
	gameRoutes.Get("/:gameId/moves/:square", gc.GetMoves)
	gameRoutes.Post("/:gameId/select/:square", gc.SelectSquare)
	gameRoutes.Post("/:gameId/move", gc.MakeMove)
}
