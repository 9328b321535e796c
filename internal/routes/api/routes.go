package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdejong/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/move", PlayMove)
	apiGroup.Post("/games/:id/reset", ResetGame)

	apiGroup.Get("/stats", middleware.AuthOrToken(), GetStats)
}
