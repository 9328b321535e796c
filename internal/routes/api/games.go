package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tdejong/reversi/internal/models"
	"github.com/tdejong/reversi/internal/repository"
)

// CreateGame handles creation of a new game session.
func CreateGame(c *fiber.Ctx) error {
	var payload models.CreateGamePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewGameRepository(c)
	state, err := repo.CreateGame(c.Context(), payload.Size)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetGame returns the current state of a session.
func GetGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)
	state, err := repo.GetGame(c.Context(), c.Params("id"))
	if err != nil {
		return gameError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// PlayMove handles a move attempt. An illegal attempt returns the
// unchanged state, not an error.
func PlayMove(c *fiber.Ctx) error {
	var payload models.MovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	repo := repository.NewGameRepository(c)
	state, err := repo.PlayMove(c.Context(), c.Params("id"), payload.Row, payload.Col)
	if err != nil {
		return gameError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

// ResetGame reinitializes a session board.
func ResetGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)
	state, err := repo.ResetGame(c.Context(), c.Params("id"))
	if err != nil {
		return gameError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(state)
}

func gameError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Game not found",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
