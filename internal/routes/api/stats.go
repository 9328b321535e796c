package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdejong/reversi/internal/repository"
)

// GetStats returns statistics about archived games.
func GetStats(c *fiber.Ctx) error {
	repo := repository.NewArchiveRepository(c)
	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
