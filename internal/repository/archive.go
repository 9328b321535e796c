package repository

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tdejong/reversi/internal/models"
	"github.com/tdejong/reversi/internal/services"
)

// ArchiveRepository handles database operations for finished games.
type ArchiveRepository struct {
	services *services.Services
}

// NewArchiveRepository creates a new ArchiveRepository from a fiber context.
func NewArchiveRepository(c *fiber.Ctx) *ArchiveRepository {
	return &ArchiveRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

// NewArchiveRepositoryFromServices creates a new ArchiveRepository.
func NewArchiveRepositoryFromServices(services *services.Services) *ArchiveRepository {
	return &ArchiveRepository{
		services: services,
	}
}

// SaveResult inserts a finished game into the archive. Replays of the
// same game id are ignored.
func (repo *ArchiveRepository) SaveResult(ctx context.Context, result models.GameResult) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("invalid game result: %w", err)
	}

	pgConn := repo.services.Postgres

	query := `
		INSERT INTO game_results (id, board_size, winner, dark_discs, light_discs, finished_at)
		VALUES (:id, :board_size, :winner, :dark_discs, :light_discs, :finished_at)
		ON CONFLICT (id) DO NOTHING;
	`

	if _, err := pgConn.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("error saving game result: %w", err)
	}

	return nil
}

// GetStats aggregates archived games per board size and winner.
func (repo *ArchiveRepository) GetStats(ctx context.Context) (models.StatsResponse, error) {
	pgConn := repo.services.Postgres

	query := `
		SELECT board_size, winner, COUNT(*) as count
		FROM game_results
		GROUP BY board_size, winner
		ORDER BY board_size, winner;
	`

	stats := make([]models.GameStats, 0)
	if err := pgConn.SelectContext(ctx, &stats, query); err != nil {
		return models.StatsResponse{}, fmt.Errorf("error getting game stats: %w", err)
	}

	total := 0
	for _, row := range stats {
		total += row.Count
	}

	return models.StatsResponse{
		TotalGames: total,
		Stats:      stats,
	}, nil
}
