package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tdejong/reversi/internal/models"
	"github.com/tdejong/reversi/internal/othello"
	"github.com/tdejong/reversi/internal/services"
)

const (
	// GamesKey is the Redis hash holding all live game sessions.
	GamesKey = "games"

	// GamesTTL is how long the hash survives without any session activity.
	GamesTTL = 30 * time.Minute
)

// ErrGameNotFound is returned when a session id is unknown or expired.
var ErrGameNotFound = errors.New("game not found")

// GameRepository handles storage and play of live game sessions.
type GameRepository struct {
	services *services.Services
}

// NewGameRepository creates a new GameRepository from a fiber context.
func NewGameRepository(c *fiber.Ctx) *GameRepository {
	return &GameRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

// NewGameRepositoryFromServices creates a new GameRepository.
func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{
		services: services,
	}
}

// CreateGame starts a new session with the given board size and stores it.
func (repo *GameRepository) CreateGame(ctx context.Context, size int) (models.GameState, error) {
	game, err := othello.NewGame(size)
	if err != nil {
		return models.GameState{}, err
	}

	state := models.NewGameState(uuid.New().String(), game)

	if err := repo.saveState(ctx, state); err != nil {
		return models.GameState{}, err
	}

	return state, nil
}

// GetGame retrieves a session by id.
func (repo *GameRepository) GetGame(ctx context.Context, gameID string) (models.GameState, error) {
	redisConn := repo.services.Redis

	jsonData, err := redisConn.HGet(ctx, GamesKey, gameID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.GameState{}, ErrGameNotFound
		}
		return models.GameState{}, fmt.Errorf("error getting game: %w", err)
	}

	var state models.GameState
	if err := json.Unmarshal(jsonData, &state); err != nil {
		return models.GameState{}, fmt.Errorf("error unmarshaling game state: %w", err)
	}

	return state, nil
}

// PlayMove attempts a move on a session. An illegal attempt is not an
// error: the stored state is returned unchanged, so the caller sees the
// absence of a state change. When the move finishes the game, the
// result is archived.
func (repo *GameRepository) PlayMove(ctx context.Context, gameID string, row, col int) (models.GameState, error) {
	state, err := repo.GetGame(ctx, gameID)
	if err != nil {
		return models.GameState{}, err
	}

	game, err := state.Game()
	if err != nil {
		return models.GameState{}, err
	}

	if !game.TryMove(row, col) {
		return state, nil
	}

	state = models.NewGameState(state.ID, game)

	if err := repo.saveState(ctx, state); err != nil {
		return models.GameState{}, err
	}

	if game.Finished() {
		if err := repo.archiveResult(ctx, state); err != nil {
			// The session itself is fine, losing an archive row is not
			// worth failing the move.
			slog.Error("failed to archive game result", "game_id", state.ID, "error", err)
		}
	}

	return state, nil
}

// ResetGame reinitializes a session board with dark to move.
func (repo *GameRepository) ResetGame(ctx context.Context, gameID string) (models.GameState, error) {
	state, err := repo.GetGame(ctx, gameID)
	if err != nil {
		return models.GameState{}, err
	}

	game, err := state.Game()
	if err != nil {
		return models.GameState{}, err
	}

	game.Reset()
	state = models.NewGameState(state.ID, game)

	if err := repo.saveState(ctx, state); err != nil {
		return models.GameState{}, err
	}

	return state, nil
}

// saveState stores a session in the Redis hash and refreshes the TTL.
func (repo *GameRepository) saveState(ctx context.Context, state models.GameState) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling game state: %w", err)
	}

	redisConn := repo.services.Redis

	if err := redisConn.HSet(ctx, GamesKey, state.ID, jsonData).Err(); err != nil {
		return fmt.Errorf("error storing game: %w", err)
	}

	if err := redisConn.Expire(ctx, GamesKey, GamesTTL).Err(); err != nil {
		return fmt.Errorf("error setting TTL: %w", err)
	}

	return nil
}

// archiveResult writes a finished game to the Postgres archive.
func (repo *GameRepository) archiveResult(ctx context.Context, state models.GameState) error {
	result := state.Result()
	result.FinishedAt = time.Now()

	archive := NewArchiveRepositoryFromServices(repo.services)
	return archive.SaveResult(ctx, result)
}
