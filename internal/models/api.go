package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/tdejong/reversi/internal/othello"
)

// OfferedBoardSizes are the sizes the API offers at session creation.
// The engine itself accepts any even size of at least othello.MinBoardSize.
var OfferedBoardSizes = []int{6, 8}

// CreateGamePayload represents the payload for creating a game session.
type CreateGamePayload struct {
	Size int `json:"size"`
}

// Validate checks the requested board size against the offered sizes.
func (p *CreateGamePayload) Validate() error {
	for _, size := range OfferedBoardSizes {
		if p.Size == size {
			return nil
		}
	}
	return fmt.Errorf("board size must be one of %v", OfferedBoardSizes)
}

// MovePayload represents a move attempt at a board coordinate.
type MovePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameResult is an archive row for a finished game.
type GameResult struct {
	ID         string    `json:"id"          db:"id"`
	BoardSize  int       `json:"board_size"  db:"board_size"`
	Winner     string    `json:"winner"      db:"winner"`
	DarkDiscs  int       `json:"dark_discs"  db:"dark_discs"`
	LightDiscs int       `json:"light_discs" db:"light_discs"`
	FinishedAt time.Time `json:"finished_at" db:"finished_at"`
}

// Validate checks that the result describes a finished game.
func (r *GameResult) Validate() error {
	if r.ID == "" {
		return errors.New("result has no game id")
	}

	winner, err := othello.ParseWinner(r.Winner)
	if err != nil {
		return err
	}
	if winner == othello.WinnerNone {
		return errors.New("result has no winner")
	}

	if r.DarkDiscs+r.LightDiscs > r.BoardSize*r.BoardSize {
		return errors.New("disc counts exceed board capacity")
	}

	return nil
}

// GameStats is one aggregated archive row.
type GameStats struct {
	BoardSize int    `json:"board_size" db:"board_size"`
	Winner    string `json:"winner"     db:"winner"`
	Count     int    `json:"count"      db:"count"`
}

// StatsResponse represents the response for archive statistics.
type StatsResponse struct {
	TotalGames int         `json:"total_games"`
	Stats      []GameStats `json:"stats"`
}
