package models

import (
	"fmt"

	"github.com/tdejong/reversi/internal/othello"
)

// GameState is the serializable view of a game session. It is what the
// API returns, what the websocket pushes and what the session store
// persists.
type GameState struct {
	ID         string         `json:"id"`
	Size       int            `json:"size"`
	Board      string         `json:"board"`
	Turn       string         `json:"turn"`
	Finished   bool           `json:"finished"`
	Winner     string         `json:"winner"`
	Score      othello.Score  `json:"score"`
	LegalMoves []othello.Move `json:"legal_moves"`
}

// NewGameState builds the state view for a game session.
func NewGameState(id string, game *othello.Game) GameState {
	board := game.Board()

	return GameState{
		ID:         id,
		Size:       board.Size(),
		Board:      board.String(),
		Turn:       game.Turn().String(),
		Finished:   game.Finished(),
		Winner:     game.Winner().String(),
		Score:      board.CountDiscs(),
		LegalMoves: game.LegalMoves(),
	}
}

// Game restores the session controller from the state view. The
// finished flag and winner are derived from the board again, so a state
// that was valid when stored stays consistent.
func (s GameState) Game() (*othello.Game, error) {
	board, err := othello.NewBoardFromString(s.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid board in game state: %w", err)
	}

	turn, err := othello.ParsePlayer(s.Turn)
	if err != nil {
		return nil, fmt.Errorf("invalid turn in game state: %w", err)
	}

	return othello.NewGameWithBoard(board, turn), nil
}

// Result converts a finished game state into an archive row. The
// FinishedAt timestamp is left for the caller to set.
func (s GameState) Result() GameResult {
	return GameResult{
		ID:         s.ID,
		BoardSize:  s.Size,
		Winner:     s.Winner,
		DarkDiscs:  s.Score.Dark,
		LightDiscs: s.Score.Light,
	}
}
