package ws

import (
	"encoding/json"

	"github.com/tdejong/reversi/internal/models"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

type NewGameRequest struct {
	Size int `json:"size"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type MoveRequest struct {
	GameID string `json:"game_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type ResetRequest struct {
	GameID string `json:"game_id"`
}

type GameStateResponse struct {
	State models.GameState `json:"state"`
}
