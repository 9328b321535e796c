package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/tdejong/reversi/internal/models"
	"github.com/tdejong/reversi/internal/repository"
	"github.com/tdejong/reversi/internal/services"
)

const (
	requestTimeout = 2 * time.Second
)

type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "new_game_request":
		return h.handleNewGameRequest(req)
	case "state_request":
		return h.handleStateRequest(req)
	case "move_request":
		return h.handleMoveRequest(req)
	case "reset_request":
		return h.handleResetRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) stateResponse(id int, state models.GameState) *Outgoing {
	return &Outgoing{
		ID: id,
		Data: GameStateResponse{
			State: state,
		},
	}
}

func (h *Handler) handleNewGameRequest(req *Incoming) (*Outgoing, error) {
	var reqData NewGameRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws new game request unmarshal error: %w", err)
	}

	payload := models.CreateGamePayload{Size: reqData.Size}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	state, err := repo.CreateGame(ctx, reqData.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return h.stateResponse(req.ID, state), nil
}

func (h *Handler) handleStateRequest(req *Incoming) (*Outgoing, error) {
	var reqData StateRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws state request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	state, err := repo.GetGame(ctx, reqData.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return h.stateResponse(req.ID, state), nil
}

func (h *Handler) handleMoveRequest(req *Incoming) (*Outgoing, error) {
	var reqData MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	// An illegal move attempt is not an error: the state comes back
	// unchanged and the client sees no difference.
	state, err := repo.PlayMove(ctx, reqData.GameID, reqData.Row, reqData.Col)
	if err != nil {
		return nil, fmt.Errorf("failed to play move: %w", err)
	}

	return h.stateResponse(req.ID, state), nil
}

func (h *Handler) handleResetRequest(req *Incoming) (*Outgoing, error) {
	var reqData ResetRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws reset request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	state, err := repo.ResetGame(ctx, reqData.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return h.stateResponse(req.ID, state), nil
}
