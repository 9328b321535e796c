package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tdejong/reversi/internal/othello"
)

func TestNewGameState(t *testing.T) {
	game, err := othello.NewGame(8)
	require.NoError(t, err)

	state := NewGameState("some-id", game)

	require.Equal(t, "some-id", state.ID)
	require.Equal(t, 8, state.Size)
	require.Equal(t, "dark", state.Turn)
	require.False(t, state.Finished)
	require.Equal(t, "none", state.Winner)
	require.Equal(t, othello.Score{Dark: 2, Light: 2}, state.Score)
	require.Len(t, state.LegalMoves, 4)
}

func TestGameState_Game_RoundTrip(t *testing.T) {
	game, err := othello.NewGame(6)
	require.NoError(t, err)
	require.True(t, game.TryMove(1, 2))

	state := NewGameState("some-id", game)

	restored, err := state.Game()
	require.NoError(t, err)

	require.True(t, game.Board().Equal(restored.Board()))
	require.Equal(t, game.Turn(), restored.Turn())
	require.Equal(t, game.Finished(), restored.Finished())
	require.Equal(t, game.Winner(), restored.Winner())
}

func TestGameState_Game_Invalid(t *testing.T) {
	_, err := GameState{Board: "nonsense", Turn: "dark"}.Game()
	require.Error(t, err)

	_, err = GameState{Board: othello.NewBoardMust(4).String(), Turn: "blue"}.Game()
	require.Error(t, err)
}

func TestGameState_JSON(t *testing.T) {
	game, err := othello.NewGame(8)
	require.NoError(t, err)

	state := NewGameState("some-id", game)

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded GameState
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, state, decoded)
}

func TestGameState_Result(t *testing.T) {
	board, err := othello.NewBoardFromString("4:" +
		"xxxx" +
		"xxxx" +
		"xxxx" +
		"xxx.")
	require.NoError(t, err)

	game := othello.NewGameWithBoard(board, othello.Dark)
	require.True(t, game.Finished())

	state := NewGameState("some-id", game)
	result := state.Result()

	require.Equal(t, "some-id", result.ID)
	require.Equal(t, 4, result.BoardSize)
	require.Equal(t, "dark", result.Winner)
	require.Equal(t, 15, result.DarkDiscs)
	require.Equal(t, 0, result.LightDiscs)
}

func TestCreateGamePayload_Validate(t *testing.T) {
	for _, size := range OfferedBoardSizes {
		payload := CreateGamePayload{Size: size}
		require.NoError(t, payload.Validate())
	}

	for _, size := range []int{0, 4, 5, 10} {
		payload := CreateGamePayload{Size: size}
		require.Error(t, payload.Validate(), "size %d should be rejected", size)
	}
}

func TestGameResult_Validate(t *testing.T) {
	result := GameResult{
		ID:         "some-id",
		BoardSize:  8,
		Winner:     "dark",
		DarkDiscs:  40,
		LightDiscs: 24,
	}
	require.NoError(t, result.Validate())

	noID := result
	noID.ID = ""
	require.Error(t, noID.Validate())

	noWinner := result
	noWinner.Winner = "none"
	require.Error(t, noWinner.Validate())

	badWinner := result
	badWinner.Winner = "blue"
	require.Error(t, badWinner.Validate())

	tooMany := result
	tooMany.DarkDiscs = 65
	require.Error(t, tooMany.Validate())
}
