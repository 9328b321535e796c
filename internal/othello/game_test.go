package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	require.Equal(t, Dark, game.Turn())
	require.False(t, game.Finished())
	require.Equal(t, WinnerNone, game.Winner())
	require.Len(t, game.LegalMoves(), 4)
}

func TestNewGame_InvalidSize(t *testing.T) {
	_, err := NewGame(5)
	require.Error(t, err)

	_, err = NewGame(2)
	require.Error(t, err)
}

func TestGame_TryMove(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	// Illegal attempt changes nothing
	before := game.Board()
	require.False(t, game.TryMove(0, 0))
	require.True(t, before.Equal(game.Board()))
	require.Equal(t, Dark, game.Turn())

	// Legal move passes the turn to light
	require.True(t, game.TryMove(2, 3))
	require.Equal(t, Light, game.Turn())
	require.Equal(t, Score{Dark: 4, Light: 1}, game.Board().CountDiscs())
}

func TestGame_TurnSkip(t *testing.T) {
	// After light plays (0,0), dark has no reply anywhere but light can
	// still move at (1,3): light must keep the turn without ending the
	// game.
	board, err := NewBoardFromString("4:" +
		".xo." +
		"...." +
		"...x" +
		"...o")
	require.NoError(t, err)

	game := NewGameWithBoard(board, Light)
	require.Equal(t, Light, game.Turn())

	require.True(t, game.TryMove(0, 0))

	require.False(t, game.Finished())
	require.Equal(t, Light, game.Turn())
	require.NotEmpty(t, game.LegalMoves())
}

func TestGame_GameEnd(t *testing.T) {
	// One empty cell that neither player can take: game over, dark wins
	// on count.
	board, err := NewBoardFromString("4:" +
		"xxxx" +
		"xxxx" +
		"xxxx" +
		"xxx.")
	require.NoError(t, err)

	game := NewGameWithBoard(board, Dark)

	require.True(t, game.Finished())
	require.Equal(t, WinnerDark, game.Winner())
	require.Empty(t, game.LegalMoves())

	// Moves on a finished game are rejected
	require.False(t, game.TryMove(3, 3))
}

func TestGame_GameEnd_Tie(t *testing.T) {
	board, err := NewBoardFromString("4:" +
		"xxxx" +
		"xxxx" +
		"oooo" +
		"oooo")
	require.NoError(t, err)

	game := NewGameWithBoard(board, Dark)

	require.True(t, game.Finished())
	require.Equal(t, WinnerTie, game.Winner())
}

func TestGame_GameEnd_LightWins(t *testing.T) {
	board, err := NewBoardFromString("4:" +
		"oooo" +
		"oooo" +
		"oooo" +
		"xxx.")
	require.NoError(t, err)

	game := NewGameWithBoard(board, Light)

	require.True(t, game.Finished())
	require.Equal(t, WinnerLight, game.Winner())
}

func TestGame_AutoPassOnCreation(t *testing.T) {
	// Dark to move but only light has a legal move: the turn passes.
	board, err := NewBoardFromString("4:" +
		"ox.." +
		"...." +
		"...." +
		"....")
	require.NoError(t, err)

	game := NewGameWithBoard(board, Dark)
	require.Equal(t, Light, game.Turn())
	require.False(t, game.Finished())
}

func TestGame_Reset(t *testing.T) {
	game, err := NewGame(6)
	require.NoError(t, err)

	require.True(t, game.TryMove(1, 2))
	game.Reset()

	require.Equal(t, Dark, game.Turn())
	require.False(t, game.Finished())
	require.Equal(t, WinnerNone, game.Winner())
	require.Equal(t, 6, game.Board().Size())
	require.Equal(t, Score{Dark: 2, Light: 2}, game.Board().CountDiscs())
}

func TestGame_FullGame(t *testing.T) {
	// Drive a 4×4 game to completion by always playing the first legal
	// move. The loop must terminate with a decided outcome.
	game, err := NewGame(4)
	require.NoError(t, err)

	for !game.Finished() {
		moves := game.LegalMoves()
		require.NotEmpty(t, moves)
		require.True(t, game.TryMove(moves[0].Row, moves[0].Col))
	}

	require.NotEqual(t, WinnerNone, game.Winner())

	score := game.Board().CountDiscs()
	switch game.Winner() {
	case WinnerDark:
		require.Greater(t, score.Dark, score.Light)
	case WinnerLight:
		require.Greater(t, score.Light, score.Dark)
	case WinnerTie:
		require.Equal(t, score.Dark, score.Light)
	}
}

func TestParsePlayer(t *testing.T) {
	player, err := ParsePlayer("dark")
	require.NoError(t, err)
	require.Equal(t, Dark, player)

	player, err = ParsePlayer("light")
	require.NoError(t, err)
	require.Equal(t, Light, player)

	_, err = ParsePlayer("blue")
	require.Error(t, err)
}

func TestParseWinner(t *testing.T) {
	for _, winner := range []Winner{WinnerNone, WinnerDark, WinnerLight, WinnerTie} {
		parsed, err := ParseWinner(winner.String())
		require.NoError(t, err)
		require.Equal(t, winner, parsed)
	}

	_, err := ParseWinner("draw")
	require.Error(t, err)
}
