package othello

import "fmt"

// Winner is the outcome of a finished game.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerDark
	WinnerLight
	WinnerTie
)

// String returns the lowercase name of the winner.
func (w Winner) String() string {
	switch w {
	case WinnerDark:
		return "dark"
	case WinnerLight:
		return "light"
	case WinnerTie:
		return "tie"
	default:
		return "none"
	}
}

// ParseWinner parses a winner name as produced by Winner.String.
func ParseWinner(s string) (Winner, error) {
	switch s {
	case "none":
		return WinnerNone, nil
	case "dark":
		return WinnerDark, nil
	case "light":
		return WinnerLight, nil
	case "tie":
		return WinnerTie, nil
	default:
		return WinnerNone, fmt.Errorf("invalid winner: %q", s)
	}
}

// Game holds the mutable state of a single session: the board, the
// player to move and the outcome once neither player can move. A Game
// must not be shared between goroutines without external locking; the
// board values it hands out are safe to share.
type Game struct {
	board    Board
	turn     Player
	finished bool
	winner   Winner
}

// NewGame creates a game with the starting position and dark to move.
func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return NewGameWithBoard(board, Dark), nil
}

// NewGameWithBoard creates a game from an existing board with the given
// player to move. If that player has no legal move the turn passes
// automatically; if neither player can move the game is finished.
func NewGameWithBoard(board Board, turn Player) *Game {
	game := &Game{
		board: board,
		turn:  turn,
	}
	game.settleTurn()
	return game
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the player to move. Meaningless once the game is finished.
func (g *Game) Turn() Player {
	return g.turn
}

// Finished returns whether neither player has a legal move left.
func (g *Game) Finished() bool {
	return g.finished
}

// Winner returns the outcome, or WinnerNone while the game is running.
func (g *Game) Winner() Winner {
	return g.winner
}

// LegalMoves returns the legal moves for the player to move, in
// row-major order. It is empty once the game is finished.
func (g *Game) LegalMoves() []Move {
	if g.finished {
		return []Move{}
	}
	return g.board.LegalMoves(g.turn)
}

// TryMove attempts a move for the player to move. Illegal attempts
// leave the game untouched and return false. After a legal move the
// turn goes to the opponent unless they have no legal move, in which
// case the mover plays again; if neither side can move the game ends
// and the winner is decided by disc count.
func (g *Game) TryMove(row, col int) bool {
	if g.finished {
		return false
	}

	if !g.board.IsLegalMove(row, col, g.turn) {
		return false
	}

	g.board = g.board.DoMove(row, col, g.turn)
	g.turn = g.turn.Opponent()
	g.settleTurn()

	return true
}

// settleTurn passes the turn back if the player to move has no legal
// move, and finishes the game when neither player has one.
func (g *Game) settleTurn() {
	if g.board.HasMoves(g.turn) {
		return
	}

	opponent := g.turn.Opponent()
	if g.board.HasMoves(opponent) {
		g.turn = opponent
		return
	}

	g.finished = true
	g.winner = g.decideWinner()
}

// decideWinner compares disc counts on the final board.
func (g *Game) decideWinner() Winner {
	score := g.board.CountDiscs()

	switch {
	case score.Dark > score.Light:
		return WinnerDark
	case score.Light > score.Dark:
		return WinnerLight
	default:
		return WinnerTie
	}
}

// Reset reinitializes the board at the same size with dark to move,
// clearing any finished state.
func (g *Game) Reset() {
	g.board = NewBoardMust(g.board.Size())
	g.turn = Dark
	g.finished = false
	g.winner = WinnerNone
}
