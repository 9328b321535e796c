package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/tdejong/reversi/internal/othello"
)

// BoardUI is a tview control that draws a game board and lets both
// players place discs from the same keyboard.
type BoardUI struct {
	Box    *tview.Box
	game   *othello.Game
	theme  *Theme
	status *tview.TextView
	selRow int
	selCol int
	passed bool
}

// NewBoardUI creates the board control for a game.
func NewBoardUI(game *othello.Game, theme *Theme, status *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:    tview.NewBox(),
		game:   game,
		theme:  theme,
		status: status,
	}

	size := game.Board().Size()
	board.selRow = size/2 - 1
	board.selCol = size/2 - 1

	board.Box.SetDrawFunc(board.draw)
	board.Box.SetInputCapture(board.handleKey)
	board.refreshStatus()

	return board
}

// draw paints the board at 2 terminal cells per square for a roughly
// square appearance, with coordinate labels on the top and left edges.
func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	board := b.game.Board()
	size := board.Size()

	labelStyle := tcell.StyleDefault

	for col := range size {
		screen.SetContent(x+2+col*2+1, y, rune('a'+col), nil, labelStyle)
	}
	for row := range size {
		screen.SetContent(x, y+1+row, rune('1'+row), nil, labelStyle)
	}

	for row := range size {
		for col := range size {
			background := tcell.NewHexColor(b.theme.Colors.Board)
			if (row+col)%2 == 1 {
				background = tcell.NewHexColor(b.theme.Colors.BoardAlt)
			}
			if !b.game.Finished() && row == b.selRow && col == b.selCol {
				background = tcell.NewHexColor(b.theme.Colors.Cursor)
			}

			cell := board.Square(row, col)
			drawRune := ' '
			foreground := tcell.NewHexColor(b.theme.Colors.Light)

			switch {
			case cell == othello.CellDark:
				drawRune = b.theme.Symbols.Disc
				foreground = tcell.NewHexColor(b.theme.Colors.Dark)
			case cell == othello.CellLight:
				drawRune = b.theme.Symbols.Disc
				foreground = tcell.NewHexColor(b.theme.Colors.Light)
			case !b.game.Finished() && board.IsLegalMove(row, col, b.game.Turn()):
				drawRune = b.theme.Symbols.Hint
				foreground = tcell.NewHexColor(b.theme.Colors.Hint)
			}

			style := tcell.StyleDefault.Background(background).Foreground(foreground)
			screen.SetContent(x+2+col*2, y+1+row, drawRune, nil, style)
			screen.SetContent(x+2+col*2+1, y+1+row, ' ', nil, style)
		}
	}

	return x, y, 2 + size*2, 1 + size
}

// handleKey moves the cursor, places discs and resets the game.
func (b *BoardUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.moveSelection(-1, 0)
		return nil
	case tcell.KeyDown:
		b.moveSelection(1, 0)
		return nil
	case tcell.KeyLeft:
		b.moveSelection(0, -1)
		return nil
	case tcell.KeyRight:
		b.moveSelection(0, 1)
		return nil
	case tcell.KeyEnter:
		b.placeDisc()
		return nil
	}

	if event.Key() == tcell.KeyRune {
		switch event.Rune() {
		case 'k':
			b.moveSelection(-1, 0)
			return nil
		case 'j':
			b.moveSelection(1, 0)
			return nil
		case 'h':
			b.moveSelection(0, -1)
			return nil
		case 'l':
			b.moveSelection(0, 1)
			return nil
		case ' ':
			b.placeDisc()
			return nil
		case 'r':
			b.game.Reset()
			b.passed = false
			b.refreshStatus()
			return nil
		}
	}

	return event
}

func (b *BoardUI) moveSelection(dRow, dCol int) {
	size := b.game.Board().Size()

	if b.selRow+dRow < 0 || b.selRow+dRow >= size {
		return
	}
	if b.selCol+dCol < 0 || b.selCol+dCol >= size {
		return
	}

	b.selRow += dRow
	b.selCol += dCol
}

// placeDisc attempts a move at the cursor. Illegal attempts do nothing,
// visible only by the absence of a state change.
func (b *BoardUI) placeDisc() {
	if b.game.Finished() {
		return
	}

	mover := b.game.Turn()
	if !b.game.TryMove(b.selRow, b.selCol) {
		return
	}

	// The turn stays with the mover only when the opponent has to pass.
	b.passed = !b.game.Finished() && b.game.Turn() == mover
	b.refreshStatus()
}

func (b *BoardUI) refreshStatus() {
	if b.status == nil {
		return
	}

	score := b.game.Board().CountDiscs()
	scoreLine := fmt.Sprintf("dark %d - %d light", score.Dark, score.Light)

	if b.game.Finished() {
		switch b.game.Winner() {
		case othello.WinnerTie:
			b.status.SetText(fmt.Sprintf("Game over: tie, %s\n'r' restarts, 'q' quits", scoreLine))
		default:
			b.status.SetText(fmt.Sprintf("Game over: %s wins, %s\n'r' restarts, 'q' quits", b.game.Winner(), scoreLine))
		}
		return
	}

	turnLine := fmt.Sprintf("%s to move, %s", b.game.Turn(), scoreLine)
	if b.passed {
		turnLine = fmt.Sprintf("%s has no move and passes. %s", b.game.Turn().Opponent(), turnLine)
	}
	b.status.SetText(turnLine)
}
