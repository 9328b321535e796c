// Command play runs a local two-player game in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/tdejong/reversi/internal/othello"
	"github.com/tdejong/reversi/internal/tui"
)

var flagBoardSize = flag.Int("size", 8, "Board size (6 or 8)")

func main() {
	flag.Parse()

	if *flagBoardSize != 6 && *flagBoardSize != 8 {
		fmt.Println("Board size must be 6 or 8")
		os.Exit(1)
	}

	theme, err := tui.LoadTheme()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	game, err := othello.NewGame(*flagBoardSize)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	app := tview.NewApplication()

	status := tview.NewTextView()
	status.SetBorder(true)
	status.SetBorderPadding(0, 0, 1, 1)
	status.SetTitle(" Status ")
	status.SetTitleAlign(tview.AlignLeft)

	board := tui.NewBoardUI(game, theme, status)
	board.Box.SetBorder(true)
	board.Box.SetTitle(" reversi ")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.Box, 0, 3, true).
		AddItem(status, 4, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(layout, true).SetFocus(board.Box).Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
