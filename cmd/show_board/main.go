package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tdejong/reversi/internal/othello"
)

func main() {
	boardString := flag.String("board", othello.NewBoardMust(8).String(), "the board to show")
	turnString := flag.String("turn", "dark", "the player to move")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	turn, err := othello.ParsePlayer(*turnString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	board.Print(turn)
}
