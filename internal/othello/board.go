package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// MinBoardSize is the smallest playable board.
const MinBoardSize = 4

// Move is a board coordinate, 0-based, row-major.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Score holds the disc count per player.
type Score struct {
	Dark  int `json:"dark"`
	Light int `json:"light"`
}

// directions are the 8 orthogonal and diagonal neighbor offsets as
// (row delta, col delta) pairs.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an N×N Othello board. All move operations are copy-on-write:
// they never modify the receiver and return a fresh Board instead, so a
// Board value can be shared freely without locking.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard creates a board of the given size with the standard Othello
// starting position. The size must be even and at least MinBoardSize.
func NewBoard(size int) (Board, error) {
	if size < MinBoardSize {
		return Board{}, fmt.Errorf("board size must be at least %d, got %d", MinBoardSize, size)
	}
	if size%2 != 0 {
		return Board{}, fmt.Errorf("board size must be even, got %d", size)
	}

	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = CellEmpty
	}

	mid := size / 2
	cells[(mid-1)*size+(mid-1)] = CellLight
	cells[(mid-1)*size+mid] = CellDark
	cells[mid*size+(mid-1)] = CellDark
	cells[mid*size+mid] = CellLight

	return Board{size: size, cells: cells}, nil
}

// NewBoardMust creates a board like NewBoard and panics if the size is invalid.
func NewBoardMust(size int) Board {
	b, err := NewBoard(size)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardFromString creates a board from a string representation as
// produced by Board.String.
func NewBoardFromString(s string) (Board, error) {
	sizeString, cellString, found := strings.Cut(s, ":")
	if !found {
		return Board{}, fmt.Errorf("board string must look like \"<size>:<cells>\", got %q", s)
	}

	size, err := strconv.Atoi(sizeString)
	if err != nil {
		return Board{}, fmt.Errorf("invalid board size: %w", err)
	}

	if size < MinBoardSize || size%2 != 0 {
		return Board{}, fmt.Errorf("board size must be even and at least %d, got %d", MinBoardSize, size)
	}

	if len(cellString) != size*size {
		return Board{}, fmt.Errorf("board string must have %d cells, got %d", size*size, len(cellString))
	}

	cells := make([]Cell, size*size)
	for i := range len(cellString) {
		cell := Cell(cellString[i])
		switch cell {
		case CellEmpty, CellDark, CellLight:
			cells[i] = cell
		default:
			return Board{}, fmt.Errorf("invalid cell %q at index %d", cellString[i], i)
		}
	}

	return Board{size: size, cells: cells}, nil
}

// Size returns the side length of the board.
func (b Board) Size() int {
	return b.size
}

// Square returns the cell at the given coordinate. Out-of-range
// coordinates return CellEmpty.
func (b Board) Square(row, col int) Cell {
	if !b.inBounds(row, col) {
		return CellEmpty
	}
	return b.cells[b.index(row, col)]
}

func (b Board) index(row, col int) int {
	return row*b.size + col
}

func (b Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// flippedInDirection returns the cell indices of the contiguous run of
// opponent discs that would be captured in one direction if the player
// played at (row, col). It returns nil when the run does not terminate
// in one of the player's own discs.
func (b Board) flippedInDirection(row, col int, player Player, dRow, dCol int) []int {
	opponent := player.Opponent().Cell()

	var run []int
	r, c := row+dRow, col+dCol
	for b.inBounds(r, c) && b.cells[b.index(r, c)] == opponent {
		run = append(run, b.index(r, c))
		r += dRow
		c += dCol
	}

	if len(run) == 0 || !b.inBounds(r, c) || b.cells[b.index(r, c)] != player.Cell() {
		return nil
	}

	return run
}

// IsLegalMove checks whether the player may place a disc at (row, col).
// Out-of-range coordinates and occupied squares are never legal.
func (b Board) IsLegalMove(row, col int, player Player) bool {
	if !b.inBounds(row, col) || b.cells[b.index(row, col)] != CellEmpty {
		return false
	}

	for _, dir := range directions {
		if len(b.flippedInDirection(row, col, player, dir[0], dir[1])) > 0 {
			return true
		}
	}

	return false
}

// DoMove places a disc for the player at (row, col) and flips all
// captured discs, returning the resulting board. If the move is illegal
// the receiver is returned unchanged.
func (b Board) DoMove(row, col int, player Player) Board {
	if !b.inBounds(row, col) || b.cells[b.index(row, col)] != CellEmpty {
		return b
	}

	var flipped []int
	for _, dir := range directions {
		flipped = append(flipped, b.flippedInDirection(row, col, player, dir[0], dir[1])...)
	}

	if len(flipped) == 0 {
		return b
	}

	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)

	cells[b.index(row, col)] = player.Cell()
	for _, i := range flipped {
		cells[i] = player.Cell()
	}

	return Board{size: b.size, cells: cells}
}

// LegalMoves returns all legal moves for the player in row-major order.
func (b Board) LegalMoves(player Player) []Move {
	moves := make([]Move, 0)
	for row := range b.size {
		for col := range b.size {
			if b.IsLegalMove(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasMoves checks whether the player has at least one legal move.
func (b Board) HasMoves(player Player) bool {
	for row := range b.size {
		for col := range b.size {
			if b.IsLegalMove(row, col, player) {
				return true
			}
		}
	}
	return false
}

// CountDiscs counts the discs per player. Empty cells are not counted,
// so Dark + Light plus the number of empty cells always equals Size².
func (b Board) CountDiscs() Score {
	var score Score
	for _, cell := range b.cells {
		switch cell {
		case CellDark:
			score.Dark++
		case CellLight:
			score.Light++
		}
	}
	return score
}

// CountEmpty returns the number of empty cells.
func (b Board) CountEmpty() int {
	empty := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			empty++
		}
	}
	return empty
}

// Equal checks if two boards have the same size and cells.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String returns the string representation of the board, which
// round-trips through NewBoardFromString.
func (b Board) String() string {
	return fmt.Sprintf("%d:%s", b.size, string(b.cells))
}

// ASCIIArtLines returns the ascii art lines for the board. Legal moves
// for the given player are marked with a dot.
func (b Board) ASCIIArtLines(player Player) []string {
	lines := make([]string, b.size+2)

	header := "+"
	for col := range b.size {
		header += fmt.Sprintf("-%c", rune('a'+col))
	}
	lines[0] = header + "-+"

	for row := range b.size {
		line := fmt.Sprintf("%d ", row+1)

		for col := range b.size {
			switch {
			case b.cells[b.index(row, col)] == CellLight:
				line += "○ "
			case b.cells[b.index(row, col)] == CellDark:
				line += "● "
			case b.IsLegalMove(row, col, player):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[b.size+1] = "+" + strings.Repeat("-", 2*b.size+1) + "+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print(player Player) {
	for _, line := range b.ASCIIArtLines(player) {
		fmt.Println(line)
	}
}
