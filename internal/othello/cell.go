package othello

import "fmt"

// Player identifies one of the two sides. Dark always moves first.
type Player int

const (
	Dark Player = iota
	Light
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Dark {
		return Light
	}
	return Dark
}

// Cell returns the cell content for a disc of this player.
func (p Player) Cell() Cell {
	if p == Dark {
		return CellDark
	}
	return CellLight
}

// String returns the lowercase name of the player.
func (p Player) String() string {
	if p == Dark {
		return "dark"
	}
	return "light"
}

// ParsePlayer parses a player name as produced by Player.String.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, fmt.Errorf("invalid player: %q", s)
	}
}

// Cell is the content of a single board square.
type Cell byte

const (
	CellEmpty Cell = '.'
	CellDark  Cell = 'x'
	CellLight Cell = 'o'
)
