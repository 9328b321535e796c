// Package tui implements a terminal interface for local two-player games.
package tui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"
)

var themeFile = "reversi/theme.json"

type InvalidTheme struct {
	err string
}

func (e *InvalidTheme) Error() string {
	return fmt.Sprintf("Theme error: %s", e.err)
}

// ThemeColors holds hex colors for the board elements.
type ThemeColors struct {
	Board    int32 `json:"board"`
	BoardAlt int32 `json:"board_alt"`
	Dark     int32 `json:"dark"`
	Light    int32 `json:"light"`
	Cursor   int32 `json:"cursor"`
	Hint     int32 `json:"hint"`
}

// ThemeSymbols holds the runes used to draw discs and hints.
type ThemeSymbols struct {
	Disc rune `json:"disc"`
	Hint rune `json:"hint"`
}

// Theme is the terminal client appearance, loaded from the xdg config dir.
type Theme struct {
	Colors  ThemeColors  `json:"colors"`
	Symbols ThemeSymbols `json:"symbols"`
}

var DefaultTheme = Theme{
	Colors: ThemeColors{
		Board:    0x0d7a36,
		BoardAlt: 0x0a6b2e,
		Dark:     0x111111,
		Light:    0xfafafa,
		Cursor:   0xd9a521,
		Hint:     0x9adbb2,
	},
	Symbols: ThemeSymbols{
		Disc: '●',
		Hint: '·',
	},
}

// LoadTheme reads the theme file from the xdg config dir, falling back
// to the default theme when the file does not exist.
func LoadTheme() (*Theme, error) {
	theme := DefaultTheme
	absPath, err := xdg.SearchConfigFile(themeFile)
	if err == nil {
		readThemeFile(absPath, &theme)
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return &theme, nil
}

func (t *Theme) Validate() error {
	for _, r := range []rune{t.Symbols.Disc, t.Symbols.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidTheme{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

// Save writes the theme to the xdg config dir.
func (t *Theme) Save() error {
	absPath, err := xdg.ConfigFile(themeFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(absPath, data, 0o644)
}

func readThemeFile(path string, theme *Theme) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	// A broken theme file falls back to the defaults already in theme.
	_ = json.Unmarshal(data, theme)
}
