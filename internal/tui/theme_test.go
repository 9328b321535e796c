package tui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_Validate(t *testing.T) {
	require.NoError(t, DefaultTheme.Validate())
}

func TestTheme_Validate_ControlCharacters(t *testing.T) {
	theme := DefaultTheme
	theme.Symbols.Disc = '\x07'
	require.Error(t, theme.Validate())

	theme = DefaultTheme
	theme.Symbols.Hint = '\x9b'
	require.Error(t, theme.Validate())
}

func TestTheme_JSON(t *testing.T) {
	data, err := json.Marshal(DefaultTheme)
	require.NoError(t, err)

	var theme Theme
	require.NoError(t, json.Unmarshal(data, &theme))
	require.Equal(t, DefaultTheme, theme)
}
