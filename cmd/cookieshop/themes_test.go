package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemesCommandListsBothPalettes(t *testing.T) {
	stdout, _, err := executeCommand(t, "themes")
	require.NoError(t, err)

	require.Contains(t, stdout, "light *")
	require.Contains(t, stdout, "dark")
	require.Contains(t, stdout, "#242424")
	require.Contains(t, stdout, "#fefafb")
	require.Contains(t, stdout, "#ff85a2")
	require.Contains(t, stdout, "#ff3232")
}

func TestThemesCommandMarksConfiguredTheme(t *testing.T) {
	stdout, _, err := executeCommand(t, "themes", "--theme", "dark")
	require.NoError(t, err)

	require.Contains(t, stdout, "dark *")
	require.NotContains(t, stdout, "light *")
}
