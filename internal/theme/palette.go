package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the fixed colour tuple of a theme.
type Palette struct {
	MainColor       lipgloss.Color
	BackgroundColor lipgloss.Color
	AccentPink      lipgloss.Color
	AccentRed       lipgloss.Color
}

var (
	lightPalette = Palette{
		MainColor:       "#242424",
		BackgroundColor: "#fefafb",
		AccentPink:      "#ff85a2",
		AccentRed:       "#ff3232",
	}

	darkPalette = Palette{
		MainColor:       "#fefafb",
		BackgroundColor: "#242424",
		AccentPink:      "#ff85a2",
		AccentRed:       "#ff3232",
	}
)

// PaletteFor returns the palette of a theme. Unknown names get the light
// palette, so the lookup never fails.
func PaletteFor(name Name) Palette {
	if name == Dark {
		return darkPalette
	}
	return lightPalette
}

const (
	lightLogo = "☀ Cookie Shop"
	darkLogo  = "☾ Cookie Shop"
)

// Logo returns the banner shown in the navigation bar for a theme.
func Logo(name Name) string {
	if name == Dark {
		return darkLogo
	}
	return lightLogo
}
