package theme

import (
	"fmt"
	"strings"
)

// Name identifies one of the two shop themes.
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// Names lists every theme in display order.
var Names = []Name{Light, Dark}

// String returns the theme name.
func (n Name) String() string {
	return string(n)
}

// Opposite returns the theme a toggle switches to.
func (n Name) Opposite() Name {
	if n == Dark {
		return Light
	}
	return Dark
}

// ToggleLabel is the caption of the theme button: it names the mode the
// button switches to.
func (n Name) ToggleLabel() string {
	if n == Dark {
		return "Light Mode"
	}
	return "Dark Mode"
}

// Parse converts user input into a theme Name.
func Parse(value string) (Name, error) {
	switch Name(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected light or dark)", value)
	}
}

// Store holds the active theme selection.
type Store struct {
	current Name
}

// NewStore creates a Store starting at initial. Anything other than Dark
// starts light.
func NewStore(initial Name) *Store {
	if initial != Dark {
		initial = Light
	}
	return &Store{current: initial}
}

// Current returns the active theme.
func (s *Store) Current() Name {
	return s.current
}

// Toggle flips the active theme and returns the new selection.
func (s *Store) Toggle() Name {
	s.current = s.current.Opposite()
	return s.current
}
