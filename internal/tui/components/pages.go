package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

// Landing renders the home page.
func Landing(shopName string, section catalog.Category, styles theme.Styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Title.Render(shopName),
		styles.Description.Render(fmt.Sprintf("Fresh %s, baked to order.", section)),
		"",
		styles.Muted.Render(fmt.Sprintf("Press enter or c to browse %s.", section)),
	)
}

// NotFound renders the page shown for a path that matches nothing.
func NotFound(path string, section catalog.Category, styles theme.Styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Banner.Render(fmt.Sprintf("Nothing lives at %s", path)),
		"",
		styles.Muted.Render(fmt.Sprintf("Press esc to go back to %s.", section.Title())),
	)
}

// EmptyCatalog renders the list page when no item is visible.
func EmptyCatalog(section catalog.Category, query string, styles theme.Styles) string {
	if query != "" {
		return styles.Muted.Render(fmt.Sprintf("No %s match %q.", section, query))
	}
	return styles.Muted.Render(fmt.Sprintf("All %s are gone.", section))
}
