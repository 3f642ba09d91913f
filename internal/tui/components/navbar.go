package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/router"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

// NavBarData is what the navigation bar shows.
type NavBarData struct {
	Theme   theme.Name
	Section catalog.Category
	Active  router.View
}

// NavBar renders the logo, the section link and the theme button.
func NavBar(data NavBarData, styles theme.Styles) string {
	home := styles.NavItem.Render("Home [h]")
	if data.Active == router.ViewLanding {
		home = styles.NavActive.Render("Home [h]")
	}

	sectionLabel := data.Section.Title() + " [c]"
	section := styles.NavItem.Render(sectionLabel)
	if data.Active == router.ViewList || data.Active == router.ViewDetail {
		section = styles.NavActive.Render(sectionLabel)
	}

	button := styles.ThemeButton.Render(data.Theme.ToggleLabel() + " [t]")

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		styles.Logo.Render(theme.Logo(data.Theme)),
		home,
		section,
		button,
	)
}
