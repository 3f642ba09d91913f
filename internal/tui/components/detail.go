package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

// ItemDetail renders the detail page of an item.
func ItemDetail(item catalog.Item, section catalog.Category, styles theme.Styles) string {
	back := styles.Muted.Render(fmt.Sprintf("← Back to %s [esc]", section.Title()))

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Title.Render(item.Name),
		styles.Muted.Render("Image: "+item.Image),
		"",
		styles.Description.Render(item.Description),
		"",
		styles.Price.Render(item.DisplayPrice()),
		styles.Delete.Render("Delete [d]"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, back, "", body)
}
