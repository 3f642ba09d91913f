package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

// cardOuterWidth is a card's rendered width including border and gap.
const cardOuterWidth = 32

// ItemEntry is one item positioned in the list.
type ItemEntry struct {
	Index    int
	Item     catalog.Item
	Selected bool
}

// ItemList lays out catalog items as a grid of cards.
type ItemList struct {
	entries []ItemEntry
}

// NewItemList builds the list for items with the cursor on index cursor.
func NewItemList(items []catalog.Item, cursor int) ItemList {
	entries := make([]ItemEntry, 0, len(items))
	for i, item := range items {
		entries = append(entries, ItemEntry{Index: i, Item: item, Selected: i == cursor})
	}
	return ItemList{entries: entries}
}

// Entries returns the ordered entries.
func (l ItemList) Entries() []ItemEntry {
	clone := make([]ItemEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// Columns returns how many cards fit in width terminal cells.
func Columns(width int) int {
	cols := width / cardOuterWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// View renders the cards in rows that fit width.
func (l ItemList) View(styles theme.Styles, width int) string {
	if len(l.entries) == 0 {
		return ""
	}

	cols := Columns(width)
	var rows []string
	for start := 0; start < len(l.entries); start += cols {
		end := start + cols
		if end > len(l.entries) {
			end = len(l.entries)
		}

		cards := make([]string, 0, end-start)
		for _, entry := range l.entries[start:end] {
			cards = append(cards, ItemCard(entry.Item, entry.Selected, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, withGaps(cards, styles)...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ItemCard renders a single item: image reference, name, price and the delete
// hint.
func ItemCard(item catalog.Item, selected bool, styles theme.Styles) string {
	lines := []string{
		styles.Muted.Render(imageLabel(item.Image)),
		styles.ItemName.Render(item.Name),
		styles.Price.Render(item.DisplayPrice()),
		styles.Delete.Render("Delete [d]"),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)

	if selected {
		return styles.CardActive.Render(content)
	}
	return styles.Card.Render(content)
}

func withGaps(cards []string, styles theme.Styles) []string {
	out := make([]string, 0, len(cards)*2)
	gap := styles.Body.Render("  ")
	for i, card := range cards {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, card)
	}
	return out
}

// imageLabel keeps the last path element of an image reference.
func imageLabel(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return "[no image]"
	}
	if i := strings.LastIndex(image, "/"); i >= 0 && i < len(image)-1 {
		image = image[i+1:]
	}
	return "[" + image + "]"
}
