package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cookieshop/internal/router"
	"github.com/alexisbeaulieu97/cookieshop/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	sections := []string{
		components.NavBar(components.NavBarData{
			Theme:   m.snap.Theme,
			Section: m.snap.Section,
			Active:  m.view(),
		}, m.styles),
		"",
		m.renderPage(),
	}

	if m.mode != inputNone {
		sections = append(sections, "", m.input.View())
	}

	if strings.TrimSpace(m.status) != "" {
		sections = append(sections, "", m.styles.Muted.Render(m.status))
	}

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.showHelp {
		footer = m.help.FullHelpView(m.keys.FullHelp())
	}
	sections = append(sections, m.styles.Footer.Render(footer))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		m.styles.Body.Padding(0, 1).Render(content),
		lipgloss.WithWhitespaceBackground(m.snap.Palette.BackgroundColor),
	)
}

func (m Model) renderPage() string {
	switch m.view() {
	case router.ViewLanding:
		return components.Landing(m.snap.Name, m.snap.Section, m.styles)
	case router.ViewList:
		return m.renderList()
	case router.ViewDetail:
		if m.snap.Selected == nil {
			return components.NotFound(m.snap.Path, m.snap.Section, m.styles)
		}
		return components.ItemDetail(*m.snap.Selected, m.snap.Section, m.styles)
	default:
		return components.NotFound(m.snap.Route.Path, m.snap.Section, m.styles)
	}
}

func (m Model) renderList() string {
	summary := components.NewSummary(components.SummaryData{
		Section: m.snap.Section,
		Total:   len(m.snap.Items),
		Visible: len(m.snap.Visible),
		Query:   m.snap.Query,
	}).View()

	body := components.NewItemList(m.snap.Visible, m.cursor).View(m.styles, m.width-2)
	if len(m.snap.Visible) == 0 {
		body = components.EmptyCatalog(m.snap.Section, m.snap.Query, m.styles)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Title.Render(m.snap.Section.Title()),
		m.styles.Muted.Render(summary),
		"",
		body,
	)
}
