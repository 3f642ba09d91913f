package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cookieshop/internal/router"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.handleInputKeys(msg)
		}
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		current := m.actions.ToggleTheme()
		m.status = fmt.Sprintf("Switched to %s mode", current)
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Home):
		m.navigate(router.Landing())
		return m, nil
	case key.Matches(msg, m.keys.Catalog):
		m.navigate(router.List())
		return m, nil
	case key.Matches(msg, m.keys.GoTo):
		return m.startInput(inputPath, m.snap.Path)
	}

	switch m.view() {
	case router.ViewLanding:
		return m.handleLandingKeys(msg)
	case router.ViewList:
		return m.handleListKeys(msg)
	case router.ViewDetail:
		return m.handleDetailKeys(msg)
	default:
		return m.handleNotFoundKeys(msg)
	}
}

func (m Model) handleLandingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Open) {
		m.navigate(router.List())
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if item, ok := m.selected(); ok {
			m.navigate(router.Detail(item.ID))
		}
	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.selected(); ok {
			m.actions.Delete(item.ID)
			m.status = fmt.Sprintf("Deleted %s", item.Name)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Search):
		return m.startInput(inputSearch, m.snap.Query)
	case key.Matches(msg, m.keys.Back):
		if m.snap.Query != "" {
			m.actions.Search("")
			m.refresh()
			return m, nil
		}
		m.navigate(router.Landing())
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Delete):
		if item := m.snap.Selected; item != nil {
			m.actions.Delete(item.ID)
			m.status = fmt.Sprintf("Deleted %s", item.Name)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Back):
		m.navigate(router.List())
	}
	return m, nil
}

func (m Model) handleNotFoundKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Open) {
		m.navigate(router.List())
	}
	return m, nil
}

func (m Model) startInput(mode inputMode, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	switch mode {
	case inputSearch:
		m.input.Prompt = "search: "
		m.input.Placeholder = "name contains…"
	case inputPath:
		m.input.Prompt = "go to: "
		m.input.Placeholder = "/" + m.snap.Section.String()
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.mode == inputPath {
			route := m.actions.Navigate(m.input.Value())
			m.status = fmt.Sprintf("Opened %s", m.source.PathFor(route))
			if route.View == router.ViewNotFound {
				m.status = fmt.Sprintf("No page at %s", strings.TrimSpace(route.Path))
			}
		}
		m.stopInput()
		m.refresh()
		return m, nil
	case tea.KeyEsc:
		if m.mode == inputSearch {
			m.actions.Search("")
		}
		m.stopInput()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == inputSearch {
		m.actions.Search(m.input.Value())
		m.cursor = 0
		m.refresh()
	}
	return m, cmd
}

func (m *Model) stopInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) navigate(route router.Route) {
	landed := m.actions.Show(route)
	if landed.View == router.ViewList && m.snap.Route.View == router.ViewDetail {
		m.cursor = m.indexOf(m.snap.Route.ID)
	}
	m.status = ""
	m.refresh()
	if landed.View == router.ViewNotFound {
		m.status = fmt.Sprintf("No page at %s", strings.TrimSpace(landed.Path))
	}
}

func (m Model) indexOf(id int) int {
	for i, item := range m.snap.Visible {
		if item.ID == id {
			return i
		}
	}
	return m.cursor
}
