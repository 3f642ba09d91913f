package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/router"
	"github.com/alexisbeaulieu97/cookieshop/internal/shop"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: 1, Name: "Chocolate Chip", Image: "chocolate-chip.png", Description: "Classic.", Price: decimal.NewFromInt(3), Category: catalog.CategoryCookies},
		{ID: 2, Name: "Oatmeal Raisin", Image: "oatmeal.png", Description: "Chewy.", Price: decimal.RequireFromString("2.5"), Category: catalog.CategoryCookies},
		{ID: 3, Name: "Double Chocolate", Image: "double.png", Description: "Rich.", Price: decimal.NewFromInt(4), Category: catalog.CategoryCookies},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	s, err := shop.New(testItems(), shop.Options{Category: catalog.CategoryCookies, Theme: theme.Light})
	require.NoError(t, err)
	return NewModel(context.Background(), s)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	for _, r := range text {
		m = press(t, m, string(r))
	}
	return m
}

func TestNewModelStartsOnLanding(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	assert.Equal(t, router.ViewLanding, m.Snapshot().Route.View)
	assert.Equal(t, theme.Light, m.Snapshot().Theme)
	assert.Len(t, m.Snapshot().Items, 3)
	assert.Equal(t, 0, m.Cursor())
	assert.False(t, m.InputActive())
	assert.Nil(t, m.Init())
}

func TestRefreshClampsCursor(t *testing.T) {
	t.Parallel()

	m := press(t, newTestModel(t), "enter", "down", "down")
	require.Equal(t, 2, m.Cursor())

	m = press(t, m, "d")

	assert.Equal(t, 1, m.Cursor())
	assert.Len(t, m.Snapshot().Items, 2)

	m = press(t, m, "d", "d")

	assert.Empty(t, m.Snapshot().Items)
	assert.Equal(t, 0, m.Cursor())
	_, ok := m.selected()
	assert.False(t, ok)
}
