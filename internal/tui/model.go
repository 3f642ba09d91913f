package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/router"
	"github.com/alexisbeaulieu97/cookieshop/internal/shop"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

// inputMode says what the text input is currently collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputPath
)

// Model is the Bubbletea state of the catalog browser. It never mutates shop
// state directly: changes go through shop.Actions and the model re-reads a
// fresh snapshot afterwards.
type Model struct {
	actions shop.Actions
	source  *shop.Shop
	snap    shop.Snapshot
	styles  theme.Styles

	keys  keyMap
	help  help.Model
	input textinput.Model
	mode  inputMode

	cursor   int
	showHelp bool
	status   string

	width  int
	height int
}

// NewModel creates the browser model for s.
func NewModel(ctx context.Context, s *shop.Shop) Model {
	ti := textinput.New()
	ti.CharLimit = 64

	m := Model{
		actions: s.Actions(ctx),
		source:  s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   ti,
		width:   80,
		height:  24,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Snapshot returns the state the model last rendered from.
func (m Model) Snapshot() shop.Snapshot {
	return m.snap
}

// Cursor returns the index of the selected card in the visible list.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the last feedback message.
func (m Model) Status() string {
	return m.status
}

// InputActive reports whether the text input has focus.
func (m Model) InputActive() bool {
	return m.mode != inputNone
}

// refresh re-reads the shop after a mutation and keeps the cursor in range.
func (m *Model) refresh() {
	m.snap = m.source.Snapshot()
	m.styles = theme.For(m.snap.Theme)
	m.help.Styles.ShortKey = m.styles.Price
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.FullKey = m.styles.Price
	m.help.Styles.FullDesc = m.styles.Muted
	m.input.PromptStyle = m.styles.Price
	m.input.TextStyle = m.styles.Body

	if m.cursor >= len(m.snap.Visible) {
		m.cursor = len(m.snap.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (catalog.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Visible) {
		return catalog.Item{}, false
	}
	return m.snap.Visible[m.cursor], true
}

func (m Model) view() router.View {
	return m.snap.Route.View
}
