package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/domain"
	"daybook/internal/store"
	"daybook/internal/theme"
)

// stubbed in tests
var today = domain.Today

type viewMode int

const (
	dailyView viewMode = iota
	longTermView
)

type focusArea int

const (
	calendarFocus focusArea = iota
	listFocus
)

type uiMode int

const (
	normalMode uiMode = iota
	insertMode
)

// Model is the presenter: it owns only transient UI state (selected date,
// cursor row, focus) and routes every mutation through the store.
type Model struct {
	store *store.Store
	file  *store.File

	selected domain.Date

	viewMode viewMode
	uiMode   uiMode
	focus    focusArea
	cursor   int

	input textinput.Model
	keys  keyMap

	theme  *theme.Theme
	styles *theme.Styles

	message  string
	err      error
	width    int
	height   int
	showHelp bool
}

func NewModel(st *store.Store, file *store.File, themeObj *theme.Theme, styles *theme.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter new task..."
	ti.CharLimit = 200
	ti.Width = 40

	return Model{
		store:    st,
		file:     file,
		selected: today(),
		viewMode: dailyView,
		uiMode:   normalMode,
		focus:    calendarFocus,
		input:    ti,
		keys:     defaultKeyMap(),
		theme:    themeObj,
		styles:   styles,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// visibleRows is the list currently shown in the right pane.
func (m *Model) visibleRows() int {
	if m.viewMode == longTermView {
		return len(m.store.LongTerm())
	}
	return m.store.CountForDate(m.selected)
}

// clampCursor keeps the cursor inside the visible list after mutations.
func (m *Model) clampCursor() {
	rows := m.visibleRows()
	if rows == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
