package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			// the store already logged the failure; keep working in memory
			m.message = "Save failed (changes kept in memory)"
		} else {
			m.message = "Saved"
		}
		return m, nil
	}

	if m.uiMode == insertMode {
		return m.updateInsertMode(msg)
	}
	return m.updateNormalMode(msg)
}

func (m Model) updateInsertMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.uiMode = normalMode
			m.input.Reset()
			m.input.Blur()
			return m, nil

		case "enter":
			text := m.input.Value()
			if m.viewMode == longTermView {
				m.store.AddLongTerm(text)
			} else {
				m.store.AddDaily(m.selected, text)
			}
			m.uiMode = normalMode
			m.input.Reset()
			m.input.Blur()
			m.clampCursor()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateNormalMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.message = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		// best-effort final flush; a failed save must not block exit
		_ = m.file.Save(m.store)
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(keyMsg, m.keys.Save):
		return m, saveCmd(m.file, m.store)

	case key.Matches(keyMsg, m.keys.SwitchFocus):
		if m.focus == calendarFocus {
			m.focus = listFocus
		} else {
			m.focus = calendarFocus
		}
		m.clampCursor()
		return m, nil

	case key.Matches(keyMsg, m.keys.SwitchView):
		if m.viewMode == dailyView {
			m.viewMode = longTermView
		} else {
			m.viewMode = dailyView
		}
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.selected = m.selected.AddMonths(-1)
		m.clampCursor()
		return m, nil

	case key.Matches(keyMsg, m.keys.NextMonth):
		m.selected = m.selected.AddMonths(1)
		m.clampCursor()
		return m, nil

	case key.Matches(keyMsg, m.keys.Today):
		m.selected = today()
		m.cursor = 0
		return m, nil

	case key.Matches(keyMsg, m.keys.Add):
		m.uiMode = insertMode
		if m.viewMode == longTermView {
			m.input.Placeholder = "Enter new long-term task..."
		} else {
			m.input.Placeholder = "Enter new task..."
		}
		m.input.Focus()
		return m, nil

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.viewMode == dailyView && m.focus == listFocus {
			m.store.ToggleDaily(m.selected, m.cursor)
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Delete):
		if m.focus == listFocus {
			if m.viewMode == longTermView {
				m.store.DeleteLongTerm(m.cursor)
			} else {
				m.store.DeleteDaily(m.selected, m.cursor)
			}
			m.clampCursor()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Move):
		if m.focus == listFocus {
			if m.viewMode == longTermView {
				m.store.MoveLongTermToDaily(m.selected, m.cursor)
			} else {
				m.store.MoveDailyToLongTerm(m.selected, m.cursor)
			}
			m.clampCursor()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if m.focus == listFocus {
			if m.cursor > 0 {
				m.cursor--
			}
		} else {
			m.selected = m.selected.AddDays(-7)
			m.clampCursor()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.focus == listFocus {
			if m.cursor < m.visibleRows()-1 {
				m.cursor++
			}
		} else {
			m.selected = m.selected.AddDays(7)
			m.clampCursor()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Left):
		if m.focus == calendarFocus {
			m.selected = m.selected.AddDays(-1)
			m.clampCursor()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Right):
		if m.focus == calendarFocus {
			m.selected = m.selected.AddDays(1)
			m.clampCursor()
		}
		return m, nil
	}

	return m, nil
}
