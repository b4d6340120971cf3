package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daybook/internal/display"
	"daybook/internal/domain"
)

// renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.TUITitle.Render("  Daybook  "))
	b.WriteString("\n\n")

	left := m.renderCalendar()
	right := m.renderListPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(m.styles.Success.Render(m.message))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())

	return b.String()
}

// renderCalendar draws the month of the selected date with task-count
// badges on annotated cells.
func (m Model) renderCalendar() string {
	var b strings.Builder

	header := m.selected.Time().Format("January 2006")
	pad := (28 - len(header)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(m.styles.CalMonth.Render(header))
	b.WriteString("\n")
	b.WriteString(m.styles.CalWeekday.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	now := today()
	for _, week := range monthWeeks(m.selected.Year(), m.selected.Month()) {
		for _, day := range week {
			b.WriteString(m.renderCalendarCell(day, now))
		}
		b.WriteString("\n")
	}

	panel := m.styles.Panel
	if m.focus == calendarFocus {
		panel = m.styles.PanelFocus
	}
	return panel.Render(strings.TrimRight(b.String(), "\n"))
}

// renderCalendarCell renders one 4-column cell: the 2-digit day plus the
// date's task count as a colored badge, the TUI stand-in for the original's
// painted-over cell annotation.
func (m Model) renderCalendarCell(day, now domain.Date) string {
	if day.IsZero() {
		return "    "
	}

	text := fmt.Sprintf("%2d", day.Day())
	badge := display.CountBadge(m.store.CountForDate(day))

	if day == m.selected {
		return m.styles.CalSelected.Render(fmt.Sprintf("%s%-2s", text, badge))
	}

	style := m.styles.CalDay
	if day == now {
		style = m.styles.CalToday
	}
	cell := style.Render(text)
	if badge != "" {
		cell += m.styles.CalBadge.Render(fmt.Sprintf("%-2s", badge))
	} else {
		cell += "  "
	}
	return cell
}

// renderListPane draws the right-hand pane: either the selected date's
// checklist or the long-term list, plus the input line in insert mode.
func (m Model) renderListPane() string {
	var b strings.Builder

	if m.viewMode == longTermView {
		b.WriteString(m.styles.DateHeader.Render("⏳ Long-term tasks"))
		b.WriteString("\n\n")
		b.WriteString(m.renderLongTermList())
	} else {
		b.WriteString(m.styles.DateHeader.Render("Selected date: " + display.FormatDateLong(m.selected)))
		b.WriteString("\n\n")
		b.WriteString(m.renderDailyList())
	}

	if m.uiMode == insertMode {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	panel := m.styles.Panel
	if m.focus == listFocus {
		panel = m.styles.PanelFocus
	}
	return panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderDailyList() string {
	tasks := m.store.TasksOn(m.selected)
	if len(tasks) == 0 {
		return m.styles.TUIHelp.Render("No tasks for this date.")
	}

	var b strings.Builder
	for i, task := range tasks {
		row := fmt.Sprintf("%s %s", display.Checkbox(task.Done), task.Text)
		if m.focus == listFocus && i == m.cursor {
			b.WriteString(m.styles.SelectedRow.Render(row))
		} else {
			b.WriteString(m.styles.GetTaskStyle(task.Done).Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderLongTermList() string {
	tasks := m.store.LongTerm()
	if len(tasks) == 0 {
		return m.styles.TUIHelp.Render("No long-term tasks.")
	}

	var b strings.Builder
	for i, text := range tasks {
		if m.focus == listFocus && i == m.cursor {
			b.WriteString(m.styles.SelectedRow.Render(text))
		} else {
			b.WriteString(m.styles.LongTermRow.Render(text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	if m.uiMode == insertMode {
		return m.styles.TUIHelp.Render("enter: add • esc: cancel")
	}

	if m.showHelp {
		var lines []string
		for _, group := range m.keys.FullHelp() {
			var parts []string
			for _, binding := range group {
				parts = append(parts, fmt.Sprintf("%s: %s", binding.Help().Key, binding.Help().Desc))
			}
			lines = append(lines, strings.Join(parts, " • "))
		}
		return m.styles.TUIHelp.Render(strings.Join(lines, "\n"))
	}

	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s: %s", binding.Help().Key, binding.Help().Desc))
	}
	return m.styles.TUIHelp.Render(strings.Join(parts, " • "))
}
