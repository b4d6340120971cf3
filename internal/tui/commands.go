package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/store"
)

// saveDoneMsg is sent when an explicit save finishes.
type saveDoneMsg struct {
	err error
}

// saveCmd writes the store to disk off the update path.
func saveCmd(file *store.File, s *store.Store) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: file.Save(s)}
	}
}
