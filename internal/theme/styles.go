package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// tui chrome
	TUITitle   lipgloss.Style
	TUIHelp    lipgloss.Style
	DateHeader lipgloss.Style
	Panel      lipgloss.Style
	PanelFocus lipgloss.Style

	// task rows
	DoneTask    lipgloss.Style
	PendingTask lipgloss.Style
	LongTermRow lipgloss.Style
	SelectedRow lipgloss.Style

	// calendar
	CalMonth    lipgloss.Style
	CalWeekday  lipgloss.Style
	CalDay      lipgloss.Style
	CalToday    lipgloss.Style
	CalSelected lipgloss.Style
	CalOutside  lipgloss.Style
	CalBadge    lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		// tui chrome
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		DateHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TextPrimary)),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 1),

		PanelFocus: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Padding(0, 1),

		// task rows: finished tasks render on green, open ones on red,
		// like the desktop original
		DoneTask: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.DoneFg)).
			Background(lipgloss.Color(t.DoneBg)).
			Strikethrough(true).
			Padding(0, 1),

		PendingTask: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.PendingFg)).
			Background(lipgloss.Color(t.PendingBg)).
			Padding(0, 1),

		LongTermRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)).
			Padding(0, 1),

		SelectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true).
			Padding(0, 1),

		// calendar
		CalMonth: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TextPrimary)),

		CalWeekday: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Bold(true),

		CalDay: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		CalToday: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Today)).
			Bold(true).
			Underline(true),

		CalSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),

		CalOutside: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Outside)),

		CalBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Badge)).
			Bold(true),
	}
}

// GetTaskStyle returns the row style for a task's completion state.
func (s *Styles) GetTaskStyle(done bool) lipgloss.Style {
	if done {
		return s.DoneTask
	}
	return s.PendingTask
}
