package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"daybook/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive calendar",
	Long: `Open the interactive calendar view.

Keyboard shortcuts:
  Calendar focus:
    ←/→ ↑/↓   Move by day / by week
    [ / ]     Previous / next month
    t         Jump to today

  List focus:
    ↑/k ↓/j   Move between tasks
    space/x   Toggle done
    d         Delete task
    m         Move task to the other list

  Global:
    tab       Switch focus between calendar and list
    v         Switch between daily and long-term view
    a         Add a task
    s         Save
    q         Save and quit
    ?         Toggle help`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	env.logger.Info("starting", "data", env.file.Path())

	st := env.file.Load()
	themeObj, styles := loadStyles(env.cfg)

	model := tui.NewModel(st, env.file, themeObj, styles)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
