package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"daybook/internal/config"
	"daybook/internal/logging"
	"daybook/internal/store"
	"daybook/internal/theme"
)

var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Daybook - a calendar to-do list for your terminal",
	Long: `Daybook keeps a checklist of tasks per calendar date plus a separate
list of long-term tasks with no date attached. Tasks can be moved between
the two. Everything lives in one JSON file under ~/.daybook.

Running daybook with no arguments opens the interactive calendar.`,
	RunE: runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// appEnv bundles everything a command needs: config, the shared file
// logger, and the data file handle.
type appEnv struct {
	cfg    *config.Config
	logger *log.Logger
	file   *store.File
	close  func()
}

func openEnv() (*appEnv, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog := logging.NewFileLogger(cfg.LogPath)

	return &appEnv{
		cfg:    cfg,
		logger: logger,
		file:   store.NewFile(cfg.DataPath, logger),
		close:  closeLog,
	}, nil
}

// loadStyles resolves the configured theme, falling back to the default
// when the name is unknown.
func loadStyles(cfg *config.Config) (*theme.Theme, *theme.Styles) {
	themeName := cfg.ThemeName
	if themeName == "" {
		themeName = "default"
	}

	themeObj, err := theme.GetTheme(themeName)
	if err != nil {
		themeObj = theme.GetDefaultTheme()
	}

	return themeObj, theme.NewStyles(themeObj)
}
