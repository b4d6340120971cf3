package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/config"
	"daybook/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "List available themes or set the active one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(args) == 0 {
		current := cfg.ThemeName
		if current == "" {
			current = "default"
		}
		for _, name := range theme.ListThemes() {
			marker := "  "
			if name == current {
				marker = "* "
			}
			fmt.Println(marker + name)
		}
		return nil
	}

	name := args[0]
	if _, err := theme.GetTheme(name); err != nil {
		return fmt.Errorf("unknown theme %q (run 'daybook theme' to list)", name)
	}

	if err := config.UpdateTheme(name); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Printf("✓ Theme set to '%s'\n", name)
	return nil
}
