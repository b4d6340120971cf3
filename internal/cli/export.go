package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daybook/internal/export"
)

var (
	// flags
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks as JSON or Markdown",
	Long: `Export every daily checklist and the long-term list, days in
chronological order.

Examples:
  daybook export
  daybook export --format markdown
  daybook export --format json --output backup.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format (json, markdown)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	st := env.file.Load()

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var writeErr error
	switch exportFormat {
	case "json":
		writeErr = export.WriteJSON(out, st)
	case "markdown", "md":
		writeErr = export.WriteMarkdown(out, st)
	default:
		return fmt.Errorf("unknown format %q: must be json or markdown", exportFormat)
	}
	if writeErr != nil {
		return fmt.Errorf("export failed: %w", writeErr)
	}

	if exportOutput != "" {
		_, styles := loadStyles(env.cfg)
		fmt.Println(styles.Success.Render("✓ Exported to " + exportOutput))
	}
	return nil
}
