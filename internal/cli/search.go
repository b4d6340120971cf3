package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/display"
	"daybook/internal/search"
)

var searchThreshold int

var searchCmd = &cobra.Command{
	Use:   "search [pattern]",
	Short: "Fuzzy search tasks across all dates",
	Long: `Fuzzy search every daily checklist and the long-term list. Matches are
ranked, so "bmilk" still finds "Buy milk".

Examples:
  daybook search milk
  daybook search bank --threshold 60`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchThreshold, "threshold", "t", search.DefaultThreshold, "Minimum match score (0-100)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	st := env.file.Load()
	_, styles := loadStyles(env.cfg)

	results := search.Tasks(st, args[0], searchThreshold)
	if len(results) == 0 {
		fmt.Println(styles.Info.Render("No matching tasks."))
		return nil
	}

	fmt.Println(styles.Title.Render(fmt.Sprintf("Found %d matching task(s)", len(results))))
	for _, r := range results {
		if r.Date.IsZero() {
			fmt.Printf("  %-12s %s\n", "long-term", r.Text)
			continue
		}
		line := fmt.Sprintf("  %-12s %s %s", r.Date.String(), display.Checkbox(r.Done), r.Text)
		if r.Done {
			fmt.Println(styles.Success.Render(line))
		} else {
			fmt.Println(styles.Error.Render(line))
		}
	}
	return nil
}
