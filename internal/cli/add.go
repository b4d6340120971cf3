package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/domain"
)

var (
	// flags
	addDate     string
	addLongTerm bool
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a task without opening the calendar",
	Long: `Add a daily task for a date (today by default), or a long-term task.

Examples:
  daybook add "Buy milk"
  daybook add "Call bank" --date 2026-09-01
  daybook add "Learn sailing" --long-term`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Date for the task (YYYY-MM-DD, today, tomorrow, or +3d)")
	addCmd.Flags().BoolVarP(&addLongTerm, "long-term", "l", false, "Add to the long-term list instead of a date")
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := domain.NormalizeText(args[0])
	if text == "" {
		return fmt.Errorf("task text cannot be empty")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	st := env.file.Load()

	if addLongTerm {
		if addDate != "" {
			return fmt.Errorf("--date and --long-term are mutually exclusive")
		}
		st.AddLongTerm(text)
	} else {
		date := domain.Today()
		if addDate != "" {
			date, err = parseDateArg(addDate)
			if err != nil {
				return err
			}
		}
		st.AddDaily(date, text)
	}

	if err := env.file.Save(st); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	_, styles := loadStyles(env.cfg)
	fmt.Println(styles.Success.Render("✓ Task added"))
	return nil
}
