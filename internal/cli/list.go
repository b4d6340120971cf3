package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/display"
	"daybook/internal/domain"
)

var (
	// flags
	listDate     string
	listLongTerm bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print tasks for a date or the long-term list",
	Long: `Print the checklist for a date (today by default), or the long-term list.

Examples:
  daybook list
  daybook list --date 2026-09-01
  daybook list --long-term`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Date to list (YYYY-MM-DD, today, tomorrow, or +3d)")
	listCmd.Flags().BoolVarP(&listLongTerm, "long-term", "l", false, "List long-term tasks instead")
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	st := env.file.Load()
	_, styles := loadStyles(env.cfg)

	if listLongTerm {
		tasks := st.LongTerm()
		fmt.Println(styles.Title.Render("Long-term tasks"))
		if len(tasks) == 0 {
			fmt.Println(styles.Info.Render("No long-term tasks."))
			return nil
		}
		for i, text := range tasks {
			fmt.Printf("%3d. %s\n", i+1, text)
		}
		return nil
	}

	date := domain.Today()
	if listDate != "" {
		date, err = parseDateArg(listDate)
		if err != nil {
			return err
		}
	}

	tasks := st.TasksOn(date)
	fmt.Println(styles.Title.Render(display.FormatDateLong(date)))
	if len(tasks) == 0 {
		fmt.Println(styles.Info.Render("No tasks for this date."))
		return nil
	}
	for i, task := range tasks {
		line := fmt.Sprintf("%3d. %s %s", i+1, display.Checkbox(task.Done), task.Text)
		if task.Done {
			fmt.Println(styles.Success.Render(line))
		} else {
			fmt.Println(styles.Error.Render(line))
		}
	}
	return nil
}
