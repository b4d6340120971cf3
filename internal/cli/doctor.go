package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the data file for problems",
	Long: `Validate the data file against the expected document shape without
modifying it. A missing file is fine: the app starts empty.

Note that daybook itself never refuses to start over a broken data file; it
logs the problem and starts empty. Run doctor before that happens to find
out what is wrong and fix the file by hand.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	_, styles := loadStyles(env.cfg)
	fmt.Printf("Checking %s\n", env.file.Path())

	result, err := store.ValidateFile(env.file.Path())
	if err != nil {
		return fmt.Errorf("doctor failed: %w", err)
	}

	if result.Valid {
		fmt.Println(styles.Success.Render("✓ Data file is valid"))
		return nil
	}

	for _, msg := range result.Errors {
		fmt.Println(styles.Error.Render("✗ " + msg))
	}
	return fmt.Errorf("data file failed validation (%d problem(s))", len(result.Errors))
}
