package export

import (
	"fmt"
	"io"

	"daybook/internal/store"
)

// WriteMarkdown renders the store as a Markdown agenda: a section per date
// with GitHub-style checkboxes, then the long-term list.
func WriteMarkdown(w io.Writer, s *store.Store) error {
	if _, err := fmt.Fprintln(w, "# Daybook"); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	for _, date := range s.Dates() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "## %s\n\n", date)
		for _, task := range s.TasksOn(date) {
			mark := " "
			if task.Done {
				mark = "x"
			}
			fmt.Fprintf(w, "- [%s] %s\n", mark, task.Text)
		}
	}

	longTerm := s.LongTerm()
	if len(longTerm) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "## Long-term\n\n")
		for _, text := range longTerm {
			fmt.Fprintf(w, "- %s\n", text)
		}
	}

	return nil
}
