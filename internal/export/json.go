package export

import (
	"encoding/json"
	"io"

	"daybook/internal/store"
)

// BuildDocument snapshots the store into an export document, days in
// chronological order, tasks in insertion order.
func BuildDocument(s *store.Store) *Document {
	doc := &Document{
		Version:  "1.0",
		Days:     []DayExport{},
		LongTerm: []string{},
	}

	for _, date := range s.Dates() {
		day := DayExport{Date: date.String()}
		for _, task := range s.TasksOn(date) {
			day.Tasks = append(day.Tasks, TaskData{Text: task.Text, Done: task.Done})
		}
		doc.Days = append(doc.Days, day)
	}

	doc.LongTerm = append(doc.LongTerm, s.LongTerm()...)

	return doc
}

func WriteJSON(w io.Writer, s *store.Store) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDocument(s))
}
