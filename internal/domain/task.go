package domain

import (
	"errors"
	"strings"
)

// DailyTask is a checklist item attached to one calendar date.
type DailyTask struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// create a new, not-yet-done daily task
func NewDailyTask(text string) DailyTask {
	return DailyTask{Text: text}
}

func (t *DailyTask) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("task text cannot be empty")
	}
	return nil
}

// NormalizeText trims surrounding whitespace from task text; an empty result
// means the input should be ignored by the caller.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}
