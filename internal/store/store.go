// Package store owns all task data: the mapping from calendar date to daily
// checklist, the undated long-term list, and their persistence to a single
// JSON file. Every mutation is addressed by the positional index of the row
// the user is acting on, never by task text, so duplicate texts stay
// unambiguous.
package store

import (
	"sort"

	"daybook/internal/domain"
)

// Store is the in-memory owner of all task data. All operations are
// synchronous and total: invalid input (zero date, blank text, index out of
// range) is a silent no-op, never an error.
type Store struct {
	byDate   map[domain.Date][]domain.DailyTask
	longTerm []string
}

func New() *Store {
	return &Store{
		byDate: make(map[domain.Date][]domain.DailyTask),
	}
}

// AddDaily appends a pending task to the given date's list, creating the
// list if the date has none yet. Blank text or a zero date is ignored.
func (s *Store) AddDaily(date domain.Date, text string) {
	text = domain.NormalizeText(text)
	if date.IsZero() || text == "" {
		return
	}
	s.byDate[date] = append(s.byDate[date], domain.NewDailyTask(text))
}

// ToggleDaily flips the done flag of the task at index on the given date.
func (s *Store) ToggleDaily(date domain.Date, index int) {
	tasks, ok := s.byDate[date]
	if !ok || index < 0 || index >= len(tasks) {
		return
	}
	tasks[index].Done = !tasks[index].Done
}

// DeleteDaily removes the task at index on the given date. A date whose last
// task is deleted disappears entirely: no date key ever maps to an empty list.
func (s *Store) DeleteDaily(date domain.Date, index int) {
	tasks, ok := s.byDate[date]
	if !ok || index < 0 || index >= len(tasks) {
		return
	}
	tasks = append(tasks[:index], tasks[index+1:]...)
	if len(tasks) == 0 {
		delete(s.byDate, date)
	} else {
		s.byDate[date] = tasks
	}
}

// MoveDailyToLongTerm converts the task at index on the given date into a
// long-term entry, appended at the end. The done flag is discarded: long-term
// tasks carry no completion state.
func (s *Store) MoveDailyToLongTerm(date domain.Date, index int) {
	tasks, ok := s.byDate[date]
	if !ok || index < 0 || index >= len(tasks) {
		return
	}
	s.longTerm = append(s.longTerm, tasks[index].Text)
	s.DeleteDaily(date, index)
}

// AddLongTerm appends a long-term task. Blank text is ignored.
func (s *Store) AddLongTerm(text string) {
	text = domain.NormalizeText(text)
	if text == "" {
		return
	}
	s.longTerm = append(s.longTerm, text)
}

// DeleteLongTerm removes the long-term entry at index.
func (s *Store) DeleteLongTerm(index int) {
	if index < 0 || index >= len(s.longTerm) {
		return
	}
	s.longTerm = append(s.longTerm[:index], s.longTerm[index+1:]...)
}

// MoveLongTermToDaily converts the long-term entry at index into a pending
// daily task on the given date, appended at the end of that date's list.
func (s *Store) MoveLongTermToDaily(date domain.Date, index int) {
	if date.IsZero() || index < 0 || index >= len(s.longTerm) {
		return
	}
	text := s.longTerm[index]
	s.DeleteLongTerm(index)
	s.byDate[date] = append(s.byDate[date], domain.NewDailyTask(text))
}

// CountForDate reports how many tasks the given date has; the calendar
// renders any positive count as a badge on the date cell.
func (s *Store) CountForDate(date domain.Date) int {
	return len(s.byDate[date])
}

// TasksOn returns a copy of the given date's task list in insertion order.
func (s *Store) TasksOn(date domain.Date) []domain.DailyTask {
	tasks := s.byDate[date]
	if len(tasks) == 0 {
		return nil
	}
	out := make([]domain.DailyTask, len(tasks))
	copy(out, tasks)
	return out
}

// LongTerm returns a copy of the long-term list in insertion order.
func (s *Store) LongTerm() []string {
	if len(s.longTerm) == 0 {
		return nil
	}
	out := make([]string, len(s.longTerm))
	copy(out, s.longTerm)
	return out
}

// Dates returns every date that has at least one task, in chronological
// order. Used by exports.
func (s *Store) Dates() []domain.Date {
	dates := make([]domain.Date, 0, len(s.byDate))
	for d := range s.byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}
