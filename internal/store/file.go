package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"daybook/internal/domain"
)

// document is the on-disk JSON shape. Date keys marshal through
// domain.Date's ISO text form; absent keys default to empty collections.
type document struct {
	Todos    map[domain.Date][]domain.DailyTask `json:"todos"`
	LongTerm []string                           `json:"long_term"`
}

// File binds a Store to one stable data-file path for the life of the run.
type File struct {
	path   string
	logger *log.Logger
}

func NewFile(path string, logger *log.Logger) *File {
	return &File{path: path, logger: logger}
}

func (f *File) Path() string {
	return f.path
}

// Load reads the data file into a fresh Store. A missing, unreadable, or
// malformed file yields an empty store: persistence failures must never
// prevent startup. Failures are logged, not returned.
func (f *File) Load() *Store {
	s := New()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Info("no data file yet, starting empty", "path", f.path)
		} else {
			f.logger.Error("read data file", "path", f.path, "err", err)
		}
		return s
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Error("parse data file, starting empty", "path", f.path, "err", err)
		return s
	}

	for date, tasks := range doc.Todos {
		// drop empty lists on the way in so the no-empty-lists invariant
		// holds even for hand-edited files
		if len(tasks) > 0 {
			s.byDate[date] = tasks
		}
	}
	s.longTerm = doc.LongTerm

	f.logger.Info("loaded data file", "path", f.path, "dates", len(s.byDate), "long_term", len(s.longTerm))
	return s
}

// Save writes the store atomically: marshal, write a temp file next to the
// target, then rename over it. The error is logged and returned; callers on
// the shutdown path ignore it so a failed save never blocks exit.
func (f *File) Save(s *Store) error {
	doc := document{
		Todos:    s.byDate,
		LongTerm: s.longTerm,
	}
	if doc.Todos == nil {
		doc.Todos = map[domain.Date][]domain.DailyTask{}
	}
	if doc.LongTerm == nil {
		doc.LongTerm = []string{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		f.logger.Error("marshal data file", "err", err)
		return fmt.Errorf("marshal data file: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		f.logger.Error("create data directory", "path", f.path, "err", err)
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".daybook-*.json")
	if err != nil {
		f.logger.Error("create temp file", "path", f.path, "err", err)
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		f.logger.Error("write temp file", "path", tmpPath, "err", err)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		f.logger.Error("close temp file", "path", tmpPath, "err", err)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		f.logger.Error("replace data file", "path", f.path, "err", err)
		return fmt.Errorf("replace data file: %w", err)
	}

	f.logger.Info("saved data file", "path", f.path)
	return nil
}
