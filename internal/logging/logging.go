// Package logging builds the file-backed logger the rest of the app shares.
// Log output never goes to the terminal: the TUI owns the screen.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewFileLogger returns a logger appending to path and a close function.
// If the file cannot be opened the logger discards output instead: logging
// problems must never stop the app from starting.
func NewFileLogger(path string) (*log.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discardLogger(), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return discardLogger(), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "daybook",
	})
	return logger, func() { f.Close() }
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
