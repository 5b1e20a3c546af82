// Package logging provides the session file logger. The interactive UI owns
// the terminal, so nothing may write to stdout or stderr while it runs; all
// diagnostics go to a log file under the user config directory.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

type FileLogger struct {
	Logger  *slog.Logger
	Close   func() error
	Path    string
	Enabled bool
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// NewFileLogger opens an append-only log file under dir (created if absent).
// On any failure it falls back to a nop logger so the caller never has to
// branch on logging availability.
func NewFileLogger(dir string) (FileLogger, error) {
	nop := FileLogger{Logger: Nop(), Close: func() error { return nil }}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nop, err
	}
	path := filepath.Join(dir, "scribe.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nop, err
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo})
	return FileLogger{
		Logger:  slog.New(handler),
		Close:   file.Close,
		Path:    path,
		Enabled: true,
	}, nil
}
