// Package logging configures the process-wide slog logger. Output goes to
// a file because the terminal belongs to the UI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/macromind/internal/config"
)

// FileName is the log file created in the data directory.
const FileName = "macromind.log"

// Setup opens <dir>/macromind.log for appending, installs a logger built
// from cfg as the default and returns it with a closer for the file.
func Setup(cfg config.LogConfig, dir string) (*slog.Logger, io.Closer, error) {
	path := filepath.Join(dir, FileName)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := New(cfg, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	slog.SetDefault(logger)

	return logger, f, nil
}

// New builds a logger writing to w.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
