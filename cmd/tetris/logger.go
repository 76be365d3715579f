package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// openLogger returns a logger writing to path. The terminal belongs to the
// game while it runs, so logs go to a file; if the file cannot be opened the
// logger falls back to stderr and only reports warnings and errors.
// The returned func closes the file.
func openLogger(path string) (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	}

	f, err := openLogFile(path)
	if err != nil {
		opts.Level = log.WarnLevel
		logger := log.NewWithOptions(os.Stderr, opts)
		if path != "" {
			logger.Warn("logging to stderr", "error", err)
		}
		return logger, func() {}
	}

	return log.NewWithOptions(f, opts), func() { f.Close() }
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("no log file")
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
