// Package logging owns the process-wide slog logger. A terminal UI cannot
// write diagnostics to the terminal, so records go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type setLoggerFunc func(*slog.Logger)

var (
	mu             sync.Mutex
	logger         = slog.New(slog.DiscardHandler)
	setLoggerFuncs []setLoggerFunc
)

// RegisterSetLoggerFunc registers fn to receive the logger on every SetLogger
// call. Packages call it from init to keep a package-level logger. fn is
// invoked immediately with the current logger.
func RegisterSetLoggerFunc(fn func(*slog.Logger)) {
	mu.Lock()
	defer mu.Unlock()
	setLoggerFuncs = append(setLoggerFuncs, fn)
	fn(logger)
}

// SetLogger installs l as the logger of every registered package.
// A nil l discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	mu.Lock()
	defer mu.Unlock()
	logger = l
	for _, fn := range setLoggerFuncs {
		fn(logger)
	}
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Open creates a text logger appending to path. The returned closer must be
// closed on exit.
func Open(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// New returns a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
