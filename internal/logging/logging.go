package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New builds the application logger. The TUI owns the terminal, so logs
// only go to path; an empty path discards everything. The returned
// closer must be called on exit.
func New(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(f, level), f, nil
}

// NewWriter logs text records at level and above to w.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("app", "dogwalk")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
