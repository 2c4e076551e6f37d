package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("walk added", "id", "7")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked at info level: %s", out)
	}
	for _, want := range []string{"walk added", "id=7", "app=dogwalk"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dogwalk.log")
	log, closer, err := New(path, slog.LevelDebug)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Debug("session started")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "session started") {
		t.Fatalf("log file missing record: %s", b)
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	log, closer, err := New("", slog.LevelDebug)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer closer.Close()
	if log.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("discard logger should not be enabled")
	}
}
