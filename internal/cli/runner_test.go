package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/dogwalk/internal/tui"
	"github.com/idilsaglam/dogwalk/internal/walk"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	chdirTemp(t)
	var out, errOut bytes.Buffer
	code := Run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestPlainRendersSeededSchedule(t *testing.T) {
	code, out, errOut := run(t, "--plain", "--theme", "mono", "--color", "never")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{"Dog Walk Schedule", "0 / 3", "08:00 AM", "Trail", "+ Add Walk"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNonTerminalFallsBackToPlain(t *testing.T) {
	code, out, _ := run(t, "--color", "never")
	if code != 0 || !strings.Contains(out, "0 / 3") {
		t.Fatalf("expected plain render for non-terminal output, code %d:\n%s", code, out)
	}
}

func TestJSONSnapshotAfterSession(t *testing.T) {
	orig, origOut := runInteractive, interactiveOut
	t.Cleanup(func() { runInteractive, interactiveOut = orig, origOut })

	interactiveOut = func(io.Writer) bool { return true }
	runInteractive = func(_ context.Context, s walk.State, _ tui.Options, _ ...tea.ProgramOption) (walk.State, error) {
		return walk.ToggleComplete(s, s.Walks[0].ID), nil
	}

	code, out, errOut := run(t, "--json")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	var got walk.State
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not a JSON state: %v\n%s", err, out)
	}
	if len(got.Walks) != 3 || !got.Walks[0].Completed {
		t.Fatalf("snapshot does not reflect session: %+v", got.Walks)
	}
}

func TestJSONWithoutTerminalIsPureJSON(t *testing.T) {
	code, out, errOut := run(t, "--json", "--color", "never")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut)
	}
	var got walk.State
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("stdout is not a single JSON document: %v\n%s", err, out)
	}
	if len(got.Walks) != 3 || got.Form != walk.FormHidden {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestBadFlagValueIsUsageError(t *testing.T) {
	code, _, errOut := run(t, "--plain", "--theme", "sepia")
	if code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !strings.Contains(errOut, "sepia") || !strings.Contains(errOut, "Usage:") {
		t.Fatalf("expected error and usage on stderr:\n%s", errOut)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	if code, _, _ := run(t, "--frobnicate"); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	if code != 0 || strings.TrimSpace(out) != "dogwalk dev" {
		t.Fatalf("version: code %d, out %q", code, out)
	}
}
