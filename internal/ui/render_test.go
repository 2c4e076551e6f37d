package ui

import (
	"strings"
	"testing"

	"github.com/idilsaglam/dogwalk/internal/ui/uitest"
	"github.com/idilsaglam/dogwalk/internal/walk"
)

func mustTheme(t *testing.T, name string) Theme {
	t.Helper()
	th, err := ThemeByName(name)
	if err != nil {
		t.Fatalf("theme %q: %v", name, err)
	}
	return th
}

func TestProgressBar(t *testing.T) {
	th := mustTheme(t, "mono")
	cases := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "---------- " + "  0%"},
		{1, 2, 10, "#####----- " + " 50%"},
		{3, 3, 10, "########## " + "100%"},
		{1, 3, 2, "#---- " + " 33%"},
	}
	for _, c := range cases {
		if got := ProgressBar(th, c.done, c.total, c.width); got != c.want {
			t.Fatalf("ProgressBar(%d,%d,%d) = %q, want %q", c.done, c.total, c.width, got, c.want)
		}
	}
}

func TestRenderShowsCompletionRatio(t *testing.T) {
	s := walk.New(walk.Sequence())
	s = walk.ToggleComplete(s, s.Walks[0].ID)

	out := uitest.StripANSI(Render(mustTheme(t, "classic"), Frame{State: s, Cursor: -1}))
	if !strings.Contains(out, "1 / 3") {
		t.Fatalf("expected completion ratio 1 / 3 in:\n%s", out)
	}
	for _, want := range []string{"08:00 AM", "Neighborhood", "45 mins", "Add Walk"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRowsMarkCursorAndCompletion(t *testing.T) {
	th := mustTheme(t, "mono")
	s := walk.New(walk.Sequence())
	s = walk.ToggleComplete(s, s.Walks[1].ID)

	rows := Rows(th, s, 2)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !strings.HasPrefix(uitest.StripANSI(rows[2]), "> [ ] 05:00 PM") {
		t.Fatalf("cursor row rendered as %q", rows[2])
	}
	if !strings.HasPrefix(uitest.StripANSI(rows[1]), "  [x] 12:30 PM") {
		t.Fatalf("completed row rendered as %q", rows[1])
	}
}

func TestRowsEmptyList(t *testing.T) {
	rows := Rows(mustTheme(t, "mono"), walk.State{}, 0)
	if len(rows) != 1 || !strings.Contains(rows[0], "No walks scheduled") {
		t.Fatalf("unexpected empty rows %q", rows)
	}
}

func TestSelectViewFollowsFormState(t *testing.T) {
	th := mustTheme(t, "mono")
	s := walk.New(walk.Sequence())

	hidden := uitest.StripANSI(SelectView(th, Frame{State: s}))
	if !strings.Contains(hidden, "Add Walk") || strings.Contains(hidden, "Add New Walk") {
		t.Fatalf("hidden form should show the add button, got %q", hidden)
	}

	s = walk.UpdateDraft(walk.ShowForm(s), walk.FieldLocation, "Riverside")
	visible := uitest.StripANSI(SelectView(th, Frame{State: s, FormErr: "missing"}))
	for _, want := range []string{"Add New Walk", "Time", "Duration", "Location", "Riverside", "missing"} {
		if !strings.Contains(visible, want) {
			t.Fatalf("expected %q in form:\n%s", want, visible)
		}
	}
}

func TestRowsClipLongFields(t *testing.T) {
	s := walk.State{Walks: []walk.Walk{{
		ID: "1", Time: "noon", Duration: "1h",
		Location: strings.Repeat("long trail ", 10),
	}}}
	row := uitest.StripANSI(Rows(mustTheme(t, "mono"), s, -1)[0])
	if !strings.Contains(row, "…") {
		t.Fatalf("expected long location to be clipped: %q", row)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames {
		if th := mustTheme(t, name); th.Name != name {
			t.Fatalf("ThemeByName(%q).Name = %q", name, th.Name)
		}
	}
	if th := DefaultTheme(); th.Name != "classic" {
		t.Fatalf("DefaultTheme().Name = %q, want classic", th.Name)
	}
	if _, err := ThemeByName("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestParseColorMode(t *testing.T) {
	if m, err := ParseColorMode("ALWAYS"); err != nil || m != ColorAlways {
		t.Fatalf("ParseColorMode(ALWAYS) = %q, %v", m, err)
	}
	if m, err := ParseColorMode(""); err != nil || m != ColorAuto {
		t.Fatalf("ParseColorMode(\"\") = %q, %v", m, err)
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Fatalf("expected error for unknown color mode")
	}
}
