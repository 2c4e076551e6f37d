package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/idilsaglam/dogwalk/internal/walk"
)

const (
	heading    = "Dog Walk Schedule"
	subheading = "Keep track of your furry friend's daily walks"
	barWidth   = 24
	maxField   = 40
)

// Frame is everything one screen is drawn from.
type Frame struct {
	State walk.State

	// Cursor is the highlighted row; negative hides the marker.
	Cursor int

	// Inputs holds the rendered form widgets in walk.Fields order.
	// When empty the draft values are printed instead.
	Inputs  []string
	Focus   walk.Field
	FormErr string

	Help  string
	Width int
}

// Render draws f with t. It has no side effects.
func Render(t Theme, f Frame) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(heading))
	b.WriteString("\n")
	b.WriteString(t.Subtitle.Render(subheading))
	b.WriteString("\n\n")
	b.WriteString(Summary(t, f.State))
	b.WriteString("\n\n")
	for _, ln := range Rows(t, f.State, f.Cursor) {
		b.WriteString(ln)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SelectView(t, f))

	out := Panel(t, b.String(), f.Width)
	if f.Help != "" {
		out += "\n" + f.Help
	}
	return out
}

// Summary is the completion ratio with a progress bar.
func Summary(t Theme, s walk.State) string {
	done, total := walk.CompletedCount(s), len(s.Walks)
	return fmt.Sprintf("%s  %s\n%s",
		t.Muted.Render("Walks completed today"),
		t.Accent.Render(fmt.Sprintf("%d / %d", done, total)),
		t.Muted.Render(ProgressBar(t, done, total, barWidth)),
	)
}

// Rows renders one line per walk in list order.
func Rows(t Theme, s walk.State, cursor int) []string {
	if len(s.Walks) == 0 {
		return []string{t.Muted.Render("No walks scheduled")}
	}
	out := make([]string, 0, len(s.Walks))
	for i, w := range s.Walks {
		prefix := "  "
		if i == cursor {
			prefix = t.Selected.Render(t.SymCursor) + " "
		}
		box := t.Pending.Render(t.BoxUnchecked)
		when := t.Title.Render(clip(w.Time))
		if w.Completed {
			box = t.Success.Render(t.BoxChecked)
			when = t.Done.Render(clip(w.Time))
		}
		details := t.Muted.Render(fmt.Sprintf("%s %s  %s %s",
			t.SymDuration, clip(w.Duration), t.SymLocation, clip(w.Location)))
		out = append(out, fmt.Sprintf("%s%s %s  %s", prefix, box, when, details))
	}
	return out
}

// SelectView picks what sits under the list: the add-form when it is
// visible, otherwise the add button.
func SelectView(t Theme, f Frame) string {
	switch f.State.Form {
	case walk.FormVisible:
		return FormSection(t, f)
	default:
		return AddButton(t)
	}
}

// AddButton is shown while the form is hidden.
func AddButton(t Theme) string {
	return t.Button.Render(t.SymAdd + " Add Walk")
}

var fieldLabels = map[walk.Field]string{
	walk.FieldTime:     "Time",
	walk.FieldDuration: "Duration",
	walk.FieldLocation: "Location",
}

// FormSection draws the three-field add-form.
func FormSection(t Theme, f Frame) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Add New Walk"))
	b.WriteString("\n")
	for i, field := range walk.Fields {
		label := fmt.Sprintf("%-9s", fieldLabels[field])
		if field == f.Focus {
			label = t.Selected.Render(label)
		} else {
			label = t.Muted.Render(label)
		}
		value := f.State.Draft.Get(field)
		if i < len(f.Inputs) {
			value = f.Inputs[i]
		}
		b.WriteString(label + " " + value + "\n")
	}
	if f.FormErr != "" {
		b.WriteString(t.Error.Render(f.FormErr) + "\n")
	}
	b.WriteString(t.Muted.Render("enter next/save · ctrl+s save · esc cancel"))
	return b.String()
}

func clip(s string) string {
	return truncate.StringWithTail(s, maxField, "…")
}
