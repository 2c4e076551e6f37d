package walk

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIncompleteDraft is returned by Add when a draft field is empty.
var ErrIncompleteDraft = errors.New("time, duration and location are required")

// FormState is the visibility of the add-form.
type FormState int

const (
	FormHidden FormState = iota
	FormVisible
)

func (f FormState) String() string {
	if f == FormVisible {
		return "visible"
	}
	return "hidden"
}

func (f FormState) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *FormState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "hidden", "":
		*f = FormHidden
	case "visible":
		*f = FormVisible
	default:
		return fmt.Errorf("form state: unknown value %q", b)
	}
	return nil
}

// State is everything the scheduler view owns. Operations below never
// modify their input; they return the next state.
type State struct {
	Walks []Walk    `json:"walks"`
	Draft Draft     `json:"draft"`
	Form  FormState `json:"form"`
}

// New returns the initial schedule: three example walks, form hidden.
func New(ids IDFunc) State {
	seed := []Walk{
		{Time: "08:00 AM", Duration: "30 mins", Location: "Park"},
		{Time: "12:30 PM", Duration: "20 mins", Location: "Neighborhood"},
		{Time: "05:00 PM", Duration: "45 mins", Location: "Trail"},
	}
	for i := range seed {
		seed[i].ID = ids()
	}
	return State{Walks: seed, Form: FormHidden}
}

// Find looks a walk up by id.
func Find(s State, id string) (Walk, bool) {
	i := index(s, id)
	if i < 0 {
		return Walk{}, false
	}
	return s.Walks[i], true
}

// ToggleComplete flips the completed flag of the walk with id.
// Unknown ids leave s unchanged.
func ToggleComplete(s State, id string) State {
	i := index(s, id)
	if i < 0 {
		return s
	}
	s.Walks = slices.Clone(s.Walks)
	s.Walks[i].Completed = !s.Walks[i].Completed
	return s
}

// Delete removes the walk with id. Unknown ids leave s unchanged.
func Delete(s State, id string) State {
	i := index(s, id)
	if i < 0 {
		return s
	}
	s.Walks = slices.Delete(slices.Clone(s.Walks), i, i+1)
	return s
}

// UpdateDraft replaces a single draft field.
func UpdateDraft(s State, f Field, value string) State {
	s.Draft = s.Draft.Set(f, value)
	return s
}

// ShowForm reveals the add-form.
func ShowForm(s State) State {
	s.Form = FormVisible
	return s
}

// CancelForm clears the draft and hides the form. Walks are untouched.
func CancelForm(s State) State {
	s.Draft = Draft{}
	s.Form = FormHidden
	return s
}

// Add commits the draft as a new walk at the end of the list, then
// clears the draft and hides the form. Values are stored as typed. With
// an empty field it returns s unchanged and ErrIncompleteDraft.
func Add(s State, ids IDFunc) (State, error) {
	if !s.Draft.Complete() {
		return s, ErrIncompleteDraft
	}
	w := Walk{
		ID:       ids(),
		Time:     s.Draft.Time,
		Duration: s.Draft.Duration,
		Location: s.Draft.Location,
	}
	s.Walks = append(slices.Clip(s.Walks), w)
	s.Draft = Draft{}
	s.Form = FormHidden
	return s, nil
}

// CompletedCount counts completed walks.
func CompletedCount(s State) int {
	n := 0
	for _, w := range s.Walks {
		if w.Completed {
			n++
		}
	}
	return n
}

func index(s State, id string) int {
	return slices.IndexFunc(s.Walks, func(w Walk) bool { return w.ID == id })
}
