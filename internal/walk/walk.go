package walk

import "github.com/google/uuid"

// Walk is one scheduled dog walk.
type Walk struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Duration  string `json:"duration"`
	Location  string `json:"location"`
	Completed bool   `json:"completed"`
}

// Draft holds the add-form values that have not been committed yet.
type Draft struct {
	Time     string `json:"time"`
	Duration string `json:"duration"`
	Location string `json:"location"`
}

// Field names one editable draft field.
type Field int

const (
	FieldTime Field = iota
	FieldDuration
	FieldLocation
)

// Fields lists the draft fields in form order.
var Fields = []Field{FieldTime, FieldDuration, FieldLocation}

func (f Field) String() string {
	switch f {
	case FieldTime:
		return "time"
	case FieldDuration:
		return "duration"
	case FieldLocation:
		return "location"
	default:
		return "unknown"
	}
}

// Get returns the draft value for f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldTime:
		return d.Time
	case FieldDuration:
		return d.Duration
	case FieldLocation:
		return d.Location
	}
	return ""
}

// Set returns a copy of d with only f replaced.
func (d Draft) Set(f Field, v string) Draft {
	switch f {
	case FieldTime:
		d.Time = v
	case FieldDuration:
		d.Duration = v
	case FieldLocation:
		d.Location = v
	}
	return d
}

// Complete reports whether every field is non-empty. Whitespace counts
// as content.
func (d Draft) Complete() bool {
	for _, f := range Fields {
		if d.Get(f) == "" {
			return false
		}
	}
	return true
}

// IDFunc produces walk identifiers. Every call must return a value
// never returned before.
type IDFunc func() string

// NewID is the default IDFunc.
func NewID() string { return uuid.NewString() }
