package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/dogwalk/internal/walk"
)

// Write prints s as indented JSON. Nothing ever reads it back; it is a
// record of the session for scripts, not a store.
func Write(w io.Writer, s walk.State) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
