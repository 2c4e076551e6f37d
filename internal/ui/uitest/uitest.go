// Package uitest holds helpers for tests that inspect rendered views.
package uitest

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// StripANSI removes escape sequences, leaving only printable text.
func StripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
