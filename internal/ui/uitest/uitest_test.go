package uitest

import "testing"

func TestStripANSI(t *testing.T) {
	in := "\x1b[1m08:00 AM\x1b[0m  \x1b[38;5;214m1 / 3\x1b[0m"
	if got := StripANSI(in); got != "08:00 AM  1 / 3" {
		t.Fatalf("StripANSI = %q", got)
	}
	if got := StripANSI("plain"); got != "plain" {
		t.Fatalf("StripANSI(plain) = %q", got)
	}
}
