package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode decides whether styles emit escape sequences.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always or never (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}
	return "", fmt.Errorf("color: unknown mode %q (want auto, always or never)", s)
}

// SetColorMode forces or disables color. Auto leaves lipgloss to detect
// the terminal.
func SetColorMode(m ColorMode) {
	switch m {
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
