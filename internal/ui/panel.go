package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar of width cells followed by the percentage.
func ProgressBar(t Theme, done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled, pct := 0, 0
	if total > 0 {
		filled = done * width / total
		pct = done * 100 / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames inner with the theme border. A positive width fixes the
// outer width of the box.
func Panel(t Theme, inner string, width int) string {
	st := lipgloss.NewStyle().
		Border(t.Border).
		Padding(0, 1)
	if t.BorderColor != nil {
		st = st.BorderForeground(t.BorderColor)
	}
	if width > 0 {
		// lipgloss widths exclude the border.
		st = st.Width(width - 2)
	}
	return st.Render(inner)
}
