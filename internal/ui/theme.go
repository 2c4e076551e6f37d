package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, glyphs and the panel border.
// Render pulls everything it draws from a Theme.
type Theme struct {
	Name string

	Title, Subtitle, Muted, Accent lipgloss.Style
	Success, Pending, Error        lipgloss.Style
	Done, Selected, Button         lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDuration, SymLocation string
	SymCursor, SymAdd        string
	BarFull, BarEmpty        string
}

// ThemeNames lists the themes accepted by ThemeByName.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme. Empty selects classic.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return DefaultTheme(), nil
	case "neon":
		return neon(), nil
	case "mono":
		return mono(), nil
	}
	return Theme{}, fmt.Errorf("theme: unknown theme %q (want one of %s)", name, strings.Join(ThemeNames, ", "))
}

// DefaultTheme is the classic theme.
func DefaultTheme() Theme { return classic() }

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Subtitle:    lipgloss.NewStyle().Faint(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Done:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Button:      lipgloss.NewStyle().Background(lipgloss.Color("214")).Foreground(lipgloss.Color("0")).Bold(true).Padding(0, 2),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),

		BoxUnchecked: "○", BoxChecked: "●",
		SymDuration: "◷", SymLocation: "⌂",
		SymCursor: "›", SymAdd: "+",
		BarFull: "█", BarEmpty: "░",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("118"))
	t.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	t.Button = lipgloss.NewStyle().Background(lipgloss.Color("213")).Foreground(lipgloss.Color("0")).Bold(true).Padding(0, 2)
	t.BorderColor = lipgloss.Color("213")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:     "mono",
		Title:    plain,
		Subtitle: plain,
		Muted:    plain,
		Accent:   plain,
		Success:  plain,
		Pending:  plain,
		Error:    plain,
		Done:     plain,
		Selected: plain,
		Button:   plain,
		Border:   lipgloss.NormalBorder(),

		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDuration: "dur:", SymLocation: "at:",
		SymCursor: ">", SymAdd: "+",
		BarFull: "#", BarEmpty: "-",
	}
}
