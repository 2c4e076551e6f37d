package tui

import "github.com/charmbracelet/bubbles/key"

// listKeys are active while the add-form is hidden.
type listKeys struct {
	Up, Down key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Add      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newListKeys() listKeys {
	return listKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x", "enter"), key.WithHelp("space", "done")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:    key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add walk")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Add, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Delete, k.Add},
		{k.Help, k.Quit},
	}
}

// formKeys are active while the add-form is open. Everything else is
// typed into the focused field.
type formKeys struct {
	Next, Prev key.Binding
	Submit     key.Binding
	Save       key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func newFormKeys() formKeys {
	return formKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/save")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Save, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Submit, k.Save, k.Cancel},
		{k.Quit},
	}
}
