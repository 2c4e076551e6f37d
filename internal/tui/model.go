package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/dogwalk/internal/ui"
	"github.com/idilsaglam/dogwalk/internal/walk"
)

const numFields = 3

// Options configure a Model.
type Options struct {
	Theme  ui.Theme
	IDs    walk.IDFunc
	Logger *slog.Logger
}

// Model is the Bubble Tea model for the walk scheduler. All schedule
// data lives in state; the text inputs only mirror the draft.
type Model struct {
	state walk.State
	ids   walk.IDFunc
	theme ui.Theme
	log   *slog.Logger

	cursor  int
	inputs  [numFields]textinput.Model
	focus   int
	formErr string

	list  listKeys
	form  formKeys
	help  help.Model
	width int
}

// New wraps s in an interactive model.
func New(s walk.State, opts Options) Model {
	if opts.IDs == nil {
		opts.IDs = walk.NewID
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Theme.Name == "" {
		opts.Theme = ui.DefaultTheme()
	}
	m := Model{
		state: s,
		ids:   opts.IDs,
		theme: opts.Theme,
		log:   opts.Logger,
		list:  newListKeys(),
		form:  newFormKeys(),
		help:  help.New(),
	}

	placeholders := [numFields]string{"08:00 AM", "30 mins", "Park"}
	limits := [numFields]int{12, 32, 64}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.SetValue(s.Draft.Get(walk.Fields[i]))
		m.inputs[i] = ti
	}
	if s.Form == walk.FormVisible {
		m.inputs[0].Focus()
	}
	return m
}

// State returns the current schedule.
func (m Model) State() walk.State { return m.state }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.state.Form == walk.FormVisible {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	// cursor blink and friends
	if m.state.Form == walk.FormVisible {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.list.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.list.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.list.Down):
		if m.cursor < len(m.state.Walks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.list.Toggle):
		if id, ok := m.selected(); ok {
			m.state = walk.ToggleComplete(m.state, id)
			w, _ := walk.Find(m.state, id)
			m.log.Info("walk toggled", "id", id, "completed", w.Completed)
		}
	case key.Matches(msg, m.list.Delete):
		if id, ok := m.selected(); ok {
			m.state = walk.Delete(m.state, id)
			m.clampCursor()
			m.log.Info("walk deleted", "id", id, "remaining", len(m.state.Walks))
		}
	case key.Matches(msg, m.list.Add):
		m.state = walk.ShowForm(m.state)
		m.formErr = ""
		return m, m.focusField(0)
	case key.Matches(msg, m.list.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.form.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.form.Cancel):
		m.state = walk.CancelForm(m.state)
		m.resetInputs()
		return m, nil
	case key.Matches(msg, m.form.Next):
		return m, m.focusField((m.focus + 1) % numFields)
	case key.Matches(msg, m.form.Prev):
		return m, m.focusField((m.focus + numFields - 1) % numFields)
	case key.Matches(msg, m.form.Submit):
		if m.focus < numFields-1 {
			return m, m.focusField(m.focus + 1)
		}
		return m.commit()
	case key.Matches(msg, m.form.Save):
		return m.commit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.state = walk.UpdateDraft(m.state, walk.Fields[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

func (m Model) commit() (tea.Model, tea.Cmd) {
	next, err := walk.Add(m.state, m.ids)
	if err != nil {
		m.formErr = fmt.Sprintf("Cannot save: %v", err)
		m.log.Debug("walk rejected", "draft", m.state.Draft)
		return m, nil
	}
	m.state = next
	m.resetInputs()
	m.cursor = len(m.state.Walks) - 1
	w := m.state.Walks[m.cursor]
	m.log.Info("walk added", "id", w.ID, "time", w.Time, "duration", w.Duration, "location", w.Location)
	return m, nil
}

func (m *Model) focusField(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *Model) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.formErr = ""
}

func (m Model) selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Walks) {
		return "", false
	}
	return m.state.Walks[m.cursor].ID, true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Walks) {
		m.cursor = len(m.state.Walks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	f := ui.Frame{
		State:   m.state,
		Cursor:  m.cursor,
		Focus:   walk.Fields[m.focus],
		FormErr: m.formErr,
		Width:   m.width,
	}
	if m.state.Form == walk.FormVisible {
		f.Cursor = -1
		f.Inputs = make([]string, 0, numFields)
		for i := range m.inputs {
			f.Inputs = append(f.Inputs, m.inputs[i].View())
		}
		f.Help = m.help.View(m.form)
	} else {
		f.Help = m.help.View(m.list)
	}
	return ui.Render(m.theme, f)
}

// Run starts the interactive program on the alternate screen and returns
// the schedule as it stood when the user quit.
func Run(ctx context.Context, s walk.State, opts Options, progOpts ...tea.ProgramOption) (walk.State, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log.Info("session started", "walks", len(s.Walks))

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(New(s, opts), progOpts...)
	final, err := p.Run()
	if err != nil {
		return s, fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return s, nil
	}
	out := fm.State()
	log.Info("session ended", "walks", len(out.Walks), "completed", walk.CompletedCount(out))
	return out, nil
}
