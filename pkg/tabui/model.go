// Package tabui is the Bubble Tea front end for the three panels.
package tabui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/marcus/daypick/internal/models"
	"github.com/marcus/daypick/internal/panels"
	"github.com/marcus/daypick/pkg/tabui/keymap"
)

// MinWidth is the minimum terminal width for proper display
const MinWidth = 60

// MinHeight is the minimum terminal height for proper display
const MinHeight = 18

// Model is the main Bubble Tea model for the tab UI
type Model struct {
	State  *panels.State
	Keymap *keymap.Registry

	// Window dimensions
	Width  int
	Height int

	// Panel cursors
	DayCursor   int          // index into models.Weekdays
	FieldCursor panels.Field // focused date selector

	// User input box
	Input   textinput.Model
	Editing bool

	// Overlays
	DateForm *DateForm
	ShowHelp bool

	// Status is a one-line message shown in the footer
	Status string

	// Now is the clock at startup, used for "today"
	Now time.Time

	helpCache *helpRender
}

// helpRender caches the rendered help overlay for one width
type helpRender struct {
	width int
	text  string
}

// NewModel creates a model around state. A nil registry gets the defaults.
func NewModel(state *panels.State, km *keymap.Registry, now time.Time) Model {
	if km == nil {
		km = keymap.NewRegistry()
		keymap.RegisterDefaults(km)
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. MON, TUE or 6/7/2018"
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.SetValue(state.Input())

	m := Model{
		State:     state,
		Keymap:    km,
		Input:     ti,
		Now:       now,
		helpCache: &helpRender{},
	}
	m.DayCursor = weekdayIndex(now.Weekday())
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.DateForm != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	}

	if m.Editing {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateForm routes messages to the open date form
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case tea.KeyMsg:
		// The form context is modal, so only its own bindings are found;
		// every other key drives the form itself.
		if cmd, found := m.Keymap.Lookup(msg, keymap.ContextForm); found {
			if cmd == keymap.CmdFormCancel || cmd == keymap.CmdQuit {
				return m.executeCommand(cmd)
			}
		}
	}

	form, cmd := m.DateForm.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.DateForm.Form = f
	}

	switch m.DateForm.Form.State {
	case huh.StateCompleted:
		m.State.SetDate(m.DateForm.Date())
		m.DateForm = nil
		m.Status = "Date set to " + m.State.Date().String()
		return m, nil
	case huh.StateAborted:
		m.DateForm = nil
		return m, nil
	}

	return m, cmd
}

// handleKey processes key input using the keymap registry
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.currentContext()

	// Typing goes straight into the text box
	if ctx == keymap.ContextEditing && keymap.IsPrintable(msg) {
		return m.forwardToInput(msg)
	}

	cmd, found := m.Keymap.Lookup(msg, ctx)
	if !found {
		if ctx == keymap.ContextEditing {
			return m.forwardToInput(msg)
		}
		return m, nil
	}

	return m.executeCommand(cmd)
}

// forwardToInput passes a key to the text box and mirrors its value
func (m Model) forwardToInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.State.SetInput(m.Input.Value())
	return m, cmd
}

// currentContext returns the keymap context for the current UI state
func (m Model) currentContext() keymap.Context {
	switch {
	case m.ShowHelp:
		return keymap.ContextHelp
	case m.DateForm != nil:
		return keymap.ContextForm
	case m.Editing:
		return keymap.ContextEditing
	}

	switch m.State.ActiveTab() {
	case models.TabDays:
		return keymap.ContextDays
	case models.TabDate:
		return keymap.ContextDate
	case models.TabInput:
		return keymap.ContextInput
	default:
		return keymap.ContextGlobal
	}
}

// View implements tea.Model
func (m Model) View() string {
	return m.renderView()
}

func weekdayIndex(d time.Weekday) int {
	for i, wd := range models.Weekdays {
		if wd == d {
			return i
		}
	}
	return 0
}
