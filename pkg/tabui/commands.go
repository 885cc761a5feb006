package tabui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/daypick/internal/models"
	"github.com/marcus/daypick/internal/panels"
	"github.com/marcus/daypick/pkg/tabui/keymap"
)

// executeCommand runs a keymap command against the model
func (m Model) executeCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	slog.Debug("tabui: command", "cmd", cmd, "tab", m.State.ActiveTab())

	switch cmd {
	case keymap.CmdQuit:
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		m.ShowHelp = !m.ShowHelp
		return m, nil

	case keymap.CmdClose:
		m.ShowHelp = false
		return m, nil

	case keymap.CmdRun:
		return m.run()

	// Tabs
	case keymap.CmdNextTab:
		m.State.Nav().Next()
		return m.afterTabChange(), nil
	case keymap.CmdPrevTab:
		m.State.Nav().Prev()
		return m.afterTabChange(), nil
	case keymap.CmdTabDays:
		m.State.SelectTab(models.TabDays)
		return m.afterTabChange(), nil
	case keymap.CmdTabDate:
		m.State.SelectTab(models.TabDate)
		return m.afterTabChange(), nil
	case keymap.CmdTabInput:
		m.State.SelectTab(models.TabInput)
		return m.afterTabChange(), nil

	// Days of the week
	case keymap.CmdCursorDown:
		if m.DayCursor < len(models.Weekdays)-1 {
			m.DayCursor++
		}
		return m, nil
	case keymap.CmdCursorUp:
		if m.DayCursor > 0 {
			m.DayCursor--
		}
		return m, nil
	case keymap.CmdCursorTop:
		m.DayCursor = 0
		return m, nil
	case keymap.CmdCursorBottom:
		m.DayCursor = len(models.Weekdays) - 1
		return m, nil
	case keymap.CmdToggleDay:
		m.State.ToggleWeekday(models.Weekdays[m.DayCursor])
		return m, nil
	case keymap.CmdCheckAll:
		m.State.SetWeekdays(models.NewWeekdaySet(models.Weekdays...))
		return m, nil
	case keymap.CmdCheckNone:
		m.State.SetWeekdays(0)
		return m, nil

	// Date picker
	case keymap.CmdCursorLeft:
		if m.FieldCursor > panels.FieldDay {
			m.FieldCursor--
		}
		return m, nil
	case keymap.CmdCursorRight:
		if m.FieldCursor < panels.FieldYear {
			m.FieldCursor++
		}
		return m, nil
	case keymap.CmdIncrement:
		m.State.Selector(m.FieldCursor).Step(1)
		return m, nil
	case keymap.CmdDecrement:
		m.State.Selector(m.FieldCursor).Step(-1)
		return m, nil
	case keymap.CmdToday:
		m.State.SetDate(models.DateOf(m.Now))
		return m, nil
	case keymap.CmdEditDate:
		m.DateForm = NewDateForm(m.State)
		return m, m.DateForm.Form.Init()
	case keymap.CmdFormCancel:
		m.DateForm = nil
		return m, nil

	// User input
	case keymap.CmdFocusInput:
		m.Editing = true
		return m, m.Input.Focus()
	case keymap.CmdBlurInput:
		m.Editing = false
		m.Input.Blur()
		return m, nil
	case keymap.CmdClearInput:
		m.Input.SetValue("")
		m.State.SetInput("")
		return m, nil
	}

	slog.Debug("tabui: unhandled command", "cmd", cmd)
	return m, nil
}

// run presses Run and reports what happened in the footer
func (m Model) run() (tea.Model, tea.Cmd) {
	m.State.SetInput(m.Input.Value())
	out := m.State.Run()

	switch {
	case out.Interpreted == nil:
		m.Status = ""
	case out.Interpreted.Activate == "":
		m.Status = "Nothing recognized in input"
	default:
		m.Status = fmt.Sprintf("Applied %v, switched to %s", out.Interpreted.Applied, out.Interpreted.Activate.Title())
	}

	return m.afterTabChange(), nil
}

// afterTabChange stops editing when the input tab is no longer shown
func (m Model) afterTabChange() Model {
	if m.Editing && m.State.ActiveTab() != models.TabInput {
		m.Editing = false
		m.Input.Blur()
	}
	return m
}
