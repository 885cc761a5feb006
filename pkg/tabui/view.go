package tabui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/daypick/internal/models"
	"github.com/marcus/daypick/internal/output"
	"github.com/marcus/daypick/internal/panels"
	"github.com/marcus/daypick/pkg/tabui/keymap"
)

// renderView renders the complete TUI view
func (m Model) renderView() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	if m.Width < MinWidth || m.Height < MinHeight {
		return m.renderCompact()
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	innerWidth := m.Width - 4

	header := titleStyle.Render("daypick") + "  " + subtleStyle.Render(output.FormatClock(m.Now))
	tabs := m.renderTabBar()
	panel := panelStyle.Width(innerWidth).Render(m.renderPanel())
	result := resultStyle.Width(innerWidth).Render(
		subtleStyle.Render("Result: ") + truncate(m.State.Result(), innerWidth-10))
	footer := m.renderFooter()

	base := lipgloss.JoinVertical(lipgloss.Left, header, tabs, panel, result, footer)

	if m.DateForm != nil {
		modal := modalStyle.Render(titleStyle.Render("Edit date") + "\n\n" + m.DateForm.Form.View())
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal,
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")))
	}

	return base
}

// renderCompact renders a minimal view for small terminals
func (m Model) renderCompact() string {
	var s strings.Builder

	s.WriteString("daypick (resize for full view)\n\n")
	s.WriteString(fmt.Sprintf("Tab: %s\n", m.State.ActiveTab().Title()))
	s.WriteString(fmt.Sprintf("Days: %s\n", m.State.Weekdays()))
	s.WriteString(fmt.Sprintf("Date: %s\n", m.State.Date()))
	s.WriteString(fmt.Sprintf("Result: %s\n", truncate(m.State.Result(), m.Width-8)))
	s.WriteString("\nq:quit r:run tab:switch")

	return s.String()
}

// renderTabBar renders the numbered tab headers
func (m Model) renderTabBar() string {
	active := m.State.ActiveTab()
	var cells []string
	for i, t := range m.State.Nav().Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t.Title())
		if t == active {
			cells = append(cells, activeTabStyle.Render(label))
		} else {
			cells = append(cells, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderPanel renders the body of the active tab
func (m Model) renderPanel() string {
	switch m.State.ActiveTab() {
	case models.TabDays:
		return m.renderDays()
	case models.TabDate:
		return m.renderDate()
	case models.TabInput:
		return m.renderInput()
	default:
		return ""
	}
}

// renderDays renders one checkbox per weekday
func (m Model) renderDays() string {
	var s strings.Builder
	for i, d := range models.Weekdays {
		box := "[ ]"
		if m.State.IsChecked(d) {
			box = checkedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", box, d)
		if i == m.DayCursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		s.WriteString(line)
		if i < len(models.Weekdays)-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

// renderDate renders the three selectors side by side
func (m Model) renderDate() string {
	var cells []string
	for _, f := range panels.Fields {
		sel := m.State.Selector(f)
		label := fmt.Sprintf("%s ‹ %d ›", f, sel.Value())
		if f == m.FieldCursor {
			cells = append(cells, activeFieldStyle.Render(label))
		} else {
			cells = append(cells, fieldStyle.Render(label))
		}
	}

	window := m.State.Window()
	hint := subtleStyle.Render(fmt.Sprintf("years %d-%d  ·  e: edit in form  ·  t: today", window.First, window.Last))
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n\n" + hint
}

// renderInput renders the free text box
func (m Model) renderInput() string {
	hint := "i: edit  ·  r: run"
	if m.Editing {
		hint = "enter: run  ·  esc: stop editing"
	}
	return m.Input.View() + "\n\n" + subtleStyle.Render(hint)
}

// renderFooter renders key hints, a pending key sequence and the status line
func (m Model) renderFooter() string {
	line := helpStyle.Render(strings.Join(m.footerHints(), "  "))

	if pk := m.Keymap.Pending(); pk != "" {
		line += "  " + statusStyle.Render(pk+"…")
	}
	if m.Status != "" {
		line += "  " + statusStyle.Render(m.Status)
	}
	return truncate(line, m.Width)
}

// footerHints lists one key per command reachable from the current context,
// panel commands first
func (m Model) footerHints() []string {
	var hints []string
	seen := make(map[keymap.Command]bool)
	for _, b := range m.Keymap.BindingsForContext(m.currentContext()) {
		if seen[b.Command] {
			continue
		}
		seen[b.Command] = true
		hints = append(hints, b.Key+":"+strings.ToLower(b.Description))
	}
	return hints
}

// renderHelp renders the key binding reference as markdown
func (m Model) renderHelp() string {
	width := m.Width - 4
	if m.helpCache != nil && m.helpCache.width == width && m.helpCache.text != "" {
		return m.helpCache.text
	}

	md := m.Keymap.GenerateHelpMarkdown() + "\nPress ? or esc to close help\n"
	text, err := output.RenderMarkdownWithWidth(md, width)
	if err != nil {
		text = md
	}
	if m.helpCache != nil {
		m.helpCache.width = width
		m.helpCache.text = text
	}
	return text
}

// truncate shortens s to width cells, keeping ANSI styling intact
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
