package keymap

import (
	"fmt"
	"strings"
)

// HelpSection represents a group of bindings in help text
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// HelpBinding represents a single binding for display
type HelpBinding struct {
	Keys        string // Combined keys like "j / down"
	Description string
}

// helpOrder fixes section order and titles
var helpOrder = []struct {
	Context Context
	Title   string
}{
	{ContextGlobal, "Everywhere"},
	{ContextDays, "Days of the week"},
	{ContextDate, "Date picker"},
	{ContextInput, "User input"},
	{ContextEditing, "While editing text"},
	{ContextForm, "Date form"},
	{ContextHelp, "Help"},
}

// Sections groups the registered bindings by context. Keys bound to the same
// command within a context are merged into one row, in registration order.
func (r *Registry) Sections() []HelpSection {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sections []HelpSection
	for _, o := range helpOrder {
		bindings := r.bindings[o.Context]
		if len(bindings) == 0 {
			continue
		}

		var rows []HelpBinding
		index := make(map[Command]int)
		for _, b := range bindings {
			if i, ok := index[b.Command]; ok {
				rows[i].Keys += " / " + displayKey(b.Key)
				continue
			}
			index[b.Command] = len(rows)
			rows = append(rows, HelpBinding{Keys: displayKey(b.Key), Description: b.Description})
		}
		sections = append(sections, HelpSection{Title: o.Title, Bindings: rows})
	}
	return sections
}

// GenerateHelpMarkdown renders the bindings as a markdown document
func (r *Registry) GenerateHelpMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Key bindings\n")

	for _, s := range r.Sections() {
		sb.WriteString(fmt.Sprintf("\n## %s\n\n", s.Title))
		sb.WriteString("| Keys | Action |\n|---|---|\n")
		for _, b := range s.Bindings {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", escapeCell(b.Keys), b.Description))
		}
	}

	if overrides := r.OverrideCount(); overrides > 0 {
		sb.WriteString(fmt.Sprintf("\n_%d user override(s) active from keymap.json_\n", overrides))
	}

	return sb.String()
}

// displayKey formats a binding key for help text
func displayKey(key string) string {
	switch key {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return key
}

// escapeCell keeps "|" from splitting a markdown table cell
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
