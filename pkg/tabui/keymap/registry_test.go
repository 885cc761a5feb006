package keymap

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if r.bindings == nil {
		t.Error("bindings map not initialized")
	}
	if r.overrides == nil {
		t.Error("overrides map not initialized")
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	for _, ctx := range []Context{ContextGlobal, ContextDays, ContextDate, ContextInput, ContextEditing} {
		if len(r.BindingsForContext(ctx)) == 0 {
			t.Errorf("no bindings registered for %s", ctx)
		}
	}
}

func TestLookup(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	tests := []struct {
		name    string
		key     tea.KeyMsg
		context Context
		want    Command
		found   bool
	}{
		{
			name:    "quit with q in days",
			key:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}},
			context: ContextDays,
			want:    CmdQuit,
			found:   true,
		},
		{
			name:    "j moves cursor in days",
			key:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
			context: ContextDays,
			want:    CmdCursorDown,
			found:   true,
		},
		{
			name:    "j decrements in date",
			key:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
			context: ContextDate,
			want:    CmdDecrement,
			found:   true,
		},
		{
			name:    "space toggles day",
			key:     tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			context: ContextDays,
			want:    CmdToggleDay,
			found:   true,
		},
		{
			name:    "enter runs while editing",
			key:     tea.KeyMsg{Type: tea.KeyEnter},
			context: ContextEditing,
			want:    CmdRun,
			found:   true,
		},
		{
			name:    "enter focuses input",
			key:     tea.KeyMsg{Type: tea.KeyEnter},
			context: ContextInput,
			want:    CmdFocusInput,
			found:   true,
		},
		{
			name:    "tab cycles from any context",
			key:     tea.KeyMsg{Type: tea.KeyTab},
			context: ContextDate,
			want:    CmdNextTab,
			found:   true,
		},
		{
			name:    "unknown key returns not found",
			key:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}},
			context: ContextDays,
			want:    "",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := r.Lookup(tt.key, tt.context)
			if found != tt.found {
				t.Errorf("Lookup() found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("Lookup() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiKeySequence(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	g := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}
	cmd, found := r.Lookup(g, ContextDays)
	if found {
		t.Errorf("first 'g' should not find a command, got %s", cmd)
	}
	if r.Pending() != "g" {
		t.Error("should have pending 'g' after first key")
	}

	cmd, found = r.Lookup(g, ContextDays)
	if !found || cmd != CmdCursorTop {
		t.Errorf("second 'g' = %s, %v; want CmdCursorTop", cmd, found)
	}
	if r.Pending() != "" {
		t.Error("pending should be cleared after sequence")
	}
}

func TestSequenceFallsBackToSingleKey(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	r.Lookup(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, ContextDays)
	cmd, found := r.Lookup(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, ContextDays)
	if !found || cmd != CmdCursorDown {
		t.Errorf("g then j = %s, %v; want CmdCursorDown", cmd, found)
	}
}

func TestUserOverride(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	r.SetUserOverride(ContextDays, "j", CmdToggleDay)

	if cmd, _ := r.Lookup(key, ContextDays); cmd != CmdToggleDay {
		t.Errorf("overridden 'j' in days = %s, want CmdToggleDay", cmd)
	}
	if cmd, _ := r.Lookup(key, ContextDate); cmd != CmdDecrement {
		t.Errorf("'j' in date = %s, want CmdDecrement", cmd)
	}
}

func TestContextOverridesGlobal(t *testing.T) {
	r := NewRegistry()
	r.RegisterBindings(
		Binding{Key: "enter", Command: CmdRun, Context: ContextGlobal},
		Binding{Key: "enter", Command: CmdEditDate, Context: ContextDate},
	)

	key := tea.KeyMsg{Type: tea.KeyEnter}
	if cmd, _ := r.Lookup(key, ContextDate); cmd != CmdEditDate {
		t.Errorf("date context should override global, got %s", cmd)
	}
	if cmd, _ := r.Lookup(key, ContextDays); cmd != CmdRun {
		t.Errorf("days context should fall back to global, got %s", cmd)
	}
}

func TestSequenceExpires(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	now := time.Date(2018, 7, 6, 9, 0, 0, 0, time.UTC)
	r.clock = func() time.Time { return now }

	g := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}
	r.Lookup(g, ContextDays)
	now = now.Add(sequenceTimeout)

	if pk := r.Pending(); pk != "" {
		t.Errorf("Pending() = %q after timeout", pk)
	}
	// The late second g starts a new sequence instead of completing one
	if cmd, found := r.Lookup(g, ContextDays); found {
		t.Errorf("late g = %s, want pending", cmd)
	}
	if r.Pending() != "g" {
		t.Error("late g should be held as a new sequence start")
	}
}

func TestModalContextsIgnoreGlobal(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	r.SetUserOverride(ContextGlobal, "x", CmdRun)

	tests := []struct {
		name    string
		key     tea.KeyMsg
		context Context
		want    Command
		found   bool
	}{
		{"r does not run behind help", runes('r'), ContextHelp, "", false},
		{"tab does not switch behind help", tea.KeyMsg{Type: tea.KeyTab}, ContextHelp, "", false},
		{"2 does not switch behind help", runes('2'), ContextHelp, "", false},
		{"global override ignored in help", runes('x'), ContextHelp, "", false},
		{"q closes help", runes('q'), ContextHelp, CmdClose, true},
		{"ctrl+c quits from help", tea.KeyMsg{Type: tea.KeyCtrlC}, ContextHelp, CmdQuit, true},
		{"q ignored in form", runes('q'), ContextForm, "", false},
		{"esc cancels form", tea.KeyMsg{Type: tea.KeyEsc}, ContextForm, CmdFormCancel, true},
		{"ctrl+c quits from form", tea.KeyMsg{Type: tea.KeyCtrlC}, ContextForm, CmdQuit, true},
		{"global override applies in date", runes('x'), ContextDate, CmdRun, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := r.Lookup(tt.key, tt.context)
			if got != tt.want || found != tt.found {
				t.Errorf("Lookup() = %q, %v; want %q, %v", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestBindingsForContext(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	days := r.BindingsForContext(ContextDays)
	if len(days) == 0 || days[0].Context != ContextDays {
		t.Fatalf("days bindings should come first, got %+v", days)
	}
	if last := days[len(days)-1]; last.Context != ContextGlobal {
		t.Errorf("global bindings should follow, last = %+v", last)
	}

	for _, b := range r.BindingsForContext(ContextHelp) {
		if b.Context != ContextHelp {
			t.Errorf("help should only list its own bindings, got %+v", b)
		}
	}
}

func runes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyToString(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, "tab"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "enter"},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c"},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, "ctrl+r"},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, "shift+tab"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "space"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, "j"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, "G"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := KeyToString(tt.key); got != tt.want {
				t.Errorf("KeyToString() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIsPrintable(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true},
		{tea.KeyMsg{Type: tea.KeyTab}, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}

	for _, tt := range tests {
		name := KeyToString(tt.key)
		t.Run(name, func(t *testing.T) {
			if got := IsPrintable(tt.key); got != tt.want {
				t.Errorf("IsPrintable(%s) = %v, want %v", name, got, tt.want)
			}
		})
	}
}

func TestGenerateHelpMarkdown(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	md := r.GenerateHelpMarkdown()
	for _, want := range []string{
		"# Key bindings",
		"## Days of the week",
		"## Date picker",
		"| j / ↓ | Next day |",
		"| q / ctrl+c | Quit |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("help markdown missing %q", want)
		}
	}
	if strings.Contains(md, "override") {
		t.Error("no overrides set, but help mentions them")
	}

	r.SetUserOverride(ContextDays, "t", CmdToggleDay)
	if !strings.Contains(r.GenerateHelpMarkdown(), "1 user override(s)") {
		t.Error("help should report user overrides")
	}
}
