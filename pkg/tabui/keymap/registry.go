package keymap

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const sequenceTimeout = 500 * time.Millisecond

// Context represents a UI context for keybindings
type Context string

const (
	ContextGlobal  Context = "global"
	ContextDays    Context = "days"    // Days of the week tab
	ContextDate    Context = "date"    // Date picker tab
	ContextInput   Context = "input"   // User input tab, text box not focused
	ContextEditing Context = "editing" // Text box focused; printable keys go to the box
	ContextForm    Context = "form"    // Date edit form open
	ContextHelp    Context = "help"    // Help overlay open
)

// Contexts lists every context in help order
var Contexts = []Context{
	ContextGlobal, ContextDays, ContextDate, ContextInput,
	ContextEditing, ContextForm, ContextHelp,
}

// modal contexts own the keyboard: global bindings are not consulted
var modal = map[Context]bool{
	ContextForm: true,
	ContextHelp: true,
}

// scope lists the contexts searched for a key pressed in active, most
// specific first
func scope(active Context) []Context {
	switch {
	case active == "" || active == ContextGlobal:
		return []Context{ContextGlobal}
	case modal[active]:
		return []Context{active}
	default:
		return []Context{active, ContextGlobal}
	}
}

// Command represents a named command that can be triggered by key bindings
type Command string

const (
	CmdQuit       Command = "quit"
	CmdToggleHelp Command = "toggle-help"
	CmdRun        Command = "run"

	CmdNextTab  Command = "next-tab"
	CmdPrevTab  Command = "prev-tab"
	CmdTabDays  Command = "tab-days"
	CmdTabDate  Command = "tab-date"
	CmdTabInput Command = "tab-input"

	CmdCursorUp     Command = "cursor-up"
	CmdCursorDown   Command = "cursor-down"
	CmdCursorLeft   Command = "cursor-left"
	CmdCursorRight  Command = "cursor-right"
	CmdCursorTop    Command = "cursor-top"
	CmdCursorBottom Command = "cursor-bottom"

	CmdToggleDay  Command = "toggle-day"
	CmdCheckAll   Command = "check-all"
	CmdCheckNone  Command = "check-none"
	CmdIncrement  Command = "increment"
	CmdDecrement  Command = "decrement"
	CmdToday      Command = "today"
	CmdEditDate   Command = "edit-date"
	CmdFocusInput Command = "focus-input"
	CmdBlurInput  Command = "blur-input"
	CmdClearInput Command = "clear-input"

	CmdClose      Command = "close"
	CmdFormCancel Command = "form-cancel"
)

// Binding maps a key or key sequence to a command in a specific context
type Binding struct {
	Key         string  // "tab", "ctrl+r", "g g"
	Command     Command
	Context     Context
	Description string
}

// Registry resolves key presses to commands. User overrides shadow the
// default bindings of the same context.
type Registry struct {
	mu        sync.Mutex
	bindings  map[Context][]Binding
	overrides map[Context]map[string]Command

	pending   string
	pendingAt time.Time
	clock     func() time.Time
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[Context][]Binding),
		overrides: make(map[Context]map[string]Command),
		clock:     time.Now,
	}
}

// RegisterBindings adds bindings in order; earlier keys win within a context
func (r *Registry) RegisterBindings(bindings ...Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range bindings {
		r.bindings[b.Context] = append(r.bindings[b.Context], b)
	}
}

// SetUserOverride binds key to cmd in ctx, ahead of the defaults
func (r *Registry) SetUserOverride(ctx Context, key string, cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overrides[ctx] == nil {
		r.overrides[ctx] = make(map[string]Command)
	}
	r.overrides[ctx][key] = cmd
}

// OverrideCount returns the number of user overrides
func (r *Registry) OverrideCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.overrides {
		n += len(m)
	}
	return n
}

// Lookup resolves a key press in the active context. A key that starts a
// sequence ("g" of "g g") is held for sequenceTimeout and reports not found.
func (r *Registry) Lookup(msg tea.KeyMsg, active Context) (Command, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := KeyToString(msg)
	contexts := scope(active)

	if prev := r.takePending(); prev != "" {
		if cmd, ok := r.resolve(prev+" "+key, contexts); ok {
			return cmd, true
		}
	}

	if r.startsSequence(key, contexts) {
		r.pending = key
		r.pendingAt = r.clock()
		return "", false
	}

	return r.resolve(key, contexts)
}

// takePending returns and clears the held key, if it has not expired
func (r *Registry) takePending() string {
	prev := r.pending
	r.pending = ""
	if prev == "" || r.clock().Sub(r.pendingAt) >= sequenceTimeout {
		return ""
	}
	return prev
}

// resolve checks overrides for every context in scope, then bindings
func (r *Registry) resolve(key string, contexts []Context) (Command, bool) {
	for _, ctx := range contexts {
		if cmd, ok := r.overrides[ctx][key]; ok {
			return cmd, true
		}
	}
	for _, ctx := range contexts {
		for _, b := range r.bindings[ctx] {
			if b.Key == key {
				return b.Command, true
			}
		}
	}
	return "", false
}

func (r *Registry) startsSequence(key string, contexts []Context) bool {
	prefix := key + " "
	for _, ctx := range contexts {
		for _, b := range r.bindings[ctx] {
			if strings.HasPrefix(b.Key, prefix) {
				return true
			}
		}
		for k := range r.overrides[ctx] {
			if strings.HasPrefix(k, prefix) {
				return true
			}
		}
	}
	return false
}

// Pending returns the held first key of a sequence, for display
func (r *Registry) Pending() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == "" || r.clock().Sub(r.pendingAt) >= sequenceTimeout {
		return ""
	}
	return r.pending
}

// BindingsForContext returns the default bindings reachable from ctx, most
// specific first. Modal contexts return only their own bindings.
func (r *Registry) BindingsForContext(ctx Context) []Binding {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Binding
	for _, c := range scope(ctx) {
		out = append(out, r.bindings[c]...)
	}
	return out
}

var keyNames = map[tea.KeyType]string{
	tea.KeyCtrlC:     "ctrl+c",
	tea.KeyCtrlA:     "ctrl+a",
	tea.KeyCtrlE:     "ctrl+e",
	tea.KeyCtrlN:     "ctrl+n",
	tea.KeyCtrlR:     "ctrl+r",
	tea.KeyCtrlU:     "ctrl+u",
	tea.KeyTab:       "tab",
	tea.KeyShiftTab:  "shift+tab",
	tea.KeyEnter:     "enter",
	tea.KeyEsc:       "esc",
	tea.KeySpace:     "space",
	tea.KeyBackspace: "backspace",
	tea.KeyUp:        "up",
	tea.KeyDown:      "down",
	tea.KeyLeft:      "left",
	tea.KeyRight:     "right",
	tea.KeyHome:      "home",
	tea.KeyEnd:       "end",
}

// KeyToString converts a key press to the notation used in bindings
func KeyToString(msg tea.KeyMsg) string {
	if name, ok := keyNames[msg.Type]; ok {
		return name
	}
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) == 1 && msg.Runes[0] == ' ' {
			return "space"
		}
		return string(msg.Runes)
	}
	return msg.String()
}

// IsPrintable reports whether msg types a single ASCII character
func IsPrintable(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return true
	case tea.KeyRunes:
		return len(msg.Runes) == 1 && msg.Runes[0] >= ' ' && msg.Runes[0] <= '~'
	}
	return false
}
