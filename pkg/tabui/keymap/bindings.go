package keymap

// DefaultBindings returns the default key bindings for the tab UI.
// Bindings are organized by context and follow vim conventions where applicable.
func DefaultBindings() []Binding {
	return []Binding{
		// ============================================================
		// GLOBAL BINDINGS
		// These work in every non-modal context unless overridden
		// ============================================================
		{Key: "q", Command: CmdQuit, Context: ContextGlobal, Description: "Quit"},
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextGlobal, Description: "Quit"},
		{Key: "?", Command: CmdToggleHelp, Context: ContextGlobal, Description: "Toggle help"},
		{Key: "r", Command: CmdRun, Context: ContextGlobal, Description: "Run"},
		{Key: "ctrl+r", Command: CmdRun, Context: ContextGlobal, Description: "Run"},
		{Key: "tab", Command: CmdNextTab, Context: ContextGlobal, Description: "Next tab"},
		{Key: "shift+tab", Command: CmdPrevTab, Context: ContextGlobal, Description: "Previous tab"},
		{Key: "1", Command: CmdTabDays, Context: ContextGlobal, Description: "Days of the week"},
		{Key: "2", Command: CmdTabDate, Context: ContextGlobal, Description: "Date picker"},
		{Key: "3", Command: CmdTabInput, Context: ContextGlobal, Description: "User input"},

		// ============================================================
		// DAYS OF THE WEEK
		// ============================================================
		{Key: "j", Command: CmdCursorDown, Context: ContextDays, Description: "Next day"},
		{Key: "down", Command: CmdCursorDown, Context: ContextDays, Description: "Next day"},
		{Key: "k", Command: CmdCursorUp, Context: ContextDays, Description: "Previous day"},
		{Key: "up", Command: CmdCursorUp, Context: ContextDays, Description: "Previous day"},
		{Key: "g g", Command: CmdCursorTop, Context: ContextDays, Description: "First day"},
		{Key: "G", Command: CmdCursorBottom, Context: ContextDays, Description: "Last day"},
		{Key: "space", Command: CmdToggleDay, Context: ContextDays, Description: "Toggle day"},
		{Key: "x", Command: CmdToggleDay, Context: ContextDays, Description: "Toggle day"},
		{Key: "a", Command: CmdCheckAll, Context: ContextDays, Description: "Check all"},
		{Key: "n", Command: CmdCheckNone, Context: ContextDays, Description: "Uncheck all"},

		// ============================================================
		// DATE PICKER
		// ============================================================
		{Key: "h", Command: CmdCursorLeft, Context: ContextDate, Description: "Previous field"},
		{Key: "left", Command: CmdCursorLeft, Context: ContextDate, Description: "Previous field"},
		{Key: "l", Command: CmdCursorRight, Context: ContextDate, Description: "Next field"},
		{Key: "right", Command: CmdCursorRight, Context: ContextDate, Description: "Next field"},
		{Key: "k", Command: CmdIncrement, Context: ContextDate, Description: "Increase value"},
		{Key: "up", Command: CmdIncrement, Context: ContextDate, Description: "Increase value"},
		{Key: "+", Command: CmdIncrement, Context: ContextDate, Description: "Increase value"},
		{Key: "j", Command: CmdDecrement, Context: ContextDate, Description: "Decrease value"},
		{Key: "down", Command: CmdDecrement, Context: ContextDate, Description: "Decrease value"},
		{Key: "-", Command: CmdDecrement, Context: ContextDate, Description: "Decrease value"},
		{Key: "t", Command: CmdToday, Context: ContextDate, Description: "Select today"},
		{Key: "e", Command: CmdEditDate, Context: ContextDate, Description: "Edit date in a form"},
		{Key: "enter", Command: CmdEditDate, Context: ContextDate, Description: "Edit date in a form"},

		// ============================================================
		// USER INPUT
		// ============================================================
		{Key: "i", Command: CmdFocusInput, Context: ContextInput, Description: "Edit text"},
		{Key: "enter", Command: CmdFocusInput, Context: ContextInput, Description: "Edit text"},
		{Key: "ctrl+u", Command: CmdClearInput, Context: ContextInput, Description: "Clear text"},

		// While the text box is focused only these keys are intercepted;
		// everything printable is typed into the box.
		{Key: "esc", Command: CmdBlurInput, Context: ContextEditing, Description: "Stop editing"},
		{Key: "enter", Command: CmdRun, Context: ContextEditing, Description: "Run"},
		{Key: "ctrl+u", Command: CmdClearInput, Context: ContextEditing, Description: "Clear text"},

		// ============================================================
		// OVERLAYS
		// ============================================================
		// Overlays are modal: keys not listed here do nothing while they are open
		{Key: "esc", Command: CmdFormCancel, Context: ContextForm, Description: "Cancel edit"},
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextForm, Description: "Quit"},
		{Key: "esc", Command: CmdClose, Context: ContextHelp, Description: "Close help"},
		{Key: "?", Command: CmdClose, Context: ContextHelp, Description: "Close help"},
		{Key: "q", Command: CmdClose, Context: ContextHelp, Description: "Close help"},
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextHelp, Description: "Quit"},
	}
}

// RegisterDefaults registers all default bindings with the registry
func RegisterDefaults(r *Registry) {
	r.RegisterBindings(DefaultBindings()...)
}
