// Package panels holds the state behind the three tabs: weekday checkboxes,
// the day/month/year selectors, the free-text input and the result line.
package panels

import (
	"log/slog"
	"time"

	"github.com/marcus/daypick/internal/interpret"
	"github.com/marcus/daypick/internal/models"
	"github.com/marcus/daypick/internal/nav"
)

// Field identifies one of the date picker selectors
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

// Fields lists the selectors in display order
var Fields = []Field{FieldDay, FieldMonth, FieldYear}

func (f Field) String() string {
	switch f {
	case FieldDay:
		return "Date"
	case FieldMonth:
		return "Month"
	case FieldYear:
		return "Year"
	default:
		return "?"
	}
}

// Options configures a new State
type Options struct {
	// DefaultTab is the tab shown first; unknown or empty means the first tab
	DefaultTab models.Tab
}

// State is the complete panel state. It implements interpret.View.
type State struct {
	checked   models.WeekdaySet
	selectors [3]*Selector
	input     string
	result    string

	nav    *nav.Navigator
	interp *interpret.Interpreter
}

var _ interpret.View = (*State)(nil)

// New builds the default state for now: today's weekday checked, the
// selectors on today's date and years spanning the window around now.
func New(now time.Time, opts Options) *State {
	window := models.NewYearWindow(now)
	today := models.DateOf(now)

	s := &State{
		checked: models.NewWeekdaySet(now.Weekday()),
		nav:     nav.New(models.Tabs...),
		interp:  interpret.New(window),
	}
	s.selectors[FieldDay] = NewSelector(intRange(1, 31), today.Day)
	s.selectors[FieldMonth] = NewSelector(intRange(1, 12), today.Month)
	s.selectors[FieldYear] = NewSelector(window.Years(), today.Year)

	s.nav.Select(opts.DefaultTab)
	return s
}

// Window returns the valid year window computed at construction
func (s *State) Window() models.YearWindow {
	return s.interp.Window()
}

// Nav returns the tab navigator
func (s *State) Nav() *nav.Navigator {
	return s.nav
}

// ActiveTab returns the tab currently shown
func (s *State) ActiveTab() models.Tab {
	return s.nav.Active()
}

// SelectTab activates t, following navigator rules for unknown tabs
func (s *State) SelectTab(t models.Tab) models.Tab {
	return s.nav.Select(t)
}

// Weekdays returns the checked days
func (s *State) Weekdays() models.WeekdaySet {
	return s.checked
}

// IsChecked reports whether d is checked
func (s *State) IsChecked(d time.Weekday) bool {
	return s.checked.Has(d)
}

// ToggleWeekday flips the checkbox for d
func (s *State) ToggleWeekday(d time.Weekday) {
	if s.checked.Has(d) {
		s.checked = s.checked.Without(d)
	} else {
		s.checked = s.checked.With(d)
	}
}

// SetWeekdays checks exactly the days in set
func (s *State) SetWeekdays(set models.WeekdaySet) {
	s.checked = set
}

// Selector returns the selector for f
func (s *State) Selector(f Field) *Selector {
	return s.selectors[f]
}

// Date returns the selected day, month and year
func (s *State) Date() models.CalendarDate {
	return models.CalendarDate{
		Day:   s.selectors[FieldDay].Value(),
		Month: s.selectors[FieldMonth].Value(),
		Year:  s.selectors[FieldYear].Value(),
	}
}

// SetDate selects each field of d. A field whose value is not among the
// selector's options is left unchanged.
func (s *State) SetDate(d models.CalendarDate) {
	s.selectors[FieldDay].Select(d.Day)
	s.selectors[FieldMonth].Select(d.Month)
	s.selectors[FieldYear].Select(d.Year)
}

// Input returns the free text
func (s *State) Input() string {
	return s.input
}

// SetInput replaces the free text
func (s *State) SetInput(text string) {
	s.input = text
}

// Result returns the last computed result
func (s *State) Result() string {
	return s.result
}

// RunOutcome describes one press of Run
type RunOutcome struct {
	// Tab is the tab that was active when Run was pressed
	Tab    models.Tab
	Result string
	// Interpreted is set when Run was pressed on the input tab
	Interpreted *interpret.Outcome
}

// Run fills the result from the active tab. On the input tab the text is
// also interpreted, which may update the other panels and switch tabs.
func (s *State) Run() RunOutcome {
	out := RunOutcome{Tab: s.nav.Active()}

	switch out.Tab {
	case models.TabDays:
		s.result = s.checked.String()
	case models.TabDate:
		s.result = s.Date().String()
	case models.TabInput:
		s.result = s.input
		o := s.interp.Apply(s.input, s)
		if o.Activate != "" {
			s.nav.Select(o.Activate)
		}
		out.Interpreted = &o
	}

	out.Result = s.result
	slog.Debug("panels: run", "tab", out.Tab, "result", out.Result, "active", s.nav.Active())
	return out
}

func intRange(first, last int) []int {
	out := make([]int, 0, last-first+1)
	for v := first; v <= last; v++ {
		out = append(out, v)
	}
	return out
}
