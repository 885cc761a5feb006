// Package interpret turns free text into weekday and date selections and
// pushes them into the other panels.
package interpret

import (
	"log/slog"

	"github.com/marcus/daypick/internal/dateparse"
	"github.com/marcus/daypick/internal/models"
)

// View is the panel state the interpreter writes to
type View interface {
	// SetWeekdays checks exactly the days in set and unchecks the rest
	SetWeekdays(set models.WeekdaySet)
	// SetDate selects the day, month and year of d
	SetDate(d models.CalendarDate)
}

// Result holds what was recognized in a piece of text
type Result struct {
	Weekdays    models.WeekdaySet
	HasWeekdays bool
	Date        models.CalendarDate
	HasDate     bool
}

// Matched reports whether anything was recognized
func (r Result) Matched() bool {
	return r.HasWeekdays || r.HasDate
}

// Outcome describes the effect of Apply
type Outcome struct {
	Result Result
	// Applied lists the steps that changed the view, in order
	Applied []StepName
	// Activate is the tab to switch to; empty when nothing matched
	Activate models.Tab
}

// StepName identifies a pipeline step
type StepName string

const (
	StepWeekdays StepName = "weekdays"
	StepDate     StepName = "date"
)

// Step applies one part of a Result to the view. It returns the tab it wants
// focused, or false when it had nothing to apply.
type Step struct {
	Name  StepName
	Tab   models.Tab
	Apply func(v View, r Result) bool
}

// Pipeline is the ordered list of steps. The tab of the last step that
// applied wins focus, so a text holding both weekdays and a date ends on the
// date picker with the weekdays updated underneath.
var Pipeline = []Step{
	{
		Name: StepWeekdays,
		Tab:  models.TabDays,
		Apply: func(v View, r Result) bool {
			if !r.HasWeekdays {
				return false
			}
			v.SetWeekdays(r.Weekdays)
			return true
		},
	},
	{
		Name: StepDate,
		Tab:  models.TabDate,
		Apply: func(v View, r Result) bool {
			if !r.HasDate {
				return false
			}
			v.SetDate(r.Date)
			return true
		},
	},
}

// Interpreter parses user input against a fixed year window
type Interpreter struct {
	window models.YearWindow
	steps  []Step
}

// New creates an interpreter validating years against window
func New(window models.YearWindow) *Interpreter {
	return &Interpreter{window: window, steps: Pipeline}
}

// Window returns the valid year window
func (in *Interpreter) Window() models.YearWindow {
	return in.window
}

// Parse runs both grammars independently; text may satisfy both.
func (in *Interpreter) Parse(text string) Result {
	var r Result
	r.Weekdays, r.HasWeekdays = dateparse.ParseWeekdays(text)
	r.Date, r.HasDate = dateparse.ParseDateIn(text, in.window)
	return r
}

// Apply parses text and runs the pipeline against v. No view method is
// called when nothing matched.
func (in *Interpreter) Apply(text string, v View) Outcome {
	out := Outcome{Result: in.Parse(text)}
	if !out.Result.Matched() {
		slog.Debug("interpret: no match", "input", text)
		return out
	}

	for _, step := range in.steps {
		if step.Apply(v, out.Result) {
			out.Applied = append(out.Applied, step.Name)
			out.Activate = step.Tab
		}
	}

	slog.Debug("interpret: applied", "steps", out.Applied, "activate", out.Activate)
	return out
}
