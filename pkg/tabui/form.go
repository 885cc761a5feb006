package tabui

import (
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/marcus/daypick/internal/models"
	"github.com/marcus/daypick/internal/panels"
)

// DateForm is the modal form for picking a date with huh selects
type DateForm struct {
	Form *huh.Form

	// Bound form values
	Day   int
	Month int
	Year  int
}

// NewDateForm creates a form seeded with the state's current selection
func NewDateForm(s *panels.State) *DateForm {
	d := s.Date()
	f := &DateForm{Day: d.Day, Month: d.Month, Year: d.Year}
	f.buildForm(s)
	return f
}

// buildForm constructs the huh.Form with one select per date field
func (f *DateForm) buildForm(s *panels.State) {
	f.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(panels.FieldDay.String()).
				Options(intOptions(s.Selector(panels.FieldDay).Values())...).
				Inline(true).
				Value(&f.Day),
			huh.NewSelect[int]().
				Title(panels.FieldMonth.String()).
				Options(intOptions(s.Selector(panels.FieldMonth).Values())...).
				Inline(true).
				Value(&f.Month),
			huh.NewSelect[int]().
				Title(panels.FieldYear.String()).
				Options(intOptions(s.Selector(panels.FieldYear).Values())...).
				Inline(true).
				Value(&f.Year),
		),
	).WithShowHelp(true).WithWidth(30)
}

// Date returns the values currently bound to the form
func (f *DateForm) Date() models.CalendarDate {
	return models.CalendarDate{Day: f.Day, Month: f.Month, Year: f.Year}
}

func intOptions(values []int) []huh.Option[int] {
	opts := make([]huh.Option[int], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(strconv.Itoa(v), v)
	}
	return opts
}
