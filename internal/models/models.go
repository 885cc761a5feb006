package models

import (
	"fmt"
	"strings"
	"time"
)

// Tab identifies one of the three panels
type Tab string

const (
	TabDays  Tab = "days-of-the-week"
	TabDate  Tab = "date-picker"
	TabInput Tab = "user-input"
)

// Tabs lists the panels in display order
var Tabs = []Tab{TabDays, TabDate, TabInput}

// Title returns the tab bar label
func (t Tab) Title() string {
	switch t {
	case TabDays:
		return "Days of the week"
	case TabDate:
		return "Date picker"
	case TabInput:
		return "User input"
	default:
		return string(t)
	}
}

// IsValidTab reports whether t is a known panel
func IsValidTab(t Tab) bool {
	for _, known := range Tabs {
		if t == known {
			return true
		}
	}
	return false
}

// Weekdays lists Sunday..Saturday in checkbox order
var Weekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// Acronym returns the three-letter uppercase form of d (SUN, MON, ...)
func Acronym(d time.Weekday) string {
	return strings.ToUpper(d.String()[:3])
}

// WeekdayFromAcronym maps an uppercase acronym back to its weekday
func WeekdayFromAcronym(s string) (time.Weekday, bool) {
	for _, d := range Weekdays {
		if Acronym(d) == s {
			return d, true
		}
	}
	return time.Sunday, false
}

// WeekdaySet is a membership set over Sunday..Saturday
type WeekdaySet uint8

// NewWeekdaySet builds a set containing days
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With returns s with d added
func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

// Without returns s with d removed
func (s WeekdaySet) Without(d time.Weekday) WeekdaySet {
	return s &^ (1 << uint(d))
}

// Has reports membership of d
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Empty reports whether no day is in the set
func (s WeekdaySet) Empty() bool {
	return s == 0
}

// Days returns members in Sunday..Saturday order
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for _, d := range Weekdays {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// Acronyms returns members as acronyms in Sunday..Saturday order
func (s WeekdaySet) Acronyms() []string {
	var out []string
	for _, d := range s.Days() {
		out = append(out, Acronym(d))
	}
	return out
}

// String joins the acronyms with ", " (e.g. "MON, TUE")
func (s WeekdaySet) String() string {
	return strings.Join(s.Acronyms(), ", ")
}

// YearWindow is the inclusive range of selectable years
type YearWindow struct {
	First int
	Last  int
}

// yearWindowRadius is the number of years either side of the current year
const yearWindowRadius = 10

// NewYearWindow centers the window on now's year
func NewYearWindow(now time.Time) YearWindow {
	y := now.Year()
	return YearWindow{First: y - yearWindowRadius, Last: y + yearWindowRadius}
}

// Contains reports whether year falls inside the window
func (w YearWindow) Contains(year int) bool {
	return year >= w.First && year <= w.Last
}

// Years returns the window in ascending order
func (w YearWindow) Years() []int {
	years := make([]int, 0, w.Last-w.First+1)
	for y := w.First; y <= w.Last; y++ {
		years = append(years, y)
	}
	return years
}

// CalendarDate is a day/month/year selection as shown in the date picker.
// Day and month are range-checked only; 31/2 is accepted like any other pair.
type CalendarDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// String formats the date as D/M/YYYY without zero padding
func (d CalendarDate) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// DateOf returns the calendar fields of t
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Config holds local settings stored in .daypick/config.json
type Config struct {
	DefaultTab Tab    `json:"default_tab,omitempty"`
	LogLevel   string `json:"log_level,omitempty"`
}
