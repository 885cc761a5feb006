// Package dateparse extracts weekday acronyms and D/M/YYYY dates from free
// text typed into the user input panel.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/marcus/daypick/internal/models"
)

var (
	// Three ASCII letters, matched left to right without overlap:
	// "MONDAY" yields MON and DAY.
	acronymPattern = regexp.MustCompile(`[A-Za-z]{3}`)

	// Only the first occurrence is considered.
	datePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
)

// ParseWeekdays returns every weekday whose acronym appears in input.
// Runs of three letters that are not acronyms are ignored. The bool is false
// when no weekday was found.
//
// Examples:
//   - "MON, TUE"      -> {Monday, Tuesday}
//   - "thu,fri, Sat"  -> {Thursday, Friday, Saturday}
//   - "mon mon"       -> {Monday}
func ParseWeekdays(input string) (models.WeekdaySet, bool) {
	var set models.WeekdaySet
	for _, run := range acronymPattern.FindAllString(input, -1) {
		if d, ok := models.WeekdayFromAcronym(strings.ToUpper(run)); ok {
			set = set.With(d)
		}
	}
	return set, !set.Empty()
}

// ParseDate extracts the first D/M/YYYY date from input, validating the year
// against the window centered on the current year.
func ParseDate(input string) (models.CalendarDate, bool) {
	return ParseDateIn(input, models.NewYearWindow(time.Now()))
}

// ParseDateIn extracts the first D/M/YYYY date from input and validates it
// against window. A date is rejected as a whole if any field is out of range:
// day 1-31, month 1-12, year inside window.
func ParseDateIn(input string, window models.YearWindow) (models.CalendarDate, bool) {
	m := datePattern.FindStringSubmatch(input)
	if m == nil {
		return models.CalendarDate{}, false
	}

	// The pattern guarantees digits, so Atoi cannot fail here.
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if day < 1 || day > 31 {
		return models.CalendarDate{}, false
	}
	if month < 1 || month > 12 {
		return models.CalendarDate{}, false
	}
	if !window.Contains(year) {
		return models.CalendarDate{}, false
	}

	return models.CalendarDate{Day: day, Month: month, Year: year}, true
}

// ParseToday parses an ISO 8601 date (YYYY-MM-DD) used to pin the clock.
// An empty string yields now.
func ParseToday(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now, nil
	}
	return time.ParseInLocation("2006-01-02", input, now.Location())
}
