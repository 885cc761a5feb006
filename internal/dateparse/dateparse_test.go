package dateparse

import (
	"strconv"
	"testing"
	"time"

	"github.com/marcus/daypick/internal/models"
)

// Fixed reference time: Wednesday, 2026-02-18 12:00:00 UTC
var testNow = time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

var testWindow = models.NewYearWindow(testNow)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input string
		want  models.WeekdaySet
	}{
		{"MON, TUE", models.NewWeekdaySet(time.Monday, time.Tuesday)},
		{"mon", models.NewWeekdaySet(time.Monday)},
		{"SUN or MON, TUE, WED", models.NewWeekdaySet(time.Sunday, time.Monday, time.Tuesday, time.Wednesday)},
		{"THU,FRI, SAT", models.NewWeekdaySet(time.Thursday, time.Friday, time.Saturday)},
		{"Wed wed WED", models.NewWeekdaySet(time.Wednesday)},
		{"sAt sUn", models.NewWeekdaySet(time.Saturday, time.Sunday)},
		{"MON 6/7/2018", models.NewWeekdaySet(time.Monday)},
	}
	for _, tt := range tests {
		got, ok := ParseWeekdays(tt.input)
		if !ok {
			t.Errorf("ParseWeekdays(%q): expected match", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseWeekdays_NoMatch(t *testing.T) {
	inputs := []string{
		"",
		"6/7/2018",
		"xyz abc",
		"MO TU",
		"12 34",
	}
	for _, input := range inputs {
		if got, ok := ParseWeekdays(input); ok {
			t.Errorf("ParseWeekdays(%q) = %v, want no match", input, got)
		}
	}
}

func TestParseWeekdays_RunsDoNotOverlap(t *testing.T) {
	// "XMONDAY" splits into XMO + NDA; Monday is not found.
	if got, ok := ParseWeekdays("XMONDAY"); ok {
		t.Errorf("ParseWeekdays(XMONDAY) = %v, want no match", got)
	}

	// "MONDAY" splits into MON + DAY.
	got, ok := ParseWeekdays("MONDAY")
	if !ok || got != models.NewWeekdaySet(time.Monday) {
		t.Errorf("ParseWeekdays(MONDAY) = %v, %v; want {MON}, true", got, ok)
	}
}

func TestParseDateIn(t *testing.T) {
	tests := []struct {
		input string
		want  models.CalendarDate
	}{
		{"6/7/2018", models.CalendarDate{Day: 6, Month: 7, Year: 2018}},
		{"31/12/2018", models.CalendarDate{Day: 31, Month: 12, Year: 2018}},
		{"01/01/2016", models.CalendarDate{Day: 1, Month: 1, Year: 2016}},
		{"on 15/3/2036 please", models.CalendarDate{Day: 15, Month: 3, Year: 2036}},
		{"MON, TUE 6/7/2018", models.CalendarDate{Day: 6, Month: 7, Year: 2018}},
		{"1/2/2020 and 3/4/2021", models.CalendarDate{Day: 1, Month: 2, Year: 2020}},
	}
	for _, tt := range tests {
		got, ok := ParseDateIn(tt.input, testWindow)
		if !ok {
			t.Errorf("ParseDateIn(%q): expected match", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDateIn(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseDateIn_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"day out of range", "32/1/2018"},
		{"day zero", "0/1/2018"},
		{"month out of range", "1/13/2018"},
		{"month zero", "1/0/2018"},
		{"year before window", "1/1/2015"},
		{"year after window", "1/1/2037"},
		{"no date", "MON, TUE"},
		{"two digit year", "1/1/18"},
		{"empty", ""},
		{"first match invalid", "32/1/2018 1/1/2018"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ParseDateIn(tt.input, testWindow); ok {
				t.Errorf("ParseDateIn(%q) = %+v, want no match", tt.input, got)
			}
		})
	}
}

func TestParseDate_UsesCurrentYear(t *testing.T) {
	year := time.Now().Year()
	input := "6/7/" + strconv.Itoa(year)
	got, ok := ParseDate(input)
	if !ok {
		t.Fatalf("ParseDate(%q): expected match", input)
	}
	if got.Year != year || got.Day != 6 || got.Month != 7 {
		t.Errorf("ParseDate(%q) = %+v", input, got)
	}
	if _, ok := ParseDate("6/7/" + strconv.Itoa(year+11)); ok {
		t.Errorf("ParseDate accepted a year outside the window")
	}
}

func TestParseToday(t *testing.T) {
	got, err := ParseToday("", testNow)
	if err != nil || !got.Equal(testNow) {
		t.Errorf("ParseToday(\"\") = %v, %v; want testNow", got, err)
	}

	got, err = ParseToday("2018-07-06", testNow)
	if err != nil {
		t.Fatalf("ParseToday: unexpected error: %v", err)
	}
	if got.Year() != 2018 || got.Month() != time.July || got.Day() != 6 {
		t.Errorf("ParseToday = %v", got)
	}

	if _, err := ParseToday("6/7/2018", testNow); err == nil {
		t.Error("ParseToday: expected error for non-ISO input")
	}
}
