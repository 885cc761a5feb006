// Package output provides styled terminal output helpers (success, error,
// warning, panel formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/daypick/internal/models"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	tabStyles    = map[models.Tab]lipgloss.Style{
		models.TabDays:  lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		models.TabDate:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		models.TabInput: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Error codes for structured JSON output
const (
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeConfigError  = "config_error"
	ErrCodeIOError      = "io_error"
)

// JSONError outputs an error as JSON
func JSONError(code, message string) {
	data, _ := json.Marshal(map[string]interface{}{
		"error": map[string]string{"code": code, "message": message},
	})
	fmt.Println(string(data))
}

// FormatTab formats a tab id with its color
func FormatTab(t models.Tab) string {
	style, ok := tabStyles[t]
	if !ok {
		return string(t)
	}
	return style.Render(fmt.Sprintf("[%s]", t))
}

// FormatWeekdayStrip renders all seven checkboxes, e.g. "[x] SUN  [ ] MON ..."
func FormatWeekdayStrip(set models.WeekdaySet) string {
	parts := make([]string, 0, len(models.Weekdays))
	for _, d := range models.Weekdays {
		if set.Has(d) {
			parts = append(parts, checkedStyle.Render("[x] "+models.Acronym(d)))
		} else {
			parts = append(parts, subtleStyle.Render("[ ] "+models.Acronym(d)))
		}
	}
	return strings.Join(parts, "  ")
}

// FormatField formats a "Label: value" line, dimming empty values
func FormatField(label, value string) string {
	if value == "" {
		value = subtleStyle.Render("(none)")
	}
	return titleStyle.Render(label+":") + " " + value
}

// FormatClock formats the reference clock shown in headers
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%s %s", models.Acronym(t.Weekday()), models.DateOf(t))
}
