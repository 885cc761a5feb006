package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/marcus/daypick/internal/dateparse"
	"github.com/marcus/daypick/internal/input"
	"github.com/marcus/daypick/internal/models"
	"github.com/marcus/daypick/internal/output"
	"github.com/marcus/daypick/internal/panels"
	"github.com/spf13/cobra"
)

// parseReport is what parse prints. It mirrors typing text into the input
// tab and pressing Run, then pressing Run again on whatever tab is active.
type parseReport struct {
	Input          string               `json:"input"`
	Weekdays       []string             `json:"weekdays"`
	Date           *models.CalendarDate `json:"date,omitempty"`
	ActiveTab      models.Tab           `json:"active_tab"`
	Result         string               `json:"result"`
	FollowUpResult string               `json:"followup_result"`
	Years          [2]int               `json:"years"`

	checked models.WeekdaySet
}

// buildParseReport runs text through a fresh panel state anchored at now
func buildParseReport(text string, now time.Time) parseReport {
	state := panels.New(now, panels.Options{DefaultTab: models.TabInput})
	state.SetInput(text)
	first := state.Run()

	r := parseReport{
		Input:     text,
		Weekdays:  []string{},
		ActiveTab: state.ActiveTab(),
		Result:    first.Result,
		checked:   state.Weekdays(),
		Years:     [2]int{state.Window().First, state.Window().Last},
	}
	if o := first.Interpreted; o != nil {
		if o.Result.HasWeekdays {
			r.Weekdays = o.Result.Weekdays.Acronyms()
		}
		if o.Result.HasDate {
			d := o.Result.Date
			r.Date = &d
		}
	}

	if r.ActiveTab != models.TabInput {
		r.FollowUpResult = state.Run().Result
	}
	return r
}

var parseCmd = &cobra.Command{
	Use:   "parse <text...>",
	Short: "Interpret text as weekdays and/or a date, as the User input tab does",
	Long: `Interpret text the same way Run does on the User input tab.

Three-letter runs are matched case-insensitively against SUN..SAT and the first
D/M/YYYY date is accepted when the year is within ten years of today.

Arguments are joined with spaces. Use - to read from stdin or @file to read
from a file.`,
	Example: `  daypick parse "mon wed 12/3/2024"
  echo "SUNSAT" | daypick parse -
  daypick parse --json --today 2018-07-06 "6/7/2018"`,
	GroupID: "core",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		fail := func(code string, err error) error {
			if jsonOutput {
				output.JSONError(code, err.Error())
			} else {
				output.Error("%v", err)
			}
			return reported(err)
		}

		lines, err := expandParseArgs(args)
		if err != nil {
			return fail(output.ErrCodeIOError, err)
		}
		text := strings.Join(lines, " ")

		today, _ := cmd.Flags().GetString("today")
		now, err := dateparse.ParseToday(today, time.Now())
		if err != nil {
			return fail(output.ErrCodeInvalidInput, fmt.Errorf("invalid --today: %w", err))
		}

		report := buildParseReport(text, now)

		if jsonOutput {
			return output.JSON(report)
		}
		printParseReport(report)
		return nil
	},
}

func expandParseArgs(args []string) ([]string, error) {
	lines, err := input.ExpandArgs(args, os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func printParseReport(r parseReport) {
	date := ""
	if r.Date != nil {
		date = r.Date.String()
	}
	fmt.Println(output.FormatField("Input", r.Input))
	fmt.Println(output.FormatField("Weekdays", strings.Join(r.Weekdays, ", ")))
	fmt.Println(output.FormatField("Date", date))
	fmt.Println(output.FormatField("Years", fmt.Sprintf("%d-%d", r.Years[0], r.Years[1])))
	fmt.Println()
	fmt.Println(output.FormatField("Active tab", output.FormatTab(r.ActiveTab)))
	fmt.Println(output.FormatField("Result", r.Result))
	if r.ActiveTab != models.TabInput {
		fmt.Println(output.FormatField("Run on "+r.ActiveTab.Title(), r.FollowUpResult))
	}
	if r.Date == nil && len(r.Weekdays) == 0 {
		output.Warning("nothing recognized; panels unchanged")
		return
	}
	fmt.Println()
	fmt.Println(output.FormatWeekdayStrip(r.checked))
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("json", false, "JSON output")
	parseCmd.Flags().String("today", "", "Use this date (YYYY-MM-DD) as today")
}
