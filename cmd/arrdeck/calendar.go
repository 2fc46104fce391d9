package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/calendar"
	"github.com/vmunix/arrdeck/pkg/api"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Upcoming releases and air dates",
	Long: `Show movie releases and episode air dates for a week or month.

Examples:
  arrdeck calendar                    # This week
  arrdeck calendar --view month
  arrdeck calendar --offset 1         # Next week
  arrdeck calendar --date 2025-12-01 --view month
  arrdeck calendar --ical --ical-key KEY`,
	Args: cobra.NoArgs,
	RunE: runCalendarCmd,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().String("view", string(calendar.ViewWeek), "week or month")
	calendarCmd.Flags().String("date", "", "Any day in the view (YYYY-MM-DD, default today)")
	calendarCmd.Flags().Int("offset", 0, "Move by this many views")
	calendarCmd.Flags().Bool("unmonitored", false, "Include unmonitored titles")
	calendarCmd.Flags().Bool("ical", false, "Print the iCal feed URL instead")
	calendarCmd.Flags().String("ical-key", "", "API key to embed in the iCal URL")
}

func runCalendarCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if ical, _ := cmd.Flags().GetBool("ical"); ical {
		key, _ := cmd.Flags().GetString("ical-key")
		fmt.Fprintln(out, app.client.ICalURL(key))
		return nil
	}

	viewFlag, _ := cmd.Flags().GetString("view")
	dateFlag, _ := cmd.Flags().GetString("date")
	offset, _ := cmd.Flags().GetInt("offset")
	unmonitored, _ := cmd.Flags().GetBool("unmonitored")

	view := calendar.View(viewFlag)
	anchor := time.Now()
	if dateFlag != "" {
		var err error
		anchor, err = time.ParseInLocation(time.DateOnly, dateFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", dateFlag)
		}
	}
	if offset != 0 {
		anchor = calendar.Shift(view, anchor, offset)
	}
	start, end, err := calendar.Range(view, anchor)
	if err != nil {
		return err
	}

	entries, err := app.client.Calendar(cmd.Context(), start, end, unmonitored)
	if err != nil {
		return fmt.Errorf("failed to fetch calendar: %w", err)
	}
	days := calendar.Group(entries, time.Local)

	if jsonOutput {
		return printJSON(out, days)
	}
	printCalendar(out, start, end, days)
	return nil
}

func printCalendar(w io.Writer, start, end time.Time, days []calendar.Day) {
	fmt.Fprintf(w, "%s to %s\n\n", start.Format("Mon Jan 2"), end.Format("Mon Jan 2 2006"))
	if len(days) == 0 {
		fmt.Fprintln(w, "Nothing scheduled")
		return
	}
	for _, d := range days {
		fmt.Fprintln(w, d.Date.Format("Monday, Jan 2"))
		for _, e := range d.Entries {
			mark := " "
			if e.HasFile {
				mark = "✓"
			}
			kind := e.ReleaseType
			if kind == "" {
				kind = mediaLabel(e.MediaType)
			}
			clock := e.Date.In(time.Local).Format("15:04")
			if e.MediaType != api.MediaTypeSeries {
				clock = "     "
			}
			fmt.Fprintf(w, "  %s %s %-9s %s\n", mark, clock, kind, calendar.DisplayTitle(e))
		}
		fmt.Fprintln(w)
	}
}
